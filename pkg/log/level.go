package log

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log record.
type Level int

// Log levels, ordered by severity.
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the uppercase label used in direct-mode rendering.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Code returns the numeric code forwarded across the bridge boundary.
// Codes are stable: Debug=0, Info=1, Warn=2, Error=3.
func (l Level) Code() uint32 {
	return uint32(l)
}

// color returns the ANSI escape used for the level bracket in direct mode.
func (l Level) color() string {
	switch l {
	case DebugLevel:
		return colorDebug
	case InfoLevel:
		return colorInfo
	case WarnLevel:
		return colorWarn
	case ErrorLevel:
		return colorError
	default:
		return colorReset
	}
}

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level: %q", s)
	}
}
