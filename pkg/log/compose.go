package log

import "strings"

// ANSI escapes for direct-mode rendering. Emitted unconditionally; direct
// mode does not probe whether stderr is a terminal.
const (
	colorReset     = "\x1b[0m"
	colorError     = "\x1b[31m" // red
	colorInfo      = "\x1b[32m" // green
	colorWarn      = "\x1b[33m" // yellow
	colorDebug     = "\x1b[36m" // cyan
	colorTimestamp = "\x1b[90m" // bright black
	colorScope     = "\x1b[35m" // magenta
	colorModule    = "\x1b[94m" // bright blue
)

// composeDirect renders the full colorized line, without the trailing
// newline: "<ts> [<LEVEL>] (<scope>): [<module>] <message>". The module
// segment, brackets and trailing space included, is omitted when absent.
func composeDirect(rec Record) string {
	var b strings.Builder

	b.WriteString(colorTimestamp)
	b.WriteString(formatTimestamp(rec.Time))
	b.WriteString(colorReset)
	b.WriteByte(' ')

	b.WriteString(rec.Level.color())
	b.WriteByte('[')
	b.WriteString(rec.Level.String())
	b.WriteByte(']')
	b.WriteString(colorReset)
	b.WriteByte(' ')

	b.WriteString(colorScope)
	b.WriteByte('(')
	b.WriteString(ScopeLabel(rec.NetworkID))
	b.WriteString("):")
	b.WriteString(colorReset)
	b.WriteByte(' ')

	if rec.Module != "" {
		b.WriteString(colorModule)
		b.WriteByte('[')
		b.WriteString(rec.Module)
		b.WriteByte(']')
		b.WriteString(colorReset)
		b.WriteByte(' ')
	}

	b.WriteString(rec.Message)
	return b.String()
}

// composeBridge renders the plain body forwarded across the bridge:
// "[<module>] <message>", or just the message when no module is set.
// Timestamp, scope, and color never appear here; the receiver gets the
// numeric network id and level code alongside.
func composeBridge(rec Record) string {
	if rec.Module == "" {
		return rec.Message
	}
	return "[" + rec.Module + "] " + rec.Message
}
