package forward

import (
	"github.com/rs/zerolog"

	"github.com/bomanaps/zeam/pkg/log"
)

// Zerolog delivers forwarded records to a zerolog.Logger. The network id
// becomes a structured "network" field and the plain text the message.
type Zerolog struct {
	logger zerolog.Logger
}

var _ log.Forwarder = (*Zerolog)(nil)

// NewZerolog wraps l as a bridge receiver.
func NewZerolog(l zerolog.Logger) *Zerolog {
	return &Zerolog{logger: l}
}

// Forward implements log.Forwarder.
func (f *Zerolog) Forward(networkID uint32, levelCode uint32, text string) {
	f.logger.WithLevel(zerologLevel(levelCode)).Uint32("network", networkID).Msg(text)
}

func zerologLevel(code uint32) zerolog.Level {
	switch code {
	case 0:
		return zerolog.DebugLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
