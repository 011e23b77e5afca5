package forward

import (
	charmlog "github.com/charmbracelet/log"

	"github.com/bomanaps/zeam/pkg/log"
)

// Charm delivers forwarded records to a charmbracelet/log Logger, which
// renders them with its own styles and timestamping.
type Charm struct {
	logger *charmlog.Logger
}

var _ log.Forwarder = (*Charm)(nil)

// NewCharm wraps l as a bridge receiver.
func NewCharm(l *charmlog.Logger) *Charm {
	return &Charm{logger: l}
}

// Forward implements log.Forwarder.
func (f *Charm) Forward(networkID uint32, levelCode uint32, text string) {
	f.logger.Log(charmLevel(levelCode), text, "network", networkID)
}

func charmLevel(code uint32) charmlog.Level {
	switch code {
	case 0:
		return charmlog.DebugLevel
	case 1:
		return charmlog.InfoLevel
	case 2:
		return charmlog.WarnLevel
	default:
		return charmlog.ErrorLevel
	}
}
