package generator

import (
	"strings"

	"github.com/gnvim/signalgen/internal/codegen/generr"
)

// Mode selects which block is generated for the whole run.
type Mode int

const (
	ModeDeclaration Mode = iota + 1
	ModeRegistration
)

func (m Mode) String() string {
	switch m {
	case ModeDeclaration:
		return "declaration"
	case ModeRegistration:
		return "registration"
	default:
		return "unknown"
	}
}

// ParseMode classifies a selector by prefix: "def..." for signal
// declarations, "reg..." for adapter registrations. Anything else is an
// error rather than an empty block.
func ParseMode(selector string) (Mode, error) {
	switch {
	case strings.HasPrefix(selector, "def"):
		return ModeDeclaration, nil
	case strings.HasPrefix(selector, "reg"):
		return ModeRegistration, nil
	default:
		return 0, generr.ErrUnrecognizedMode(selector)
	}
}
