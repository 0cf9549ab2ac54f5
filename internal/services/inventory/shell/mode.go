package shell

import (
	"strings"

	apperrors "github.com/louisbranch/beanstock/internal/platform/errors"
)

// Mode is the shell persona.
type Mode int

const (
	// ModeNone is the start state: only mode selection is available.
	ModeNone Mode = iota
	ModeSeller
	ModeBuyer
)

func (m Mode) String() string {
	switch m {
	case ModeSeller:
		return "Seller"
	case ModeBuyer:
		return "Buyer"
	default:
		return "None"
	}
}

// Toggle returns the other persona. ModeNone has no other persona.
func (m Mode) Toggle() Mode {
	switch m {
	case ModeSeller:
		return ModeBuyer
	case ModeBuyer:
		return ModeSeller
	default:
		return ModeNone
	}
}

// ParseMode resolves "seller" or "buyer" case-insensitively. An empty
// value is ModeNone.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return ModeNone, nil
	case "seller":
		return ModeSeller, nil
	case "buyer":
		return ModeBuyer, nil
	default:
		return ModeNone, apperrors.WithMetadata(
			apperrors.CodeUnknownMode,
			"unknown mode",
			map[string]string{"Mode": strings.TrimSpace(value)},
		)
	}
}
