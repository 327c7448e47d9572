package core

import "fmt"

// Mode selects which simulation the world runs
type Mode uint8

const (
	// ModeGame runs player, enemies and collisions
	ModeGame Mode = iota
	// ModeSandbox fires catalog patterns from a movable origin with no combatants
	ModeSandbox
)

func (m Mode) String() string {
	switch m {
	case ModeGame:
		return "game"
	case ModeSandbox:
		return "sandbox"
	default:
		return "unknown"
	}
}

// ParseMode converts a config string into a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "game", "":
		return ModeGame, nil
	case "sandbox":
		return ModeSandbox, nil
	default:
		return ModeGame, fmt.Errorf("unknown mode %q", s)
	}
}
