package engine

import (
	"github.com/lixenwraith/bouncy/config"
	"github.com/lixenwraith/bouncy/physics"
)

// Phase is the game flow state; pause is tracked separately
type Phase uint8

const (
	// PhaseStart waits for a player-count choice
	PhaseStart Phase = iota
	PhasePlay
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlay:
		return "play"
	default:
		return "unknown"
	}
}

// Rules are the per-mode switches derived from configuration
type Rules struct {
	Sides physics.Sides

	// PaddlePush adds paddle velocity to face bounces
	PaddlePush bool

	// Menu starts the world paused in PhaseStart with no paddles
	Menu bool

	// Serve re-arms the spawn gate whenever a ball leaves
	Serve bool

	// Launcher makes Fire use the configured launch point and velocity
	Launcher bool
}

// RulesFor maps a configuration to its mode rules
func RulesFor(cfg *config.Config) Rules {
	switch cfg.Mode {
	case config.ModeGravity:
		return Rules{Sides: physics.SidesReflect}
	case config.ModeCannon:
		return Rules{Sides: physics.SidesRemove, Launcher: true}
	default:
		return Rules{
			Sides:      physics.SidesScore,
			PaddlePush: cfg.PaddlePush,
			Menu:       true,
			Serve:      true,
		}
	}
}
