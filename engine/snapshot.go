package engine

import (
	"github.com/lixenwraith/bouncy/config"
	"github.com/lixenwraith/bouncy/physics"
)

// Snapshot is a detached copy of everything a renderer or sound player needs
type Snapshot struct {
	Mode          config.Mode
	Phase         Phase
	Paused        bool
	SinglePlayer  bool
	Width, Height float64
	Gravity       float64

	LeftScore, RightScore int

	// Shapes follow roster order
	Shapes []physics.Shape
	// Events are the contacts and roster changes of the last step
	Events []physics.Event
}

// Snapshot copies the current render state
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Mode:         w.cfg.Mode,
		Phase:        w.phase,
		Paused:       w.paused,
		SinglePlayer: w.singlePlayer,
		Width:        w.width,
		Height:       w.height,
		Gravity:      w.gravity,
		LeftScore:    w.leftScore,
		RightScore:   w.rightScore,
		Shapes:       make([]physics.Shape, len(w.bodies)),
		Events:       make([]physics.Event, len(w.events)),
	}
	for i, b := range w.bodies {
		s.Shapes[i] = b.Shape()
	}
	copy(s.Events, w.events)
	return s
}
