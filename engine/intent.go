package engine

// Intent is a command the world consumes between steps
type Intent interface {
	apply(w *World)
}

// PaddleSide names a paddle slot
type PaddleSide uint8

const (
	PaddleLeft PaddleSide = iota
	PaddleRight
)

// SetPaddleVelocity drives a manual paddle; VY 0 also clears the paused cache
type SetPaddleVelocity struct {
	Paddle PaddleSide
	VY     float64
}

// TogglePause flips the pause state of every body at once
type TogglePause struct{}

// SetGravity replaces the vertical acceleration of the world and its balls
type SetGravity struct {
	AY float64
}

// AdjustGravity shifts gravity by Delta
type AdjustGravity struct {
	Delta float64
}

// Fire spawns one ball at the mode's launch point
type Fire struct{}

// Start leaves the menu; a single player faces a CPU-driven left paddle
type Start struct {
	SinglePlayer bool
}

func (i SetPaddleVelocity) apply(w *World) {
	p := w.paddle(i.Paddle)
	if p == nil || p.Automatic {
		return
	}
	if i.VY == 0 {
		p.VY = 0
		p.CachedVY = 0
		return
	}
	p.SetVelocityY(i.VY, w.paused)
}

func (TogglePause) apply(w *World) {
	if w.phase != PhasePlay {
		return
	}
	w.setPaused(!w.paused)
}

func (i SetGravity) apply(w *World) {
	w.setGravity(i.AY)
}

func (i AdjustGravity) apply(w *World) {
	w.setGravity(w.gravity + i.Delta)
}

func (Fire) apply(w *World) {
	if w.phase != PhasePlay || w.paused {
		return
	}
	w.fire()
}

func (i Start) apply(w *World) {
	if w.phase != PhaseStart {
		return
	}
	w.start(i.SinglePlayer)
}
