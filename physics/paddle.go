package physics

import (
	"time"

	"github.com/lixenwraith/bouncy/parameter"
)

// Paddle is an axis-aligned rectangle on a vertical track; X, Y is the top-left corner
// The track is inset by the paddle's own width at both ends
type Paddle struct {
	Kinetic
	W, H float64

	// Automatic paddles are driven by the tracking controller instead of input
	Automatic bool

	// sinceChange is the time since the controller last changed direction
	sinceChange time.Duration
}

// NewPaddle creates a stationary paddle
func NewPaddle(x, y, w, h float64, automatic bool) *Paddle {
	return &Paddle{
		Kinetic:   NewKinetic(x, y, 0, 0),
		W:         w,
		H:         h,
		Automatic: automatic,
	}
}

// Shape returns the paddle's render state
func (p *Paddle) Shape() Shape {
	return Shape{
		Kind: ShapeRect,
		X:    p.X,
		Y:    p.Y,
		W:    p.W,
		H:    p.H,
	}
}

// Update steers an automatic paddle, integrates and clamps to the track
func (p *Paddle) Update(dt float64, env *Env) {
	p.sinceChange += DurationOf(dt)

	if p.Automatic && !env.Paused {
		p.track(env)
	}

	p.Y += dt * p.VY
	p.Clamp(env.Height)
}

// track follows the first ball with a reaction delay between direction changes
func (p *Paddle) track(env *Env) {
	if len(env.Balls) == 0 {
		p.VY = 0
		return
	}

	ballY := env.Balls[0].Y
	var target float64
	switch {
	case ballY > p.Y+p.H:
		target = env.PaddleSpeed
	case ballY < p.Y:
		target = -env.PaddleSpeed
	}

	if target != p.VY && p.sinceChange >= parameter.ReactionTime {
		p.VY = target
		p.sinceChange = 0
	}
}

// Clamp confines the paddle to [W, height - H - W]
func (p *Paddle) Clamp(height float64) {
	if p.Y < p.W {
		p.Y = p.W
	} else if p.Y+p.H > height-p.W {
		p.Y = height - p.H - p.W
	}
}

// TrackBounds returns the allowed range of Y
func (p *Paddle) TrackBounds(height float64) (lo, hi float64) {
	return p.W, height - p.H - p.W
}
