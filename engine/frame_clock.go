package engine

import (
	"time"

	"github.com/lixenwraith/bouncy/parameter"
)

// FrameClock measures elapsed seconds between ticks with a hard ceiling
type FrameClock struct {
	provider TimeProvider
	frameCap float64
	last     time.Time
}

// NewFrameClock starts measuring from provider's current time; non-positive frameCap uses the default
func NewFrameClock(provider TimeProvider, frameCap float64) *FrameClock {
	if !(frameCap > 0) {
		frameCap = parameter.FrameCap
	}
	return &FrameClock{
		provider: provider,
		frameCap: frameCap,
		last:     provider.Now(),
	}
}

// Tick returns seconds since the previous tick, capped at frameCap
// A clock that moved backwards yields 0
func (c *FrameClock) Tick() float64 {
	now := c.provider.Now()
	elapsed := now.Sub(c.last).Seconds()
	c.last = now
	if elapsed < 0 {
		return 0
	}
	return min(elapsed, c.frameCap)
}

// Reset discards time accumulated since the last tick
func (c *FrameClock) Reset() {
	c.last = c.provider.Now()
}

func (c *FrameClock) FrameCap() float64 {
	return c.frameCap
}
