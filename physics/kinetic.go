package physics

import (
	"math"
	"time"
)

// Kinetic is the shared motion state of every simulated body
// Cached* hold the live values while the body is paused
type Kinetic struct {
	X, Y   float64
	VX, VY float64
	// AY is constant downward acceleration in px/s², zero when gravity is off
	AY float64

	CachedVX, CachedVY, CachedAY float64
}

// NewKinetic seeds the cache with the live values so Resume on a never-paused body is a no-op
func NewKinetic(x, y, vx, vy float64) Kinetic {
	return Kinetic{
		X: x, Y: y,
		VX: vx, VY: vy,
		CachedVX: vx, CachedVY: vy,
	}
}

// Pause stores velocity and acceleration in the cache and zeroes them
// A second Pause caches zeros
func (k *Kinetic) Pause() {
	k.CachedVX = k.VX
	k.CachedVY = k.VY
	k.CachedAY = k.AY
	k.VX = 0
	k.VY = 0
	k.AY = 0
}

// Resume restores velocity and acceleration from the cache
func (k *Kinetic) Resume() {
	k.VX = k.CachedVX
	k.VY = k.CachedVY
	k.AY = k.CachedAY
}

// SetVelocityY writes the cache while paused so the change applies on resume
func (k *Kinetic) SetVelocityY(vy float64, paused bool) {
	if paused {
		k.CachedVY = vy
		return
	}
	k.VY = vy
}

// SetAccelerationY writes the cache while paused so the change applies on resume
func (k *Kinetic) SetAccelerationY(ay float64, paused bool) {
	if paused {
		k.CachedAY = ay
		return
	}
	k.AY = ay
}

// Speed returns the live velocity magnitude
func (k *Kinetic) Speed() float64 {
	return math.Hypot(k.VX, k.VY)
}

// DurationOf converts elapsed seconds to a Duration rounded to the nanosecond
// Negative and non-finite input yields 0
func DurationOf(dt float64) time.Duration {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return 0
	}
	return time.Duration(math.Round(dt * float64(time.Second)))
}
