package physics

import (
	"math"

	"github.com/lixenwraith/bouncy/vmath"
)

// ResolveCircles applies a 2D elastic collision to an overlapping, approaching pair
// Returns true if a response was applied
// Separating pairs are skipped, so a resolved pair does not re-trigger on residual overlap
func ResolveCircles(a, b *Circle) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	r2 := dx*dx + dy*dy
	sum := a.Radius + b.Radius
	if r2 > sum*sum {
		return false
	}

	// Coincident centres give dot = 0 and fall through here without dividing
	dot := vmath.DotProduct(a.VX-b.VX, a.VY-b.VY, dx, dy)
	if dot >= 0 {
		return false
	}

	totalMass := a.Mass + b.Mass
	k := dot / r2
	ax, ay := vmath.ScaleVector(dx, dy, 2*b.Mass/totalMass*k)
	bx, by := vmath.ScaleVector(dx, dy, 2*a.Mass/totalMass*k)

	a.VX -= ax
	a.VY -= ay
	b.VX += bx
	b.VY += by

	separate(a, b, sum)
	return true
}

// separate moves a out of b, first along a's new heading by the overlap, then along the line of centres if still overlapping
func separate(a, b *Circle, sum float64) {
	dist := math.Sqrt(vmath.DistanceSq(a.X, a.Y, b.X, b.Y))
	if dist == 0 {
		return
	}
	overlap := sum - dist
	if overlap <= 0 {
		return
	}

	ux, uy := vmath.Normalize2D(a.VX, a.VY)
	a.X += overlap * ux
	a.Y += overlap * uy

	dist = math.Sqrt(vmath.DistanceSq(a.X, a.Y, b.X, b.Y))
	if rest := sum - dist; rest > 0 && dist > 0 {
		nx, ny := (a.X-b.X)/dist, (a.Y-b.Y)/dist
		a.X += rest * nx
		a.Y += rest * ny
	}
}

// Momentum returns the total momentum of the given circles
func Momentum(circles ...*Circle) (px, py float64) {
	for _, c := range circles {
		px += c.Mass * c.VX
		py += c.Mass * c.VY
	}
	return px, py
}

// KineticEnergy returns the total kinetic energy of the given circles
func KineticEnergy(circles ...*Circle) float64 {
	var e float64
	for _, c := range circles {
		e += 0.5 * c.Mass * vmath.MagnitudeSq(c.VX, c.VY)
	}
	return e
}
