package physics

import (
	"math"

	"github.com/lixenwraith/bouncy/parameter"
	"github.com/lixenwraith/bouncy/vmath"
)

// contactEpsilon absorbs rounding when a step ends exactly on the floor
const contactEpsilon = 1e-9

// Circle is a movable disc; mass is proportional to area
type Circle struct {
	Kinetic
	Radius float64
	Mass   float64
	Color  int
}

// NewCircle creates a disc with mass π·r²
func NewCircle(x, y, vx, vy, radius float64, color int) *Circle {
	return &Circle{
		Kinetic: NewKinetic(x, y, vx, vy),
		Radius:  radius,
		Mass:    math.Pi * radius * radius,
		Color:   color,
	}
}

// Shape returns the circle's render state
func (c *Circle) Shape() Shape {
	return Shape{
		Kind:   ShapeCircle,
		X:      c.X,
		Y:      c.Y,
		W:      2 * c.Radius,
		H:      2 * c.Radius,
		Radius: c.Radius,
		Color:  c.Color,
	}
}

// Update advances the circle by dt: paddle contacts, horizontal motion, then vertical motion with floor and ceiling
func (c *Circle) Update(dt float64, env *Env) {
	collided := false
	heightCorrection := 0.0
	tAfter := dt
	r := c.Radius
	cornerBand := parameter.CornerBounceFactor * r

	for _, p := range env.Paddles {
		switch {
		case c.X+r > p.X && c.X-r < p.X+p.W:
			if c.Y <= p.Y+p.H && c.Y >= p.Y-r {
				c.bounceTop(p, dt, env)
			} else if c.Y <= p.Y+p.H+r && c.Y >= p.Y {
				c.bounceBottom(p, dt, env)
			}

		case c.VX != 0 &&
			c.X+r+dt*c.VX > p.X &&
			c.X-r+dt*c.VX < p.X+p.W &&
			c.Y <= p.Y+p.H+cornerBand &&
			c.Y >= p.Y-cornerBand:
			tAfter, heightCorrection = c.bounceEdge(p, dt, env)
			collided = true
		}
	}

	if !collided {
		c.X += dt * c.VX
	}
	if env.Sides == SidesReflect {
		c.reflectWalls(env)
	}

	if c.AY == 0 {
		c.Y += heightCorrection + tAfter*c.VY
		if c.Y+r > env.Height {
			c.Y = env.Height - r
			c.VY = -c.VY
			env.Emit(EventFloor, c.X, c.Y, c.Speed())
		}
	} else {
		c.fall(dt, env)
	}

	if c.Y-r < 0 {
		c.Y = r
		c.VY = -c.VY
		env.Emit(EventCeiling, c.X, c.Y, c.Speed())
	}
}

// bounceTop sends the ball upward off the paddle's top face and parks it just above
func (c *Circle) bounceTop(p *Paddle, dt float64, env *Env) {
	if env.PaddlePush && p.VY < 0 && p.Y+dt*p.VY > p.W {
		c.VY = p.VY - math.Abs(c.VY)
	} else {
		c.VY = -math.Abs(c.VY)
	}
	c.Y = p.Y - c.Radius
	env.Emit(EventPaddle, c.X, c.Y, c.Speed())
}

// bounceBottom mirrors bounceTop for the bottom face
func (c *Circle) bounceBottom(p *Paddle, dt float64, env *Env) {
	if env.PaddlePush && p.VY > 0 && p.Y+p.H+dt*p.VY < env.Height-p.W {
		c.VY = p.VY + math.Abs(c.VY)
	} else {
		c.VY = math.Abs(c.VY)
	}
	c.Y = p.Y + p.H + c.Radius
	env.Emit(EventPaddle, c.X, c.Y, c.Speed())
}

// bounceEdge reflects off the paddle's near side at the exact contact instant
// Returns the time left in the step after contact and the vertical drift before it
func (c *Circle) bounceEdge(p *Paddle, dt float64, env *Env) (tAfter, heightCorrection float64) {
	var distance float64
	if c.VX < 0 {
		distance = (c.X - c.Radius) - (p.X + p.W)
	} else {
		distance = p.X - (c.X + c.Radius)
	}
	tBefore := math.Min(math.Abs(distance/c.VX), dt)
	tAfter = dt - tBefore
	heightCorrection = tBefore * c.VY

	// -0.5 at the top edge, 0.5 at the bottom edge
	fraction := (c.Y - (p.Y + 0.5*p.H)) / p.H
	angle := fraction * 0.5 * math.Pi

	c.VX = -vmath.Sign(c.VX) * env.BounceSpeed * math.Cos(angle)
	c.VY = env.BounceSpeed * math.Sin(angle)
	// Position advances at the new velocity
	if c.VX > 0 {
		c.X = p.X + p.W + c.Radius + tAfter*c.VX
	} else {
		c.X = p.X - c.Radius + tAfter*c.VX
	}

	env.Emit(EventPaddle, c.X, c.Y, c.Speed())
	return tAfter, heightCorrection
}

// reflectWalls keeps the ball between elastic side walls
func (c *Circle) reflectWalls(env *Env) {
	if c.X-c.Radius < 0 {
		c.X = c.Radius
		c.VX = math.Abs(c.VX)
		env.Emit(EventWall, c.X, c.Y, c.Speed())
	} else if c.X+c.Radius > env.Width {
		c.X = env.Width - c.Radius
		c.VX = -math.Abs(c.VX)
		env.Emit(EventWall, c.X, c.Y, c.Speed())
	}
}

// fall integrates constant acceleration over dt
// A floor contact inside the step is solved analytically so fast balls do not sink
func (c *Circle) fall(dt float64, env *Env) {
	v0 := c.VY
	a := c.AY
	floor := env.Height - c.Radius

	vEnd := v0 + a*dt
	yEnd := c.Y + v0*dt + 0.5*a*dt*dt

	if vEnd <= 0 || yEnd < floor-contactEpsilon {
		c.Y = yEnd
		c.VY = vEnd
		return
	}

	d := math.Max(floor-c.Y, 0)
	disc := math.Max(v0*v0+2*a*d, 0)
	vGround := math.Sqrt(disc)
	tFall := vmath.Clamp((vGround-v0)/a, 0, dt)
	tRise := dt - tFall

	c.VY = -vGround + a*tRise
	c.Y = floor - (vGround*tRise - 0.5*a*tRise*tRise)

	// Resting contact: the solve degenerates when the ball reaches the floor with no speed
	if c.Y > floor {
		c.Y = floor
		if c.VY > 0 {
			c.VY = 0
		}
	}

	// Resting and settling contacts stay silent
	if vGround >= parameter.FloorEventSpeedFraction*env.Height {
		env.Emit(EventFloor, c.X, c.Y, vGround)
	}
}
