package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/bouncy/vmath"
)

const eps = 1e-9

func newEnv() *Env {
	return &Env{
		Width:       800,
		Height:      600,
		BounceSpeed: 600,
		PaddleSpeed: 600,
	}
}

func hasEvent(env *Env, typ EventType) bool {
	for _, ev := range env.Events {
		if ev.Type == typ {
			return true
		}
	}
	return false
}

// TestFloorBounceConservesSpeed verifies an elastic floor bounce without gravity
func TestFloorBounceConservesSpeed(t *testing.T) {
	env := newEnv()
	c := NewCircle(400, 585, 120, 300, 10, 0)
	before := c.Speed()

	c.Update(0.05, env)

	if c.Y != env.Height-c.Radius {
		t.Errorf("Expected ball clamped to floor y=%v, got %v", env.Height-c.Radius, c.Y)
	}
	if c.VY != -300 {
		t.Errorf("Expected vy=-300 after floor bounce, got %v", c.VY)
	}
	if !vmath.ApproxEqual(c.Speed(), before, eps) {
		t.Errorf("Expected speed %v preserved, got %v", before, c.Speed())
	}
	if !hasEvent(env, EventFloor) {
		t.Error("Expected floor event")
	}
}

// TestCeilingBounceConservesSpeed verifies the ceiling clamp inverts vy only
func TestCeilingBounceConservesSpeed(t *testing.T) {
	env := newEnv()
	c := NewCircle(400, 12, -80, -200, 10, 0)
	before := c.Speed()

	c.Update(0.05, env)

	if c.Y != c.Radius {
		t.Errorf("Expected y clamped to radius, got %v", c.Y)
	}
	if c.VY != 200 {
		t.Errorf("Expected vy=200, got %v", c.VY)
	}
	if !vmath.ApproxEqual(c.Speed(), before, eps) {
		t.Errorf("Expected speed %v preserved, got %v", before, c.Speed())
	}
}

// TestWallBounceConservesSpeed verifies reflective side walls in sandbox mode
func TestWallBounceConservesSpeed(t *testing.T) {
	env := newEnv()
	env.Sides = SidesReflect

	c := NewCircle(795, 300, 400, 50, 10, 0)
	before := c.Speed()
	c.Update(0.05, env)

	if c.X != env.Width-c.Radius {
		t.Errorf("Expected x clamped to right wall, got %v", c.X)
	}
	if c.VX != -400 {
		t.Errorf("Expected vx=-400, got %v", c.VX)
	}
	if !vmath.ApproxEqual(c.Speed(), before, eps) {
		t.Errorf("Expected speed %v preserved, got %v", before, c.Speed())
	}

	left := NewCircle(5, 300, -400, 0, 10, 0)
	left.Update(0.05, env)
	if left.X != left.Radius || left.VX != 400 {
		t.Errorf("Expected left wall bounce to x=%v vx=400, got x=%v vx=%v", left.Radius, left.X, left.VX)
	}
}

// TestSidesScoreLeavesBallFree verifies balls cross side edges when walls are off
func TestSidesScoreLeavesBallFree(t *testing.T) {
	env := newEnv()
	c := NewCircle(5, 300, -400, 0, 10, 0)
	c.Update(0.05, env)
	if c.X != -15 {
		t.Errorf("Expected x=-15, got %v", c.X)
	}
}

// TestGravityBounceExact verifies a drop of exactly one fall time lands on the floor with full speed
func TestGravityBounceExact(t *testing.T) {
	env := newEnv()
	const (
		g      = 160.0
		height = 80.0
	)
	floor := env.Height - 10
	c := NewCircle(400, floor-height, 0, 0, 10, 0)
	c.AY = g

	dt := math.Sqrt(2 * height / g)
	c.Update(dt, env)

	if !vmath.ApproxEqual(c.Y, floor, eps) {
		t.Errorf("Expected ball on floor y=%v, got %v", floor, c.Y)
	}
	want := -math.Sqrt(2 * g * height)
	if !vmath.ApproxEqual(c.VY, want, eps) {
		t.Errorf("Expected vy=%v, got %v", want, c.VY)
	}
	if !hasEvent(env, EventFloor) {
		t.Error("Expected floor event")
	}
}

// TestGravityBounceMidStep verifies the post-bounce rise inside one long step conserves energy
func TestGravityBounceMidStep(t *testing.T) {
	env := newEnv()
	const g = 160.0
	floor := env.Height - 10
	c := NewCircle(400, floor-80, 0, 0, 10, 0)
	c.AY = g

	c.Update(1.5, env)

	if !vmath.ApproxEqual(c.VY, -80, eps) {
		t.Errorf("Expected vy=-80, got %v", c.VY)
	}
	if !vmath.ApproxEqual(c.Y, floor-60, eps) {
		t.Errorf("Expected y=%v, got %v", floor-60, c.Y)
	}

	// Energy per unit mass relative to the floor
	e := 0.5*c.VY*c.VY + g*(floor-c.Y)
	if !vmath.ApproxEqual(e, g*80, 1e-9) {
		t.Errorf("Expected energy %v, got %v", g*80, e)
	}
}

// TestGravityRestingOnFloor verifies a ball at rest on the floor stays there
func TestGravityRestingOnFloor(t *testing.T) {
	env := newEnv()
	floor := env.Height - 10
	c := NewCircle(400, floor, 0, 0, 10, 0)
	c.AY = 160

	for i := 0; i < 20; i++ {
		c.Update(0.05, env)
	}
	if c.Y != floor || c.VY != 0 {
		t.Errorf("Expected resting ball at y=%v vy=0, got y=%v vy=%v", floor, c.Y, c.VY)
	}
}

// TestGravityRestingIsSilent verifies a resting ball stops reporting floor contacts
func TestGravityRestingIsSilent(t *testing.T) {
	env := newEnv()
	floor := env.Height - 10
	c := NewCircle(400, floor, 0, 0, 10, 0)
	c.AY = 900

	contacts := 0
	for i := 0; i < 60; i++ {
		env.Events = env.Events[:0]
		c.Update(0.016, env)
		if hasEvent(env, EventFloor) {
			contacts++
		}
	}
	if contacts != 0 {
		t.Errorf("Expected no floor events while resting, got %d of 60 steps", contacts)
	}

	// A real drop still reports
	c.Y = floor - 100
	c.VY = 0
	env.Events = env.Events[:0]
	for i := 0; i < 60 && !hasEvent(env, EventFloor); i++ {
		c.Update(0.016, env)
	}
	if !hasEvent(env, EventFloor) {
		t.Error("Expected floor event after a 100px drop")
	}
}

// TestGravityFreeFall verifies constant-acceleration kinematics away from the floor
func TestGravityFreeFall(t *testing.T) {
	env := newEnv()
	c := NewCircle(400, 100, 0, 10, 10, 0)
	c.AY = 100

	c.Update(0.5, env)

	if !vmath.ApproxEqual(c.VY, 60, eps) {
		t.Errorf("Expected vy=60, got %v", c.VY)
	}
	if !vmath.ApproxEqual(c.Y, 100+5+12.5, eps) {
		t.Errorf("Expected y=117.5, got %v", c.Y)
	}
}

// TestNegativeGravityAccepted verifies upward acceleration pushes the ball into the ceiling
func TestNegativeGravityAccepted(t *testing.T) {
	env := newEnv()
	c := NewCircle(400, 12, 0, 0, 10, 0)
	c.AY = -2000

	c.Update(0.05, env)

	if c.Y != c.Radius {
		t.Errorf("Expected ceiling clamp y=%v, got %v", c.Radius, c.Y)
	}
	if c.VY <= 0 {
		t.Errorf("Expected vy inverted to downward, got %v", c.VY)
	}
	if math.IsNaN(c.Y) || math.IsNaN(c.VY) {
		t.Fatal("Expected finite state")
	}
}

func paddleEnv(p *Paddle) *Env {
	env := newEnv()
	env.Paddles = []*Paddle{p}
	return env
}

// TestEdgeBounceCentre verifies a centred hit returns horizontally at bounce speed with sub-step timing
func TestEdgeBounceCentre(t *testing.T) {
	p := NewPaddle(100, 200, 20, 90, false)
	env := paddleEnv(p)
	c := NewCircle(140, 245, -200, 0, 10, 0)

	c.Update(0.1, env)

	if !vmath.ApproxEqual(c.VX, 600, eps) {
		t.Errorf("Expected vx=600, got %v", c.VX)
	}
	if !vmath.ApproxEqual(c.VY, 0, eps) {
		t.Errorf("Expected vy=0, got %v", c.VY)
	}
	// 0.05s to reach the edge, 0.05s at the new velocity
	if !vmath.ApproxEqual(c.X, 160, eps) {
		t.Errorf("Expected x=160, got %v", c.X)
	}
	if !vmath.ApproxEqual(c.Y, 245, eps) {
		t.Errorf("Expected y=245, got %v", c.Y)
	}
	if !hasEvent(env, EventPaddle) {
		t.Error("Expected paddle event")
	}
}

// TestEdgeBounceAngle verifies contact at the paddle top angles the ball upward and applies pre-contact drift
func TestEdgeBounceAngle(t *testing.T) {
	p := NewPaddle(100, 200, 20, 90, false)
	env := paddleEnv(p)
	c := NewCircle(140, 200, -200, 100, 10, 0)

	c.Update(0.1, env)

	s := 600 * math.Cos(math.Pi/4)
	if !vmath.ApproxEqual(c.VX, s, eps) {
		t.Errorf("Expected vx=%v, got %v", s, c.VX)
	}
	if !vmath.ApproxEqual(c.VY, -s, eps) {
		t.Errorf("Expected vy=%v, got %v", -s, c.VY)
	}
	wantY := 200 + 0.05*100 + 0.05*(-s)
	if !vmath.ApproxEqual(c.Y, wantY, eps) {
		t.Errorf("Expected y=%v, got %v", wantY, c.Y)
	}
}

// TestEdgeBounceFromLeft verifies a ball approaching the left side goes back left
func TestEdgeBounceFromLeft(t *testing.T) {
	p := NewPaddle(700, 200, 20, 90, false)
	env := paddleEnv(p)
	c := NewCircle(680, 245, 200, 0, 10, 0)

	c.Update(0.1, env)

	if !vmath.ApproxEqual(c.VX, -600, eps) {
		t.Errorf("Expected vx=-600, got %v", c.VX)
	}
	// 0.05s to reach x=690, then 0.05s at -600
	if !vmath.ApproxEqual(c.X, 690-30, eps) {
		t.Errorf("Expected x=660, got %v", c.X)
	}
}

// TestEdgeBounceZeroVX verifies no edge bounce is computed without horizontal motion
func TestEdgeBounceZeroVX(t *testing.T) {
	p := NewPaddle(100, 200, 20, 90, false)
	env := paddleEnv(p)
	c := NewCircle(135, 245, 0, 50, 10, 0)

	c.Update(0.1, env)

	if c.X != 135 || c.VX != 0 {
		t.Errorf("Expected untouched x=135 vx=0, got x=%v vx=%v", c.X, c.VX)
	}
	if hasEvent(env, EventPaddle) {
		t.Error("Expected no paddle event")
	}
}

// TestTopFaceBounce verifies a ball landing on the paddle is sent up and parked above it
func TestTopFaceBounce(t *testing.T) {
	p := NewPaddle(100, 200, 20, 90, false)
	env := paddleEnv(p)
	c := NewCircle(110, 195, 0, 100, 10, 0)

	c.Update(0.1, env)

	if c.VY != -100 {
		t.Errorf("Expected vy=-100, got %v", c.VY)
	}
	if !vmath.ApproxEqual(c.Y, 180, eps) {
		t.Errorf("Expected y=180, got %v", c.Y)
	}
}

// TestTopFacePaddlePush verifies a rising paddle adds its velocity when push is enabled
func TestTopFacePaddlePush(t *testing.T) {
	p := NewPaddle(100, 200, 20, 90, false)
	p.VY = -400
	env := paddleEnv(p)
	env.PaddlePush = true
	c := NewCircle(110, 195, 0, 100, 10, 0)

	c.Update(0.1, env)

	if c.VY != -500 {
		t.Errorf("Expected vy=-500, got %v", c.VY)
	}

	env.PaddlePush = false
	c = NewCircle(110, 195, 0, 100, 10, 0)
	c.Update(0.1, env)
	if c.VY != -100 {
		t.Errorf("Expected vy=-100 without push, got %v", c.VY)
	}
}

// TestBottomFaceBounce verifies the symmetric bottom-face rule
func TestBottomFaceBounce(t *testing.T) {
	p := NewPaddle(100, 200, 20, 90, false)
	p.VY = 300
	env := paddleEnv(p)
	env.PaddlePush = true
	c := NewCircle(110, 295, 0, -50, 10, 0)

	c.Update(0.1, env)

	if c.VY != 350 {
		t.Errorf("Expected vy=350, got %v", c.VY)
	}
	if !vmath.ApproxEqual(c.Y, 300+35, eps) {
		t.Errorf("Expected y=335, got %v", c.Y)
	}
}

// TestCircleShape verifies render state
func TestCircleShape(t *testing.T) {
	c := NewCircle(1, 2, 0, 0, 3, 2)
	s := c.Shape()
	if s.Kind != ShapeCircle || s.X != 1 || s.Y != 2 || s.Radius != 3 || s.Color != 2 {
		t.Errorf("Unexpected shape %+v", s)
	}
	if !vmath.ApproxEqual(c.Mass, math.Pi*9, eps) {
		t.Errorf("Expected mass 9π, got %v", c.Mass)
	}
}
