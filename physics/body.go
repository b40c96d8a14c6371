package physics

// Body is any simulated object the world steps and draws
type Body interface {
	Update(dt float64, env *Env)
	Pause()
	Resume()
	Shape() Shape
}

// ShapeKind discriminates drawable bodies
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Shape is the read-only render state of a body
type Shape struct {
	Kind ShapeKind
	X, Y float64 // circle: centre; rect: top-left corner
	W, H float64
	// Radius is zero for rectangles
	Radius float64
	Color  int
}

// Sides selects what happens when a ball reaches the left or right edge
type Sides uint8

const (
	// SidesScore removes the ball and credits the opposite player
	SidesScore Sides = iota
	// SidesRemove removes the ball without scoring
	SidesRemove
	// SidesReflect bounces the ball off elastic side walls
	SidesReflect
)

// EventType classifies what happened during a step
type EventType uint8

const (
	EventPaddle EventType = iota
	EventFloor
	EventCeiling
	EventWall
	EventBall
	EventScore
	EventSpawn
)

// Event records one contact or roster change for sound and stats
type Event struct {
	Type  EventType
	X, Y  float64
	Speed float64
}

// Env is the per-step context bodies read, replacing shared globals
type Env struct {
	Width, Height float64

	Paddles []*Paddle
	Balls   []*Circle

	Paused bool

	// BounceSpeed is the outgoing speed after a paddle edge bounce
	BounceSpeed float64
	// PaddleSpeed is the automatic paddle tracking speed
	PaddleSpeed float64
	// PaddlePush lets a face bounce add the paddle's own velocity
	PaddlePush bool
	Sides      Sides

	Events []Event
}

// Emit appends an event; nil Env discards it
func (e *Env) Emit(typ EventType, x, y, speed float64) {
	if e == nil {
		return
	}
	e.Events = append(e.Events, Event{Type: typ, X: x, Y: y, Speed: speed})
}
