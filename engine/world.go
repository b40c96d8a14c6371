package engine

import (
	"log"
	"math"
	"slices"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/bouncy/config"
	"github.com/lixenwraith/bouncy/parameter"
	"github.com/lixenwraith/bouncy/physics"
	"github.com/lixenwraith/bouncy/status"
	"github.com/lixenwraith/bouncy/vmath"
)

// Stat keys registered by every world
const (
	StatTicks          = "engine.ticks"
	StatBallCollisions = "engine.collisions.ball"
	StatPaddleContacts = "engine.collisions.paddle"
	StatSpawns         = "engine.spawns"
	StatRemovals       = "engine.removals"
	StatBalls          = "engine.balls"
)

// World owns every body of one game and advances them together
// Not safe for concurrent use; the game loop is the only caller
type World struct {
	cfg   *config.Config
	rules Rules

	width, height float64
	ballSpeed     float64
	ballRadius    float64
	paddleSpeed   float64
	bounceSpeed   float64

	// bodies holds every body in insertion order; balls and paddles are views of it
	bodies  []physics.Body
	balls   []*physics.Circle
	paddles []*physics.Paddle
	left    *physics.Paddle
	right   *physics.Paddle

	leftScore, rightScore int
	singlePlayer          bool

	paused  bool
	phase   Phase
	gravity float64

	// Spawn gate: armed on start and whenever a ball leaves
	spawnArmed   bool
	spawnElapsed time.Duration
	spawnSkipDt  bool

	rng    *vmath.FastRand
	env    physics.Env
	events []physics.Event

	// events[stepEnd:] were emitted by intents since the last step
	stepEnd int

	stats          *status.Registry
	ticks          *atomic.Int64
	ballHits       *atomic.Int64
	paddleContacts *atomic.Int64
	spawns         *atomic.Int64
	removals       *atomic.Int64
	ballCount      *status.AtomicFloat
}

// NewWorld builds an empty arena; a nil config uses config.Default
func NewWorld(cfg *config.Config) *World {
	if cfg == nil {
		cfg = config.Default()
	}
	return NewWorldWithStats(cfg, status.NewRegistry())
}

// NewWorldWithStats builds a world that publishes counters into stats
func NewWorldWithStats(cfg *config.Config, stats *status.Registry) *World {
	ballSpeed := parameter.BallSpeedFraction * cfg.Height
	w := &World{
		cfg:         cfg,
		rules:       RulesFor(cfg),
		width:       cfg.Width,
		height:      cfg.Height,
		ballSpeed:   ballSpeed,
		ballRadius:  parameter.BallRadiusFraction * cfg.Height,
		paddleSpeed: parameter.PaddleSpeedFactor * ballSpeed,
		bounceSpeed: parameter.BounceSpeedFactor * ballSpeed,
		gravity:     cfg.GravityOrDefault(),
		rng:         vmath.NewFastRand(cfg.Seed),
		stats:       stats,
	}

	w.ticks = stats.Counter(StatTicks)
	w.ballHits = stats.Counter(StatBallCollisions)
	w.paddleContacts = stats.Counter(StatPaddleContacts)
	w.spawns = stats.Counter(StatSpawns)
	w.removals = stats.Counter(StatRemovals)
	w.ballCount = stats.Gauge(StatBalls)

	if w.rules.Menu {
		w.phase = PhaseStart
		w.paused = true
	} else {
		w.phase = PhasePlay
	}

	log.Printf("[ENGINE] world %s %vx%v seed=%d gravity=%v", cfg.Mode, w.width, w.height, cfg.Seed, w.gravity)
	return w
}

// Apply consumes intents in order
func (w *World) Apply(intents ...Intent) {
	for _, in := range intents {
		if in != nil {
			in.apply(w)
		}
	}
}

// Step advances the simulation by dt seconds; negative or non-finite dt counts as 0
func (w *World) Step(dt float64) {
	dt = vmath.Finite(dt)
	if dt < 0 {
		dt = 0
	}
	w.events = w.events[:copy(w.events, w.events[w.stepEnd:])]

	w.collideBalls()
	w.removeEscaped()

	w.env = physics.Env{
		Width:       w.width,
		Height:      w.height,
		Paddles:     w.paddles,
		Balls:       w.balls,
		Paused:      w.paused,
		BounceSpeed: w.bounceSpeed,
		PaddleSpeed: w.paddleSpeed,
		PaddlePush:  w.rules.PaddlePush,
		Sides:       w.rules.Sides,
		Events:      w.events,
	}
	for _, b := range w.bodies {
		b.Update(dt, &w.env)
	}
	w.events = w.env.Events
	for _, ev := range w.events {
		if ev.Type == physics.EventPaddle {
			w.paddleContacts.Add(1)
		}
	}

	w.advanceSpawnGate(dt)
	w.stepEnd = len(w.events)

	w.ticks.Add(1)
	w.ballCount.Set(float64(len(w.balls)))
}

// collideBalls resolves every unordered ball pair once
func (w *World) collideBalls() {
	for i := 0; i < len(w.balls); i++ {
		for j := i + 1; j < len(w.balls); j++ {
			a, b := w.balls[i], w.balls[j]
			relative := math.Hypot(a.VX-b.VX, a.VY-b.VY)
			if physics.ResolveCircles(a, b) {
				w.ballHits.Add(1)
				w.emit(physics.EventBall, (a.X+b.X)/2, (a.Y+b.Y)/2, relative)
			}
		}
	}
}

// removeEscaped drops balls whose centre left the arena sideways, scoring per mode
func (w *World) removeEscaped() {
	if w.rules.Sides == physics.SidesReflect {
		return
	}

	kept := w.balls[:0]
	removed := false
	for _, b := range w.balls {
		if b.X >= 0 && b.X <= w.width {
			kept = append(kept, b)
			continue
		}
		if w.rules.Sides == physics.SidesScore {
			if b.X < 0 {
				w.rightScore++
			} else {
				w.leftScore++
			}
			w.emit(physics.EventScore, b.X, b.Y, 0)
			log.Printf("[ENGINE] score %d:%d", w.leftScore, w.rightScore)
		}
		w.removeBody(b)
		w.removals.Add(1)
		removed = true
	}
	clear(w.balls[len(kept):])
	w.balls = kept

	if removed && w.rules.Serve {
		w.armSpawnGate()
		// This step's dt elapsed before the removal was seen
		w.spawnSkipDt = true
	}
}

func (w *World) removeBody(target physics.Body) {
	if i := slices.Index(w.bodies, target); i >= 0 {
		w.bodies = slices.Delete(w.bodies, i, i+1)
	}
}

func (w *World) armSpawnGate() {
	w.spawnArmed = true
	w.spawnElapsed = 0
	w.spawnSkipDt = false
}

// advanceSpawnGate serves once SpawnDelay of stepped time has passed since arming
// Time keeps counting while paused; a due serve waits for the first unpaused step
func (w *World) advanceSpawnGate(dt float64) {
	if !w.spawnArmed {
		return
	}
	if w.spawnSkipDt {
		w.spawnSkipDt = false
		return
	}
	w.spawnElapsed += physics.DurationOf(dt)
	if w.spawnElapsed >= parameter.SpawnDelay && !w.paused {
		w.serve()
		w.spawnArmed = false
	}
}

// serve spawns a ball at centre width, random height, heading left or right inside the cone
func (w *World) serve() {
	r := w.ballRadius
	angle := w.rng.Range(-parameter.SpawnConeHalfAngle, parameter.SpawnConeHalfAngle)
	y := w.rng.Range(r, w.height-r)
	vx, vy := vmath.FromAngle(angle, w.ballSpeed)
	if w.rng.Bool() {
		vx = -vx
	}
	w.spawn(w.width/2, y, vx, vy)
}

// fire spawns one ball at the mode's launch point
func (w *World) fire() {
	if len(w.balls) >= parameter.MaxBalls {
		return
	}
	switch {
	case w.rules.Launcher:
		l := w.cfg.LaunchOrDefault()
		vx, vy := vmath.FromAngle(l.Angle, l.Speed)
		w.spawn(l.X, l.Y, vx, vy)
	case w.rules.Menu:
		w.serve()
	default:
		// Drop from the top centre with a random sideways heading
		angle := w.rng.Range(-parameter.SpawnConeHalfAngle, parameter.SpawnConeHalfAngle)
		vx, vy := vmath.FromAngle(angle, w.ballSpeed)
		if w.rng.Bool() {
			vx = -vx
		}
		w.spawn(w.width/2, w.ballRadius, vx, vy)
	}
}

func (w *World) spawn(x, y, vx, vy float64) *physics.Circle {
	c := physics.NewCircle(x, y, vx, vy, w.ballRadius, w.rng.Intn(parameter.ColorCount))
	w.AddBall(c)
	w.spawns.Add(1)
	w.emit(physics.EventSpawn, x, y, c.Speed())
	return c
}

// AddBall inserts c at the end of the roster and applies the world's gravity and pause state
func (w *World) AddBall(c *physics.Circle) {
	c.AY = w.gravity
	c.CachedAY = w.gravity
	if w.paused {
		c.Pause()
	}
	w.balls = append(w.balls, c)
	w.bodies = append(w.bodies, c)
}

// start places both paddles and begins play
func (w *World) start(singlePlayer bool) {
	pw := parameter.PaddleWidthFraction * w.width
	ph := parameter.PaddleHeightFraction * w.height
	inset := parameter.PaddleInsetFactor * pw
	y := w.height/2 - ph/2

	w.singlePlayer = singlePlayer
	w.left = physics.NewPaddle(inset, y, pw, ph, singlePlayer)
	w.right = physics.NewPaddle(w.width-pw-inset, y, pw, ph, false)
	w.paddles = append(w.paddles, w.left, w.right)
	w.bodies = append(w.bodies, w.left, w.right)

	w.phase = PhasePlay
	w.setPaused(false)
	w.armSpawnGate()
	log.Printf("[ENGINE] start single=%v", singlePlayer)
}

// setPaused applies pause or resume to every body in one pass
func (w *World) setPaused(paused bool) {
	if w.paused == paused {
		return
	}
	w.paused = paused
	for _, b := range w.bodies {
		if paused {
			b.Pause()
		} else {
			b.Resume()
		}
	}
}

func (w *World) setGravity(ay float64) {
	w.gravity = ay
	for _, c := range w.balls {
		c.SetAccelerationY(ay, w.paused)
	}
}

func (w *World) paddle(side PaddleSide) *physics.Paddle {
	if side == PaddleLeft {
		return w.left
	}
	return w.right
}

func (w *World) emit(typ physics.EventType, x, y, speed float64) {
	w.events = append(w.events, physics.Event{Type: typ, X: x, Y: y, Speed: speed})
}

func (w *World) Paused() bool { return w.paused }
func (w *World) Phase() Phase { return w.phase }
func (w *World) Gravity() float64 { return w.gravity }
func (w *World) Rules() Rules { return w.rules }
func (w *World) Width() float64 { return w.width }
func (w *World) Height() float64 { return w.height }
func (w *World) BallSpeed() float64 { return w.ballSpeed }

// PaddleSpeed is the speed of CPU tracking and of manual key control
func (w *World) PaddleSpeed() float64 { return w.paddleSpeed }

// Scores returns the left and right player scores
func (w *World) Scores() (left, right int) { return w.leftScore, w.rightScore }

// Balls returns the live ball roster; callers must not modify the slice
func (w *World) Balls() []*physics.Circle { return w.balls }

// Paddle returns the paddle on side, or nil before Start
func (w *World) Paddle(side PaddleSide) *physics.Paddle { return w.paddle(side) }

// Bodies returns the roster in insertion order; callers must not modify the slice
func (w *World) Bodies() []physics.Body { return w.bodies }

func (w *World) Stats() *status.Registry { return w.stats }

// SpawnPending reports whether the spawn gate is armed
func (w *World) SpawnPending() bool { return w.spawnArmed }
