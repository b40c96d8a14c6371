package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bouncy/config"
	"github.com/lixenwraith/bouncy/engine"
	"github.com/lixenwraith/bouncy/input"
	"github.com/lixenwraith/bouncy/parameter"
	"github.com/lixenwraith/bouncy/physics"
	"github.com/lixenwraith/bouncy/render"
	"github.com/lixenwraith/bouncy/status"
)

// soundPlayer is the part of audio.Player the loop needs
type soundPlayer interface {
	PlayEvents(events []physics.Event)
}

// game wires the world to the terminal, keyboard, clock and speaker
type game struct {
	screen   tcell.Screen
	world    *engine.World
	clock    *engine.FrameClock
	keys     *input.Machine
	renderer *render.Renderer
	player   soundPlayer
	stats    *status.Registry

	pending []engine.Intent
	frameDt *status.AtomicFloat
}

func newGame(cfg *config.Config, screen tcell.Screen, player soundPlayer, tp engine.TimeProvider) *game {
	stats := status.NewRegistry()
	world := engine.NewWorldWithStats(cfg, stats)

	g := &game{
		screen:   screen,
		world:    world,
		clock:    engine.NewFrameClock(tp, cfg.FrameCap),
		keys:     input.NewMachine(input.DefaultKeyTable(), tp, world.PaddleSpeed(), parameter.GravityStepFraction*cfg.Height),
		renderer: render.NewRenderer(screen),
		player:   player,
		stats:    stats,
		frameDt:  stats.Gauge("loop.dt_ms"),
	}
	g.renderer.ShowStats = cfg.Debug

	if cfg.SinglePlayer && world.Phase() == engine.PhaseStart {
		world.Apply(engine.Start{SinglePlayer: true})
	}
	return g
}

// handleEvent queues intents from one terminal event; returns false on quit
func (g *game) handleEvent(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		g.screen.Sync()
		return true
	}
	intents, quit := g.keys.ProcessEvent(ev)
	if quit {
		return false
	}
	g.pending = append(g.pending, intents...)
	return true
}

// tick runs one frame: intents, step, sounds, draw
func (g *game) tick() {
	g.pending = append(g.pending, g.keys.Expire()...)
	g.world.Apply(g.pending...)
	clear(g.pending)
	g.pending = g.pending[:0]

	dt := g.clock.Tick()
	g.frameDt.Set(dt * 1000)
	g.world.Step(dt)

	snap := g.world.Snapshot()
	if g.player != nil {
		g.player.PlayEvents(snap.Events)
	}
	g.renderer.Draw(snap, g.stats.Line())
}

func (g *game) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.InputChannelSize)
	go func() {
		for {
			ev := g.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	log.Printf("[MAIN] loop started")
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleEvent(ev) {
				log.Printf("[MAIN] quit after %d ticks", g.stats.Counter(engine.StatTicks).Load())
				return
			}
		case <-ticker.C:
			g.tick()
		}
	}
}
