package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bouncy/config"
	"github.com/lixenwraith/bouncy/engine"
	"github.com/lixenwraith/bouncy/physics"
)

type recordingPlayer struct {
	calls  int
	events []physics.Event
}

func (r *recordingPlayer) PlayEvents(events []physics.Event) {
	r.calls++
	r.events = append(r.events, events...)
}

func newTestGame(t *testing.T, cfg *config.Config) (*game, *engine.MockTimeProvider, *recordingPlayer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	player := &recordingPlayer{}
	return newGame(cfg, screen, player, clock), clock, player, screen
}

func TestGameShowsMenuByDefault(t *testing.T) {
	g, _, _, screen := newTestGame(t, config.Default())
	if g.world.Phase() != engine.PhaseStart {
		t.Fatalf("phase = %v, want start", g.world.Phase())
	}

	g.tick()
	screen.Show()

	cells, w, h := screen.GetContents()
	var sb strings.Builder
	for i := 0; i < w*h; i++ {
		sb.WriteString(string(cells[i].Runes))
	}
	if !strings.Contains(sb.String(), "One Player") {
		t.Error("menu text not drawn")
	}
}

func TestGameSinglePlayerSkipsMenu(t *testing.T) {
	cfg := config.Default()
	cfg.SinglePlayer = true
	g, _, _, _ := newTestGame(t, cfg)

	if g.world.Phase() != engine.PhasePlay {
		t.Fatalf("phase = %v, want play", g.world.Phase())
	}
	if g.world.Paused() {
		t.Error("single player start should unpause")
	}
}

func TestGameTickSpawnsAfterDelay(t *testing.T) {
	cfg := config.Default()
	cfg.SinglePlayer = true
	g, clock, player, _ := newTestGame(t, cfg)

	for i := 0; i < 80; i++ {
		clock.Advance(16 * time.Millisecond)
		g.tick()
	}

	if n := len(g.world.Balls()); n != 1 {
		t.Fatalf("balls = %d, want 1 after ~1.3s", n)
	}
	if player.calls != 80 {
		t.Errorf("player called %d times, want 80", player.calls)
	}
	if got := g.stats.Counter(engine.StatTicks).Load(); got != 80 {
		t.Errorf("ticks = %d, want 80", got)
	}
	if dt := g.frameDt.Get(); dt < 15.9 || dt > 16.1 {
		t.Errorf("frame dt = %.2fms, want 16", dt)
	}
}

func TestGameFrameCapAfterStall(t *testing.T) {
	cfg := config.Default()
	cfg.SinglePlayer = true
	g, clock, _, _ := newTestGame(t, cfg)

	clock.Advance(2 * time.Second)
	g.tick()

	if dt := g.frameDt.Get(); dt > cfg.FrameCap*1000+1e-9 {
		t.Errorf("frame dt = %.2fms, want capped at %.0fms", dt, cfg.FrameCap*1000)
	}
	if len(g.world.Balls()) != 0 {
		t.Error("a single stalled frame must not satisfy the spawn delay")
	}
}

func TestGameResizeKeepsRunning(t *testing.T) {
	g, _, _, screen := newTestGame(t, config.Default())
	screen.SetSize(100, 30)
	if !g.handleEvent(tcell.NewEventResize(100, 30)) {
		t.Error("resize should not quit")
	}
}

func TestApplyFlagsRejectsUnknownMode(t *testing.T) {
	cfg := config.Default()
	old := *modeFlag
	*modeFlag = "tennis"
	defer func() { *modeFlag = old }()

	if err := applyFlags(cfg); err == nil {
		t.Error("expected error for unknown mode")
	}
}
