package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bouncy/engine"
	"github.com/lixenwraith/bouncy/parameter"
)

// hold tracks a paddle key that terminals only report as presses and repeats
type hold struct {
	dir   float64
	until time.Time
}

// Machine turns key presses into world intents
// Terminals send no key-up, so a paddle key counts as released once its repeats stop
type Machine struct {
	table       *KeyTable
	clock       engine.TimeProvider
	paddleSpeed float64
	gravityStep float64
	held        [2]hold
}

func NewMachine(table *KeyTable, clock engine.TimeProvider, paddleSpeed, gravityStep float64) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{
		table:       table,
		clock:       clock,
		paddleSpeed: paddleSpeed,
		gravityStep: gravityStep,
	}
}

// ProcessEvent handles key events and ignores everything else
func (m *Machine) ProcessEvent(ev tcell.Event) (intents []engine.Intent, quit bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return nil, false
	}
	return m.Process(key.Key(), key.Rune())
}

// Process maps one key press; quit is set for quit bindings
func (m *Machine) Process(key tcell.Key, ch rune) (intents []engine.Intent, quit bool) {
	entry, ok := m.table.Lookup(key, ch)
	if !ok {
		return nil, false
	}

	switch entry.Behavior {
	case BehaviorSystem:
		return nil, entry.Action == ActionQuit
	case BehaviorPaddle:
		if in := m.press(entry.Paddle, entry.Dir); in != nil {
			return []engine.Intent{in}, false
		}
		return nil, false
	case BehaviorAction:
		return m.action(entry.Action), false
	}
	return nil, false
}

func (m *Machine) action(a Action) []engine.Intent {
	switch a {
	case ActionPause:
		return []engine.Intent{engine.TogglePause{}}
	case ActionFire:
		return []engine.Intent{engine.Fire{}}
	case ActionGravityDown:
		return []engine.Intent{engine.AdjustGravity{Delta: -m.gravityStep}}
	case ActionGravityUp:
		return []engine.Intent{engine.AdjustGravity{Delta: m.gravityStep}}
	case ActionStartSingle:
		m.held = [2]hold{}
		return []engine.Intent{engine.Start{SinglePlayer: true}}
	case ActionStartTwo:
		m.held = [2]hold{}
		return []engine.Intent{engine.Start{SinglePlayer: false}}
	}
	return nil
}

// press starts or extends a hold; only a direction change yields an intent
func (m *Machine) press(side engine.PaddleSide, dir float64) engine.Intent {
	now := m.clock.Now()
	h := &m.held[side]
	if h.dir == dir {
		h.until = now.Add(parameter.KeyHoldTimeout)
		return nil
	}
	h.dir = dir
	h.until = now.Add(parameter.KeyRepeatDelay)
	return engine.SetPaddleVelocity{Paddle: side, VY: dir * m.paddleSpeed}
}

// Expire releases holds whose repeats have stopped
func (m *Machine) Expire() []engine.Intent {
	now := m.clock.Now()
	var out []engine.Intent
	for side := range m.held {
		h := &m.held[side]
		if h.dir != 0 && !now.Before(h.until) {
			h.dir = 0
			out = append(out, engine.SetPaddleVelocity{Paddle: engine.PaddleSide(side), VY: 0})
		}
	}
	return out
}
