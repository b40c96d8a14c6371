package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bouncy/engine"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorPaddle
	BehaviorAction
	BehaviorSystem
)

// Action identifies a one-shot command
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionFire
	ActionGravityDown
	ActionGravityUp
	ActionStartSingle
	ActionStartTwo
)

// KeyEntry describes a binding without function pointers
type KeyEntry struct {
	Behavior KeyBehavior
	Action   Action
	Paddle   engine.PaddleSide
	// Dir is -1 for up, +1 for down
	Dir float64
}

// KeyTable maps special keys and runes to bindings
type KeyTable struct {
	SpecialKeys map[tcell.Key]KeyEntry
	Runes       map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Behavior: BehaviorSystem, Action: ActionQuit},
			tcell.KeyEscape: {Behavior: BehaviorSystem, Action: ActionQuit},
			tcell.KeyUp:     {Behavior: BehaviorPaddle, Paddle: engine.PaddleRight, Dir: -1},
			tcell.KeyDown:   {Behavior: BehaviorPaddle, Paddle: engine.PaddleRight, Dir: 1},
		},
		Runes: map[rune]KeyEntry{
			'q': {Behavior: BehaviorSystem, Action: ActionQuit},
			'p': {Behavior: BehaviorAction, Action: ActionPause},
			' ': {Behavior: BehaviorAction, Action: ActionFire},
			'g': {Behavior: BehaviorAction, Action: ActionGravityDown},
			'G': {Behavior: BehaviorAction, Action: ActionGravityUp},
			'1': {Behavior: BehaviorAction, Action: ActionStartSingle},
			'2': {Behavior: BehaviorAction, Action: ActionStartTwo},
			'w': {Behavior: BehaviorPaddle, Paddle: engine.PaddleLeft, Dir: -1},
			's': {Behavior: BehaviorPaddle, Paddle: engine.PaddleLeft, Dir: 1},
			'i': {Behavior: BehaviorPaddle, Paddle: engine.PaddleRight, Dir: -1},
			'k': {Behavior: BehaviorPaddle, Paddle: engine.PaddleRight, Dir: 1},
		},
	}
}

// Lookup resolves a key; runes are only consulted for tcell.KeyRune
func (t *KeyTable) Lookup(key tcell.Key, ch rune) (KeyEntry, bool) {
	if key == tcell.KeyRune {
		e, ok := t.Runes[ch]
		return e, ok
	}
	e, ok := t.SpecialKeys[key]
	return e, ok
}
