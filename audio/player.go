package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/bouncy/physics"
)

// Player mixes effects onto the system speaker
// Every method is safe to call before or after a failed Initialize
type Player struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer; repeated calls are no-ops
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if !p.cfg.Enabled {
		return ErrDisabled
	}
	if p.cfg.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrSampleRate, p.cfg.SampleRate)
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("[AUDIO] speaker ready at %d Hz", p.cfg.SampleRate)
	return nil
}

// Play queues one effect
func (p *Player) Play(st SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := GetSoundEffect(st, p.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlayEvents plays at most one effect per kind for a step's events
func (p *Player) PlayEvents(events []physics.Event) {
	for _, st := range SoundsFor(events) {
		p.Play(st)
	}
}

// Cleanup silences the mixer and releases the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// SoundsFor maps step events to distinct effects, score first
func SoundsFor(events []physics.Event) []SoundType {
	var seen [soundTypeCount]bool
	for _, ev := range events {
		switch ev.Type {
		case physics.EventScore:
			seen[SoundScore] = true
		case physics.EventPaddle:
			seen[SoundBounce] = true
		case physics.EventBall:
			seen[SoundClick] = true
		case physics.EventFloor, physics.EventCeiling, physics.EventWall:
			seen[SoundBlip] = true
		}
	}

	var out []SoundType
	for _, st := range []SoundType{SoundScore, SoundBounce, SoundClick, SoundBlip} {
		if seen[st] {
			out = append(out, st)
		}
	}
	return out
}
