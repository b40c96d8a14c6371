package audio

import (
	"errors"
	"time"
)

// SoundType identifies a synthesized effect
type SoundType int

const (
	SoundBounce SoundType = iota // Paddle hit
	SoundBlip                    // Wall, floor or ceiling
	SoundClick                   // Ball against ball
	SoundScore                   // Point scored
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	case SoundBlip:
		return "blip"
	case SoundClick:
		return "click"
	case SoundScore:
		return "score"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrDisabled   = errors.New("audio disabled")
	ErrSampleRate = errors.New("invalid sample rate")
)

// Effect envelope timings
const (
	bounceDuration = 70 * time.Millisecond
	bounceAttack   = 2 * time.Millisecond
	bounceRelease  = 50 * time.Millisecond

	blipDuration = 40 * time.Millisecond
	blipAttack   = 1 * time.Millisecond
	blipRelease  = 30 * time.Millisecond

	clickDuration = 15 * time.Millisecond

	chimeNote1Duration = 90 * time.Millisecond
	chimeNote2Duration = 220 * time.Millisecond
	chimeAttack        = 3 * time.Millisecond
	chimeNote1Release  = 40 * time.Millisecond
	chimeNote2Release  = 180 * time.Millisecond
)
