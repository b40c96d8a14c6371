package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameCap is the hard ceiling on elapsed seconds fed to one step
	FrameCap = 0.05

	// SpawnDelay is the time between arming the spawn gate and the next serve
	SpawnDelay = 1000 * time.Millisecond
)

// Roster
const (
	// ColorCount is the number of cosmetic ball colour tags
	ColorCount = 3

	// MaxBalls caps sandbox rosters so Fire spam stays O(n²)-cheap
	MaxBalls = 64
)

// Input
const (
	// KeyRepeatDelay covers the terminal's initial auto-repeat delay after a press
	KeyRepeatDelay = 500 * time.Millisecond

	// KeyHoldTimeout releases a paddle key when the terminal stops repeating it
	KeyHoldTimeout = 120 * time.Millisecond

	// InputChannelSize buffers terminal events between the poller and the loop
	InputChannelSize = 100
)
