package parameter

import (
	"math"
	"time"
)

// Ball kinematics, expressed as fractions of the arena so any canvas size plays the same
const (
	// BallSpeedFraction is the serve speed in arena heights per second
	BallSpeedFraction = 0.5

	// BallRadiusFraction is the ball radius in arena heights
	BallRadiusFraction = 0.03

	// BounceSpeedFactor scales serve speed after a paddle edge bounce
	BounceSpeedFactor = 2.0

	// CornerBounceFactor widens the paddle's vertical hit band for edge contact (× ball radius)
	CornerBounceFactor = 0.75

	// SpawnConeHalfAngle bounds the random serve angle around the horizontal
	SpawnConeHalfAngle = math.Pi / 4

	// FloorEventSpeedFraction is the slowest gravity floor impact that reports a contact, in arena heights per second
	FloorEventSpeedFraction = 0.05
)

// Paddle geometry and control
const (
	// PaddleHeightFraction is the paddle height in arena heights
	PaddleHeightFraction = 0.15

	// PaddleWidthFraction is the paddle width in arena widths
	PaddleWidthFraction = 0.025

	// PaddleInsetFactor places paddles this many paddle widths from the side edge
	PaddleInsetFactor = 3.0

	// PaddleSpeedFactor is the paddle speed as a multiple of ball speed
	PaddleSpeedFactor = 2.0

	// ReactionTime is the minimum interval between automatic paddle direction changes
	ReactionTime = 150 * time.Millisecond
)

// Gravity and launcher
const (
	// DefaultGravityFraction is the sandbox gravity in arena heights per second squared
	DefaultGravityFraction = 1.5

	// GravityStepFraction is the change applied by one gravity up/down input
	GravityStepFraction = 0.25

	// LaunchSpeedFraction is the cannon muzzle speed in arena heights per second
	LaunchSpeedFraction = 1.2

	// LaunchAngle is the default cannon elevation (negative is up, y grows downward)
	LaunchAngle = -math.Pi / 4
)
