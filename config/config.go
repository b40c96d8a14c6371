package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/lixenwraith/bouncy/parameter"
)

// Mode selects the game variant
type Mode string

const (
	ModePong    Mode = "pong"
	ModeGravity Mode = "gravity"
	ModeCannon  Mode = "cannon"
)

// Sentinel errors
var (
	ErrUnknownMode = errors.New("unknown mode")
	ErrArenaSize   = errors.New("invalid arena size")
	ErrFrameCap    = errors.New("invalid frame cap")
)

// Launch configures the cannon; zero fields take arena-relative defaults
type Launch struct {
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Angle float64 `toml:"angle"`
	Speed float64 `toml:"speed"`
}

// Audio configures synthesized sound effects
type Audio struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

type Config struct {
	Mode   Mode    `toml:"mode"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Seed drives spawn randomness; equal seeds replay equal games
	Seed     uint64  `toml:"seed"`
	FrameCap float64 `toml:"frame_cap"`

	// Gravity in px/s², nil uses the mode default; negative values pull upward
	Gravity *float64 `toml:"gravity"`

	// PaddlePush lets a moving paddle add its velocity to face bounces
	PaddlePush bool `toml:"paddle_push"`

	// SinglePlayer starts Pong against the CPU without the menu choice
	SinglePlayer bool `toml:"single_player"`

	Launch Launch `toml:"launch"`
	Audio  Audio  `toml:"audio"`

	Debug bool `toml:"debug"`
}

// Default returns a two-paddle Pong configuration on an 800x600 arena
func Default() *Config {
	return &Config{
		Mode:       ModePong,
		Width:      800,
		Height:     600,
		Seed:       1,
		FrameCap:   parameter.FrameCap,
		PaddlePush: true,
		Audio: Audio{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
		},
	}
}

// Load layers defaults, the TOML file at path (optional), .env and BOUNCY_* environment variables
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			log.Printf("[CONFIG] ignoring unknown keys in %s: %v", path, undecoded)
		}
	}

	if err := godotenv.Load(); err == nil {
		log.Println("[CONFIG] loaded .env")
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from BOUNCY_* variables; unparsable values are ignored
func (c *Config) applyEnv() {
	if v := getEnv("BOUNCY_MODE", ""); v != "" {
		c.Mode = Mode(v)
	}
	c.Width = getEnvFloat("BOUNCY_WIDTH", c.Width)
	c.Height = getEnvFloat("BOUNCY_HEIGHT", c.Height)
	if v := getEnv("BOUNCY_SEED", ""); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = seed
		}
	}
	if v := getEnv("BOUNCY_GRAVITY", ""); v != "" {
		if g, err := strconv.ParseFloat(v, 64); err == nil {
			c.Gravity = &g
		}
	}
	c.Audio.Enabled = getEnvBool("BOUNCY_AUDIO_ENABLED", c.Audio.Enabled)
	if v := getEnv("BOUNCY_MASTER_VOLUME", ""); v != "" {
		// 0-100 converted to 0.0-1.0
		if vol, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = float64(vol) / 100.0
		}
	}
	c.Debug = getEnvBool("BOUNCY_DEBUG", c.Debug)

	if c.Audio.MasterVolume < 0 {
		c.Audio.MasterVolume = 0
	}
	if c.Audio.MasterVolume > 1 {
		c.Audio.MasterVolume = 1
	}
}

// Validate rejects configurations the engine cannot run; gravity of any sign is accepted
func (c *Config) Validate() error {
	switch c.Mode {
	case ModePong, ModeGravity, ModeCannon:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode)
	}

	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("%w: %vx%v", ErrArenaSize, c.Width, c.Height)
	}

	if c.Mode == ModePong {
		// Paddle plus its inset margins must fit the track
		paddleH := parameter.PaddleHeightFraction * c.Height
		paddleW := parameter.PaddleWidthFraction * c.Width
		if paddleH+2*paddleW > c.Height {
			return fmt.Errorf("%w: %vx%v too wide for paddle track", ErrArenaSize, c.Width, c.Height)
		}
	}

	if !(c.FrameCap > 0) {
		return fmt.Errorf("%w: %v", ErrFrameCap, c.FrameCap)
	}
	return nil
}

// GravityOrDefault returns the configured gravity or the mode's default
func (c *Config) GravityOrDefault() float64 {
	if c.Gravity != nil {
		return *c.Gravity
	}
	if c.Mode == ModePong {
		return 0
	}
	return parameter.DefaultGravityFraction * c.Height
}

// LaunchOrDefault fills zero launcher fields relative to the arena
func (c *Config) LaunchOrDefault() Launch {
	l := c.Launch
	if l.X == 0 {
		l.X = 0.1 * c.Width
	}
	if l.Y == 0 {
		l.Y = 0.9 * c.Height
	}
	if l.Angle == 0 {
		l.Angle = parameter.LaunchAngle
	}
	if l.Speed == 0 {
		l.Speed = parameter.LaunchSpeedFraction * c.Height
	}
	return l
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
