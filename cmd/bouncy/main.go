package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bouncy/audio"
	"github.com/lixenwraith/bouncy/config"
	"github.com/lixenwraith/bouncy/engine"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	modeFlag   = flag.String("mode", "", "Game mode: pong, gravity, cannon")
	seedFlag   = flag.Uint64("seed", 0, "Spawn seed, 0 keeps the configured seed")
	debugFlag  = flag.Bool("debug", false, "Log to logs/bouncy.log and show the stats line")
	singleFlag = flag.Bool("single", false, "Start Pong against the CPU without the menu")
)

func main() {
	// Screen is already restored by run's deferred Fini when this runs
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBOUNCY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bouncy: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logFile := setupLogging(*debugFlag)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}
	if cfg.Debug && logFile == nil {
		logFile = setupLogging(true)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	player := audio.NewPlayer(audio.LoadAudioConfig(cfg.Audio))
	if err := player.Initialize(); err != nil {
		// Non-fatal, the game runs silent
		log.Printf("[AUDIO] continuing without sound: %v", err)
	}
	defer player.Cleanup()

	g := newGame(cfg, screen, player, engine.NewMonotonicTimeProvider())
	g.run()
	return nil
}

// applyFlags lets command-line flags win over file and environment
func applyFlags(cfg *config.Config) error {
	if *modeFlag != "" {
		cfg.Mode = config.Mode(*modeFlag)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *singleFlag {
		cfg.SinglePlayer = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}
