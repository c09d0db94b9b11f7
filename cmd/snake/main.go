package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/logging"
	"github.com/lixenwraith/snake/render"
	"golang.org/x/term"
)

var (
	configFlag   = flag.String("config", config.DefaultPath(), "Path to TOML config file")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/snake.log")
	muteFlag     = flag.Bool("mute", false, "Disable audio")
	seedFlag     = flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	tickRateFlag = flag.Int("tick-rate", 0, "Ticks per second (overrides config)")
)

func main() {
	flag.Parse()

	logFile := logging.Setup("snake", *debugFlag)
	code := run()
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(code)
}

func run() (code int) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "snake: stdout is not a terminal")
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	sound := audio.NewSoundManager(cfg.Audio)
	switch err := sound.Initialize(); {
	case err == nil:
		defer sound.Cleanup()
	case errors.Is(err, audio.ErrNotConfigured):
		log.Printf("audio: disabled")
	default:
		// Non-fatal, the game runs silent
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}

	state, err := game.NewState(cfg.Game, game.NewRand(cfg.Seed))
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := engine.NewDriver(state, sound, nil)
	loop := engine.NewLoop(screen, driver, render.NewTerminalRenderer(screen), cfg.Keys, cfg.TickRate)
	err = loop.Run(ctx)
	screen.Fini()

	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}

	snap := driver.Snapshot()
	fmt.Printf("Final score: %d (length %d)\n", snap.Score, snap.Length())
	return 0
}

// loadConfig resolves defaults, the config file, environment and flags in that order
func loadConfig() (*config.Config, error) {
	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, err := config.Load(*configFlag, explicit)
	if err != nil {
		return nil, err
	}

	if *tickRateFlag != 0 {
		if err := cfg.SetTickRate(*tickRateFlag); err != nil {
			return nil, err
		}
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	cfg.Seed = *seedFlag
	cfg.Debug = *debugFlag
	return cfg, nil
}
