package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/gui"
	"github.com/lixenwraith/snake/logging"
)

var (
	debugFlag = flag.Bool("debug", false, "Write logs to logs/snake-gui.log")
	muteFlag  = flag.Bool("mute", false, "Disable audio")
	seedFlag  = flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
)

func init() {
	// raylib must stay on the main OS thread
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	logFile := logging.Setup("snake-gui", *debugFlag)
	code := run()
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(code)
}

func run() int {
	cfg := config.Default()
	audio.LoadConfig(cfg.Audio)
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	state, err := game.NewState(cfg.Game, game.NewRand(*seedFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-gui: %v\n", err)
		return 1
	}

	sound := audio.NewSoundManager(cfg.Audio)
	switch err := sound.Initialize(); {
	case err == nil:
		defer sound.Cleanup()
	case errors.Is(err, audio.ErrNotConfigured):
	default:
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}

	driver := engine.NewDriver(state, sound, nil)
	gui.Run(driver, cfg.TickRate)

	snap := driver.Snapshot()
	fmt.Printf("Final score: %d (length %d)\n", snap.Score, snap.Length())
	return 0
}
