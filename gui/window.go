// Package gui is the pixel window frontend: a 640x480 raylib window driven at the tick rate.
package gui

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
)

// Run opens the window and steps the driver once per rendered frame until the player
// quits or closes the window. Must be called from the main goroutine.
func Run(driver *engine.Driver, tickRate int) {
	if tickRate <= 0 {
		tickRate = constants.TickRate
	}

	rl.InitWindow(constants.WindowWidth, constants.WindowHeight, constants.WindowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(tickRate))
	// Esc is read as a game action, not raylib's close key
	rl.SetExitKey(0)

	var r Renderer
	keys := raylibKeys{}
	for !rl.WindowShouldClose() {
		if driver.Step(ReadFrame(keys)) {
			break
		}
		r.Draw(driver.Snapshot())
	}
	log.Printf("gui: window closed")
}
