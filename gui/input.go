package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/input"
)

// KeyState abstracts the raylib keyboard queries so frames can be built without a window
type KeyState interface {
	IsKeyDown(key int32) bool
	IsKeyPressed(key int32) bool
}

type raylibKeys struct{}

func (raylibKeys) IsKeyDown(key int32) bool    { return rl.IsKeyDown(key) }
func (raylibKeys) IsKeyPressed(key int32) bool { return rl.IsKeyPressed(key) }

// directionKeys lists the held keys steering each direction
var directionKeys = [len(game.Directions)][]int32{
	game.Up:    {rl.KeyUp, rl.KeyW},
	game.Down:  {rl.KeyDown, rl.KeyS},
	game.Left:  {rl.KeyLeft, rl.KeyA},
	game.Right: {rl.KeyRight, rl.KeyD},
}

// ReadFrame samples the currently held direction keys plus this frame's Esc and Space presses
func ReadFrame(keys KeyState) input.Frame {
	var f input.Frame
	for _, d := range game.Directions {
		for _, k := range directionKeys[d] {
			if keys.IsKeyDown(k) {
				f.Press(d)
				break
			}
		}
	}
	f.Quit = keys.IsKeyPressed(rl.KeyEscape)
	f.Restart = keys.IsKeyPressed(rl.KeySpace)
	return f
}
