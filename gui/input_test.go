package gui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lixenwraith/snake/game"
)

// fakeKeys reports a fixed set of held and pressed keys
type fakeKeys struct {
	down    map[int32]bool
	pressed map[int32]bool
}

func (f fakeKeys) IsKeyDown(key int32) bool    { return f.down[key] }
func (f fakeKeys) IsKeyPressed(key int32) bool { return f.pressed[key] }

// TestReadFrameHeldKeys verifies every held direction is reported, arrows and wasd alike
func TestReadFrameHeldKeys(t *testing.T) {
	keys := fakeKeys{down: map[int32]bool{rl.KeyUp: true, rl.KeyD: true}}

	f := ReadFrame(keys)
	if !f.Pressed[game.Up] || !f.Pressed[game.Right] {
		t.Errorf("Expected Up and Right pressed, got %v", f.Pressed)
	}
	if f.Pressed[game.Down] || f.Pressed[game.Left] {
		t.Errorf("Expected Down and Left released, got %v", f.Pressed)
	}
	if f.Quit || f.Restart {
		t.Error("Expected no quit or restart")
	}
}

// TestReadFrameActions verifies Esc and Space map to quit and restart
func TestReadFrameActions(t *testing.T) {
	keys := fakeKeys{pressed: map[int32]bool{rl.KeyEscape: true, rl.KeySpace: true}}

	f := ReadFrame(keys)
	if !f.Quit {
		t.Error("Expected Esc to quit")
	}
	if !f.Restart {
		t.Error("Expected Space to restart")
	}
}
