package input

import (
	"testing"

	"github.com/lixenwraith/snake/game"
)

// TestCollectorFlush verifies actions accumulate into one frame and flush resets it
func TestCollectorFlush(t *testing.T) {
	var c Collector
	c.Add(ActionLeft)
	c.Add(ActionUp)
	c.Add(ActionRestart)
	c.Add(ActionNone)

	f := c.Flush()
	if !f.Pressed[game.Left] || !f.Pressed[game.Up] {
		t.Errorf("Expected left and up pressed, got %v", f.Pressed)
	}
	if f.Pressed[game.Down] || f.Pressed[game.Right] {
		t.Errorf("Expected down and right released, got %v", f.Pressed)
	}
	if !f.Restart || f.Quit {
		t.Errorf("Expected restart only, got restart=%v quit=%v", f.Restart, f.Quit)
	}

	if empty := c.Flush(); empty != (Frame{}) {
		t.Errorf("Expected empty frame after flush, got %+v", empty)
	}
}

// TestActionDirection verifies steering actions map to headings
func TestActionDirection(t *testing.T) {
	want := map[Action]game.Direction{
		ActionUp:    game.Up,
		ActionDown:  game.Down,
		ActionLeft:  game.Left,
		ActionRight: game.Right,
	}
	for a, d := range want {
		got, ok := a.Direction()
		if !ok || got != d {
			t.Errorf("%v: expected %v, got %v (%v)", a, d, got, ok)
		}
	}
	if _, ok := ActionQuit.Direction(); ok {
		t.Error("Expected quit to carry no direction")
	}
}
