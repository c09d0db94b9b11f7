package input

import (
	"github.com/lixenwraith/snake/game"
)

// Frame is everything the player asked for during one tick
type Frame struct {
	// Pressed is indexed by game.Direction
	Pressed [len(game.Directions)]bool
	Quit    bool
	Restart bool
}

// Press marks d as pressed
func (f *Frame) Press(d game.Direction) {
	if d.Valid() {
		f.Pressed[d] = true
	}
}

// Apply folds one action into the frame
func (f *Frame) Apply(a Action) {
	if d, ok := a.Direction(); ok {
		f.Press(d)
		return
	}
	switch a {
	case ActionQuit:
		f.Quit = true
	case ActionRestart:
		f.Restart = true
	}
}

// Collector accumulates actions between ticks for frontends that only see key presses
type Collector struct {
	frame Frame
}

// Add records one action
func (c *Collector) Add(a Action) {
	c.frame.Apply(a)
}

// Flush returns the accumulated frame and starts a new one
func (c *Collector) Flush() Frame {
	f := c.frame
	c.frame = Frame{}
	return f
}
