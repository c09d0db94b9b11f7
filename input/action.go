package input

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/snake/game"
)

// Action is what a key means to the game
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionQuit
	ActionRestart
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "none",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionQuit:    "quit",
	ActionRestart: "restart",
}

func (a Action) String() string {
	if a >= actionCount {
		return "invalid"
	}
	return actionNames[a]
}

// ParseAction resolves a config action name, case-insensitively
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action: %q", name)
}

// Direction returns the heading a steering action requests
func (a Action) Direction() (game.Direction, bool) {
	switch a {
	case ActionUp:
		return game.Up, true
	case ActionDown:
		return game.Down, true
	case ActionLeft:
		return game.Left, true
	case ActionRight:
		return game.Right, true
	default:
		return 0, false
	}
}
