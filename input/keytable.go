package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Enter, Ctrl+*)
	Keys map[tcell.Key]Action
	// Printable runes, matched without modifiers
	Runes map[rune]Action
}

// DefaultKeyTable binds arrows, hjkl and wasd for steering, Esc/q/Ctrl-C to quit,
// and Space/Enter/r to restart
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyEnter:  ActionRestart,
		},
		Runes: map[rune]Action{
			'k': ActionUp,
			'j': ActionDown,
			'h': ActionLeft,
			'l': ActionRight,
			'w': ActionUp,
			's': ActionDown,
			'a': ActionLeft,
			'd': ActionRight,
			'q': ActionQuit,
			'r': ActionRestart,
			' ': ActionRestart,
		},
	}
}

// Resolve returns the action bound to ev, or ActionNone
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return ActionNone
		}
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}
