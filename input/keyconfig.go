package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName is tcell.KeyNames inverted and lower-cased ("up", "esc", "ctrl-c", ...)
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ParseKeyBindings converts a key name → action name table into a sparse override KeyTable.
// Keys are single characters, rune aliases, or tcell key names; the "none" action unbinds.
func ParseKeyBindings(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Action),
		Runes: make(map[rune]Action),
	}

	for keyStr, actionName := range bindings {
		action, err := ParseAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = action
			continue
		}

		k, ok := keysByName[strings.ToLower(strings.TrimSpace(keyStr))]
		if !ok {
			return nil, fmt.Errorf("unknown key name: %q", keyStr)
		}
		kt.Keys[k] = action
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune; accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// MergeKeyTable returns a new KeyTable with base values overridden by override.
// Override entries bound to ActionNone delete the key from the result.
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, a := range override.Keys {
		if a == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = a
		}
	}
	for r, a := range override.Runes {
		if a == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = a
		}
	}

	return result
}
