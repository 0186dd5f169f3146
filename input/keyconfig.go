package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward as bare YAML strings
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeyNames maps lower-cased tcell key names ("up", "enter", "ctrl-c") to keys
var specialKeyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyBindings builds a sparse override table from action name -> key names
// Returns an error on unknown action or key names
func LoadKeyBindings(bindings map[string][]string) (*KeyTable, error) {
	table := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action),
		Runes:       make(map[rune]Action),
	}
	for actionName, keys := range bindings {
		action, ok := LookupAction(actionName)
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q", actionName)
		}
		for _, keyName := range keys {
			if err := table.bind(keyName, action); err != nil {
				return nil, fmt.Errorf("keymap %s: %w", actionName, err)
			}
		}
	}
	return table, nil
}

func (t *KeyTable) bind(keyName string, action Action) error {
	if r, ok := runeAliases[strings.ToLower(keyName)]; ok {
		t.Runes[r] = action
		return nil
	}
	if utf8.RuneCountInString(keyName) == 1 {
		r, _ := utf8.DecodeRuneInString(keyName)
		t.Runes[r] = action
		return nil
	}
	if k, ok := specialKeyNames[strings.ToLower(keyName)]; ok {
		t.SpecialKeys[k] = action
		return nil
	}
	return fmt.Errorf("unknown key %q", keyName)
}
