package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Enter, Escape, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the stock bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyEnter:  ActionFire,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'w': ActionUp,
			'k': ActionUp,
			's': ActionDown,
			'j': ActionDown,
			' ': ActionFire,
			'd': ActionToggleDebug,
			'm': ActionToggleMute,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event to an action
func (t *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}

// Merge applies overrides on top of the table; ActionNone unbinds a key
func (t *KeyTable) Merge(overrides *KeyTable) {
	if overrides == nil {
		return
	}
	for k, a := range overrides.SpecialKeys {
		if a == ActionNone {
			delete(t.SpecialKeys, k)
			continue
		}
		t.SpecialKeys[k] = a
	}
	for r, a := range overrides.Runes {
		if a == ActionNone {
			delete(t.Runes, r)
			continue
		}
		t.Runes[r] = a
	}
}
