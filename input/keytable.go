package input

import "github.com/lixenwraith/vi-snake/terminal"

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (arrows, enter, ctrl)
	SpecialKeys map[terminal.Key]Action

	// Printable character bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
// Arrows steer, hjkl steer as in vi; space pauses and also restarts after death
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[terminal.Key]Action{
			terminal.KeyUp:     ActionUp,
			terminal.KeyDown:   ActionDown,
			terminal.KeyLeft:   ActionLeft,
			terminal.KeyRight:  ActionRight,
			terminal.KeySpace:  ActionPause,
			terminal.KeyEnter:  ActionRestart,
			terminal.KeyEscape: ActionQuit,
			terminal.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'h': ActionLeft,
			'j': ActionDown,
			'k': ActionUp,
			'l': ActionRight,
			'r': ActionRestart,
			'q': ActionQuit,
		},
	}
}

// Lookup returns the action bound to ev, ActionNone when unbound
func (kt *KeyTable) Lookup(ev terminal.Event) Action {
	if ev.Key == terminal.KeyRune {
		return kt.Runes[ev.Rune]
	}
	return kt.SpecialKeys[ev.Key]
}

// IsRestart reports whether ev restarts a finished round
// Enter, space and r always restart, whatever else they are bound to
func (kt *KeyTable) IsRestart(ev terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyEnter, terminal.KeySpace:
		return true
	case terminal.KeyRune:
		if ev.Rune == 'r' {
			return true
		}
	}
	return kt.Lookup(ev) == ActionRestart
}

// Merge overlays non-nil override maps onto kt
// ActionNone in an override unbinds the key
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for k, a := range override.SpecialKeys {
		if a == ActionNone {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = a
	}
	for r, a := range override.Runes {
		if a == ActionNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = a
	}
}
