package input

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-snake/terminal"
)

// LoadKeyConfig converts a [keys] config section into a sparse override KeyTable
// Keys are key names ("up", "enter", "ctrl_c", "space") or single characters;
// values are action names
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(section map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[terminal.Key]Action),
		Runes:       make(map[rune]Action),
	}

	for keyStr, actionName := range section {
		ev, ok := terminal.ParseKey(keyStr)
		if !ok {
			ev, ok = terminal.ParseKey(strings.ToLower(keyStr))
		}
		if !ok {
			return nil, fmt.Errorf("[keys] key %q: unknown key name", keyStr)
		}

		action, ok := ActionByName(strings.ToLower(actionName))
		if !ok {
			return nil, fmt.Errorf("[keys] key %q: unknown action %q", keyStr, actionName)
		}

		if ev.Key == terminal.KeyRune {
			kt.Runes[ev.Rune] = action
		} else {
			kt.SpecialKeys[ev.Key] = action
		}
	}

	return kt, nil
}
