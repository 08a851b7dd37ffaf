package terminal

import "unicode/utf8"

// keyToName maps Key constants to canonical config string names
var keyToName = map[Key]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeySpace:     "space",
	KeyEscape:    "escape",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyCtrlC:     "ctrl_c",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyToName)+2)
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["esc"] = KeyEscape
	nameToKey["return"] = KeyEnter
}

// KeyName returns the canonical string name for a Key constant
// Returns empty string for KeyNone, KeyRune and KeyResize
func KeyName(k Key) string {
	return keyToName[k]
}

// KeyByName resolves a canonical name to a Key constant
// Returns KeyNone and false if name is unknown
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

// ParseKey resolves a config key string: a key name or a single character
func ParseKey(s string) (Event, bool) {
	if k, ok := KeyByName(s); ok {
		return Event{Key: k}, true
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if r == ' ' {
			return Event{Key: KeySpace}, true
		}
		return Event{Key: KeyRune, Rune: r}, true
	}
	return Event{}, false
}

// String renders the event the way ParseKey accepts it
func (e Event) String() string {
	switch e.Key {
	case KeyNone:
		return "none"
	case KeyRune:
		return string(e.Rune)
	case KeyResize:
		return "resize"
	default:
		return KeyName(e.Key)
	}
}
