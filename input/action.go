package input

import "github.com/lixenwraith/vi-snake/core"

// Action is what a key asks the game to do
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionRestart
	ActionQuit
)

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve TOML action strings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"up":      ActionUp,
	"down":    ActionDown,
	"left":    ActionLeft,
	"right":   ActionRight,
	"pause":   ActionPause,
	"restart": ActionRestart,
	"quit":    ActionQuit,
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "unknown"
}

// Direction returns the heading for movement actions
func (a Action) Direction() (core.Direction, bool) {
	switch a {
	case ActionUp:
		return core.DirUp, true
	case ActionDown:
		return core.DirDown, true
	case ActionLeft:
		return core.DirLeft, true
	case ActionRight:
		return core.DirRight, true
	}
	return 0, false
}
