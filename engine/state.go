package engine

// State is the phase of the game loop
type State uint8

const (
	StatePlaying State = iota
	StatePaused
	StateAwaitingResize
	StateDead
	StateWon
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateAwaitingResize:
		return "awaiting_resize"
	case StateDead:
		return "dead"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// RoundOver reports whether the state waits for a restart
func (s State) RoundOver() bool {
	return s == StateDead || s == StateWon
}
