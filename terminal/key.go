package terminal

// Key represents a parsed input key
type Key uint8

const (
	KeyNone Key = iota // Timeout, no input
	KeyRune            // Printable character (check Event.Rune)

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	KeyBackspace
	KeyCtrlC

	// KeyResize wakes a blocked read when the terminal changes size
	KeyResize
)
