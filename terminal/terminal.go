package terminal

import (
	"context"
	"errors"
	"time"
)

// ErrClosed is returned by ReadKey once the screen has been finalized
var ErrClosed = errors.New("terminal closed")

// Block makes ReadKey wait without a timeout
const Block time.Duration = -1

// Screen is the terminal surface the engine draws on and reads keys from
type Screen interface {
	// Size returns current terminal dimensions
	Size() (width, height int)

	// SetCell writes a single glyph; off-screen cells are ignored
	SetCell(row, col int, r rune)

	// Clear blanks the whole screen and forces the next Show to repaint everything
	Clear()

	// MoveCursor positions the cursor (0-indexed)
	MoveCursor(row, col int)

	// Show flushes pending writes to the terminal
	Show()

	// ReadKey waits up to timeout for the next event
	// A negative timeout blocks until an event arrives or ctx is done
	// On timeout the returned event has Key == KeyNone
	ReadKey(ctx context.Context, timeout time.Duration) (Event, error)

	// Fini restores terminal state. Safe to call multiple times
	Fini()
}

// Event is a single input event
type Event struct {
	Key  Key
	Rune rune // For KeyRune
}

// IsTimeout reports whether the read ended without input
func (e Event) IsTimeout() bool {
	return e.Key == KeyNone
}
