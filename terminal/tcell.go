package terminal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TcellScreen implements Screen on a tcell.Screen
type TcellScreen struct {
	screen tcell.Screen
	style  tcell.Style

	// tcell event queue forwarded by ChannelEvents
	events chan tcell.Event
	quit   chan struct{}

	needSync bool
	finiOnce sync.Once
}

// New creates and initializes a tcell-backed screen on the controlling terminal
func New() (*TcellScreen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	return Wrap(screen), nil
}

// Wrap adapts an initialized tcell.Screen, e.g. a tcell.SimulationScreen in tests
func Wrap(screen tcell.Screen) *TcellScreen {
	t := &TcellScreen{
		screen: screen,
		style:  tcell.StyleDefault,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
	screen.HideCursor()

	// PollEvent has no timeout; forwarding into a channel lets ReadKey select on a timer
	go screen.ChannelEvents(t.events, t.quit)
	return t
}

// Size returns current terminal dimensions
func (t *TcellScreen) Size() (int, int) {
	return t.screen.Size()
}

// SetCell writes a glyph at (row, col)
func (t *TcellScreen) SetCell(row, col int, r rune) {
	t.screen.SetContent(col, row, r, nil, t.style)
}

// Clear blanks the screen; the next Show repaints every cell
func (t *TcellScreen) Clear() {
	t.screen.Clear()
	t.needSync = true
}

// MoveCursor places the terminal cursor
func (t *TcellScreen) MoveCursor(row, col int) {
	t.screen.ShowCursor(col, row)
}

// Show flushes pending writes
func (t *TcellScreen) Show() {
	if t.needSync {
		t.needSync = false
		t.screen.Sync()
		return
	}
	t.screen.Show()
}

// ReadKey waits for the next relevant event
// Events with no game meaning (mouse, focus, paste) are skipped without
// resetting the timeout
func (t *TcellScreen) ReadKey(ctx context.Context, timeout time.Duration) (Event, error) {
	var expired <-chan time.Time
	if timeout >= 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case <-expired:
			return Event{Key: KeyNone}, nil
		case ev, ok := <-t.events:
			if !ok {
				return Event{}, ErrClosed
			}
			if e, ok := translate(ev); ok {
				return e, nil
			}
		}
	}
}

// Fini restores the terminal. Safe to call multiple times
func (t *TcellScreen) Fini() {
	t.finiOnce.Do(func() {
		close(t.quit)
		t.screen.Fini()
	})
}

// translate maps a tcell event onto an Event, false for events the game ignores
func translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			return Event{Key: KeyUp}, true
		case tcell.KeyDown:
			return Event{Key: KeyDown}, true
		case tcell.KeyLeft:
			return Event{Key: KeyLeft}, true
		case tcell.KeyRight:
			return Event{Key: KeyRight}, true
		case tcell.KeyEnter, tcell.KeyLF:
			return Event{Key: KeyEnter}, true
		case tcell.KeyEscape:
			return Event{Key: KeyEscape}, true
		case tcell.KeyTab:
			return Event{Key: KeyTab}, true
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return Event{Key: KeyBackspace}, true
		case tcell.KeyCtrlC:
			return Event{Key: KeyCtrlC}, true
		case tcell.KeyRune:
			if ev.Rune() == ' ' {
				return Event{Key: KeySpace}, true
			}
			return Event{Key: KeyRune, Rune: ev.Rune()}, true
		}
	case *tcell.EventResize:
		return Event{Key: KeyResize}, true
	}
	return Event{}, false
}
