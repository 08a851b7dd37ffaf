package engine

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/terminal"
)

// errScriptDone ends a blocking read once the scripted input runs out
var errScriptDone = errors.New("script exhausted")

// scriptedRead is one ReadKey result, optionally resizing the screen first
type scriptedRead struct {
	ev            terminal.Event
	width, height int
	hook          func()
}

// mockScreen is a terminal.Screen fed from a script of reads
// Timed reads with an empty script return a timeout; blocking reads fail with errScriptDone
type mockScreen struct {
	width, height int
	cells         map[core.Point]rune
	cursor        core.Point
	clears        int
	shows         int
	reads         []scriptedRead
}

func newMockScreen(width, height int) *mockScreen {
	return &mockScreen{
		width:  width,
		height: height,
		cells:  make(map[core.Point]rune),
	}
}

func (m *mockScreen) Size() (int, int) {
	return m.width, m.height
}

func (m *mockScreen) SetCell(row, col int, r rune) {
	if row < 0 || col < 0 || row >= m.height || col >= m.width {
		return
	}
	m.cells[core.Point{Row: row, Col: col}] = r
}

func (m *mockScreen) Clear() {
	clear(m.cells)
	m.clears++
}

func (m *mockScreen) MoveCursor(row, col int) {
	m.cursor = core.Point{Row: row, Col: col}
}

func (m *mockScreen) Show() {
	m.shows++
}

func (m *mockScreen) ReadKey(ctx context.Context, timeout time.Duration) (terminal.Event, error) {
	if err := ctx.Err(); err != nil {
		return terminal.Event{}, err
	}
	if len(m.reads) == 0 {
		if timeout < 0 {
			return terminal.Event{}, errScriptDone
		}
		return terminal.Event{}, nil
	}

	r := m.reads[0]
	m.reads = m.reads[1:]
	if r.width > 0 {
		m.width, m.height = r.width, r.height
	}
	if r.hook != nil {
		r.hook()
	}
	return r.ev, nil
}

func (m *mockScreen) Fini() {}

// push queues plain key events
func (m *mockScreen) push(evs ...terminal.Event) {
	for _, ev := range evs {
		m.reads = append(m.reads, scriptedRead{ev: ev})
	}
}

// resizeTo queues a resize wake-up that changes the size as it is read
func (m *mockScreen) resizeTo(width, height int, hook func()) {
	m.reads = append(m.reads, scriptedRead{
		ev:     terminal.Event{Key: terminal.KeyResize},
		width:  width,
		height: height,
		hook:   hook,
	})
}

func (m *mockScreen) cell(row, col int) rune {
	return m.cells[core.Point{Row: row, Col: col}]
}

// contains reports whether any screen row holds text
func (m *mockScreen) contains(text string) bool {
	for row := 0; row < m.height; row++ {
		var b strings.Builder
		for col := 0; col < m.width; col++ {
			r := m.cell(row, col)
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
		}
		if strings.Contains(b.String(), text) {
			return true
		}
	}
	return false
}

func key(k terminal.Key) terminal.Event {
	return terminal.Event{Key: k}
}

func runeKey(r rune) terminal.Event {
	return terminal.Event{Key: terminal.KeyRune, Rune: r}
}
