package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/terminal"
)

// Scene is everything a full redraw paints
type Scene struct {
	Bounds core.Bounds
	Walls  core.Walls

	Head core.Point
	Body []core.Point // neck to tail

	Food    core.Point
	HasFood bool

	Score     int
	Highscore int
}

// Frame is the per-tick change the incremental draw paints
type Frame struct {
	Head core.Point
	Neck core.Point

	Evicted    core.Point
	HasEvicted bool

	Food    core.Point
	HasFood bool
}

// Renderer draws the game onto a terminal.Screen
type Renderer struct {
	screen terminal.Screen
	glyphs Glyphs
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen terminal.Screen, glyphs Glyphs) *Renderer {
	return &Renderer{
		screen: screen,
		glyphs: glyphs,
	}
}

// Glyphs returns the glyph set in use
func (r *Renderer) Glyphs() Glyphs {
	return r.glyphs
}

// Redraw clears the screen and paints the whole scene
func (r *Renderer) Redraw(s Scene) {
	r.screen.Clear()
	r.DrawWalls(s.Bounds, s.Walls)
	r.drawSnake(s.Head, s.Body)
	if s.HasFood {
		r.DrawFood(s.Food)
	}
	r.DrawStatus(s.Bounds, s.Score, s.Highscore)
	r.Flush()
}

// Step paints one tick of movement
// The evicted tail cell is erased unless food sits there or the snake still
// covers it (a grown tail leaves a duplicate segment behind)
func (r *Renderer) Step(f Frame, occupied func(core.Point) bool) {
	if f.HasEvicted && !(f.HasFood && f.Evicted == f.Food) && !occupied(f.Evicted) {
		r.Erase(f.Evicted)
	}
	r.drawSegment(f.Neck, f.Head)
	r.screen.SetCell(f.Head.Row, f.Head.Col, r.glyphs.Head)
	r.Flush()
}

// DrawWalls paints every wall cell and the dimension label on the top wall
func (r *Renderer) DrawWalls(b core.Bounds, walls core.Walls) {
	for _, p := range walls.Cells() {
		r.screen.SetCell(p.Row, p.Col, r.glyphs.Wall)
	}

	label := b.Label()
	width := b.Cols.Max - b.Cols.Min
	if utf8.RuneCountInString(label) > width-1 {
		return
	}
	r.drawText(b.Rows.Min, b.Cols.Min+width/2-utf8.RuneCountInString(label)/2, label)
}

// DrawFood paints the food glyph
func (r *Renderer) DrawFood(p core.Point) {
	r.screen.SetCell(p.Row, p.Col, r.glyphs.Food)
}

// Erase blanks a single cell
func (r *Renderer) Erase(p core.Point) {
	r.screen.SetCell(p.Row, p.Col, r.glyphs.Empty)
}

// DrawStatus paints the score line below the arena
func (r *Renderer) DrawStatus(b core.Bounds, score, highscore int) {
	row := b.Rows.Max + 1
	left := fmt.Sprintf(constants.TextStatus, score, highscore)

	// Previous text may be longer after a restart
	r.clearSpan(row, b.Cols.Min, b.Cols.Max)
	r.drawText(row, b.Cols.Min, left)

	hint := constants.TextStatusHint
	hintCol := b.Cols.Max - utf8.RuneCountInString(hint) + 1
	if hintCol > b.Cols.Min+utf8.RuneCountInString(left) {
		r.drawText(row, hintCol, hint)
	}
}

// Overlay paints lines centered on center, the first line on center's row
func (r *Renderer) Overlay(center core.Point, lines ...string) {
	for i, line := range lines {
		r.drawText(center.Row+i, center.Col-utf8.RuneCountInString(line)/2, line)
	}
	r.Flush()
}

// ResizePrompt clears the screen and asks for a larger terminal
func (r *Renderer) ResizePrompt(width, height, minWidth, minHeight int) {
	r.screen.Clear()
	center := core.ScreenCenter(width, height)
	lines := []string{
		constants.TextResize,
		fmt.Sprintf(constants.TextResizeSize, minWidth, minHeight, width, height),
	}
	for i, line := range lines {
		// Left-align when the screen is narrower than the text
		col := max(center.Col-utf8.RuneCountInString(line)/2, 0)
		r.drawText(i, col, line)
	}
	r.Flush()
}

// Flush parks the cursor at the origin and shows pending writes
func (r *Renderer) Flush() {
	r.screen.MoveCursor(0, 0)
	r.screen.Show()
}

// drawSnake paints the body tail first so the head ends on top
func (r *Renderer) drawSnake(head core.Point, body []core.Point) {
	for i := len(body) - 1; i >= 0; i-- {
		prev := head
		if i > 0 {
			prev = body[i-1]
		}
		r.drawSegment(body[i], prev)
	}
	r.screen.SetCell(head.Row, head.Col, r.glyphs.Head)
}

// drawSegment paints pos oriented toward its neighbor nearer the head
func (r *Renderer) drawSegment(pos, toward core.Point) {
	r.screen.SetCell(pos.Row, pos.Col, r.glyphs.Segment(core.Classify(pos, toward)))
}

func (r *Renderer) drawText(row, col int, text string) {
	for _, ch := range text {
		r.screen.SetCell(row, col, ch)
		col++
	}
}

func (r *Renderer) clearSpan(row, from, to int) {
	for col := from; col <= to; col++ {
		r.screen.SetCell(row, col, r.glyphs.Empty)
	}
}
