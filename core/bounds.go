package core

import "fmt"

// Span is an inclusive integer range
type Span struct {
	Min, Max int
}

// Len returns the number of values in the span, 0 when inverted
func (s Span) Len() int {
	if s.Max < s.Min {
		return 0
	}
	return s.Max - s.Min + 1
}

// Contains reports whether v lies in the span
func (s Span) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

// Clamp limits v to the span
func (s Span) Clamp(v int) int {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Mid returns the middle value, rounding toward Min
func (s Span) Mid() int {
	return s.Min + (s.Max-s.Min)/2
}

// Bounds is the wall rectangle of the arena
// Rows and Cols are inclusive; the walls sit on the perimeter and the playable
// interior is the rectangle one cell inside it
type Bounds struct {
	Rows Span
	Cols Span
}

// ScreenCenter returns the center cell of a width x height screen
func ScreenCenter(width, height int) Point {
	return Point{Row: height / 2, Col: width / 2}
}

// NewBounds computes the arena rectangle for a screen
// The rectangle spans at most span cells around the screen center, clamped to
// the screen with statusLines rows reserved at the bottom
func NewBounds(width, height, span, statusLines int) Bounds {
	half := (span + 1) / 2
	c := ScreenCenter(width, height)
	return Bounds{
		Rows: Span{Min: max(c.Row-half, 0), Max: min(c.Row+half, height-1-statusLines)},
		Cols: Span{Min: max(c.Col-half, 0), Max: min(c.Col+half, width-1)},
	}
}

// Width returns the column count of the rectangle including walls
func (b Bounds) Width() int {
	return b.Cols.Len()
}

// Height returns the row count of the rectangle including walls
func (b Bounds) Height() int {
	return b.Rows.Len()
}

// Center returns the middle cell of the rectangle
func (b Bounds) Center() Point {
	return Point{Row: b.Rows.Mid(), Col: b.Cols.Mid()}
}

// Interior returns the playable rectangle inside the walls
func (b Bounds) Interior() Bounds {
	return Bounds{
		Rows: Span{Min: b.Rows.Min + 1, Max: b.Rows.Max - 1},
		Cols: Span{Min: b.Cols.Min + 1, Max: b.Cols.Max - 1},
	}
}

// Contains reports whether p lies inside the rectangle, perimeter included
func (b Bounds) Contains(p Point) bool {
	return b.Rows.Contains(p.Row) && b.Cols.Contains(p.Col)
}

// Clamp moves p component-wise onto the nearest cell of the rectangle
func (b Bounds) Clamp(p Point) Point {
	return Point{Row: b.Rows.Clamp(p.Row), Col: b.Cols.Clamp(p.Col)}
}

// Area returns the number of cells in the rectangle
func (b Bounds) Area() int {
	return b.Rows.Len() * b.Cols.Len()
}

// Cells returns every cell of the rectangle in row-major order
func (b Bounds) Cells() []Point {
	cells := make([]Point, 0, b.Area())
	for row := b.Rows.Min; row <= b.Rows.Max; row++ {
		for col := b.Cols.Min; col <= b.Cols.Max; col++ {
			cells = append(cells, Point{Row: row, Col: col})
		}
	}
	return cells
}

// Label is the dimension text drawn on the top wall
func (b Bounds) Label() string {
	return fmt.Sprintf("%dx%d", b.Cols.Max-b.Cols.Min, b.Rows.Max-b.Rows.Min)
}

func (b Bounds) String() string {
	return fmt.Sprintf("rows[%d,%d] cols[%d,%d]", b.Rows.Min, b.Rows.Max, b.Cols.Min, b.Cols.Max)
}
