package core

// Walls is the set of wall cells on the perimeter of a Bounds
type Walls struct {
	cells map[Point]struct{}
	order []Point
}

// NewWalls builds the perimeter of b
func NewWalls(b Bounds) Walls {
	w := Walls{cells: make(map[Point]struct{}, 2*(b.Width()+b.Height()))}
	if b.Area() == 0 {
		return w
	}

	for col := b.Cols.Min; col <= b.Cols.Max; col++ {
		w.add(Point{Row: b.Rows.Min, Col: col})
		w.add(Point{Row: b.Rows.Max, Col: col})
	}
	for row := b.Rows.Min + 1; row < b.Rows.Max; row++ {
		w.add(Point{Row: row, Col: b.Cols.Min})
		w.add(Point{Row: row, Col: b.Cols.Max})
	}
	return w
}

func (w *Walls) add(p Point) {
	if _, ok := w.cells[p]; ok {
		return
	}
	w.cells[p] = struct{}{}
	w.order = append(w.order, p)
}

// Contains reports whether p is a wall cell
func (w Walls) Contains(p Point) bool {
	_, ok := w.cells[p]
	return ok
}

// Cells returns the wall cells in drawing order
func (w Walls) Cells() []Point {
	return w.order
}

// Len returns the number of wall cells
func (w Walls) Len() int {
	return len(w.order)
}
