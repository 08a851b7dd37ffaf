package core

import "fmt"

// Point is a terminal cell position, row-major
type Point struct {
	Row int
	Col int
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Sub returns the offset from o to p
func (p Point) Sub(o Point) Point {
	return Point{Row: p.Row - o.Row, Col: p.Col - o.Col}
}

// Step returns the neighbor of p one cell in direction d
func (p Point) Step(d Direction) Point {
	return p.Add(d.Delta())
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
