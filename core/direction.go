package core

// Direction is the heading of the snake
type Direction uint8

const (
	DirRight Direction = iota
	DirLeft
	DirDown
	DirUp
)

var directionNames = [...]string{
	DirRight: "right",
	DirLeft:  "left",
	DirDown:  "down",
	DirUp:    "up",
}

var directionDeltas = [...]Point{
	DirRight: {Row: 0, Col: 1},
	DirLeft:  {Row: 0, Col: -1},
	DirDown:  {Row: 1, Col: 0},
	DirUp:    {Row: -1, Col: 0},
}

// Delta returns the one-cell offset for the direction
func (d Direction) Delta() Point {
	if int(d) >= len(directionDeltas) {
		return Point{}
	}
	return directionDeltas[d]
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirDown:
		return DirUp
	default:
		return DirDown
	}
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// Orientation is the axis joining two adjacent cells, used for glyph selection
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Classify returns Vertical when a and b sit on different rows, Horizontal otherwise
// Equal points (stacked segments of a fresh snake) classify as Horizontal
func Classify(a, b Point) Orientation {
	if a.Row != b.Row {
		return Vertical
	}
	return Horizontal
}
