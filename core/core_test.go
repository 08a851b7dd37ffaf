package core

import "testing"

// TestDirectionOpposite verifies each direction reverses onto its pair
func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Direction
	}{
		{DirRight, DirLeft},
		{DirLeft, DirRight},
		{DirUp, DirDown},
		{DirDown, DirUp},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Opposite(); got != tt.expected {
				t.Errorf("Expected opposite of %v to be %v, got %v", tt.dir, tt.expected, got)
			}
			if got := tt.dir.Delta().Add(tt.expected.Delta()); got != (Point{}) {
				t.Errorf("Expected deltas of %v and %v to cancel, got %v", tt.dir, tt.expected, got)
			}
		})
	}
}

// TestPointStep verifies a step moves exactly one cell along the heading
func TestPointStep(t *testing.T) {
	start := Point{Row: 10, Col: 10}
	tests := []struct {
		dir      Direction
		expected Point
	}{
		{DirRight, Point{Row: 10, Col: 11}},
		{DirLeft, Point{Row: 10, Col: 9}},
		{DirDown, Point{Row: 11, Col: 10}},
		{DirUp, Point{Row: 9, Col: 10}},
	}

	for _, tt := range tests {
		if got := start.Step(tt.dir); got != tt.expected {
			t.Errorf("Step %v: expected %v, got %v", tt.dir, tt.expected, got)
		}
	}
}

// TestClassify verifies orientation depends only on the row of both cells
func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected Orientation
	}{
		{"same row", Point{5, 5}, Point{5, 6}, Horizontal},
		{"same column", Point{5, 5}, Point{6, 5}, Vertical},
		{"same cell", Point{5, 5}, Point{5, 5}, Horizontal},
		{"diagonal", Point{5, 5}, Point{6, 6}, Vertical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.a, tt.b); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestNewBounds verifies span capping, centering and screen clamping
func TestNewBounds(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		span, status  int
		expected      Bounds
	}{
		{
			name:  "large screen caps span",
			width: 80, height: 40, span: 20, status: 1,
			expected: Bounds{Rows: Span{10, 30}, Cols: Span{30, 50}},
		},
		{
			name:  "short screen clamps rows",
			width: 80, height: 12, span: 20, status: 1,
			expected: Bounds{Rows: Span{0, 10}, Cols: Span{30, 50}},
		},
		{
			name:  "narrow screen clamps columns",
			width: 16, height: 40, span: 20, status: 1,
			expected: Bounds{Rows: Span{10, 30}, Cols: Span{0, 15}},
		},
		{
			name:  "odd span rounds half up",
			width: 40, height: 40, span: 9, status: 0,
			expected: Bounds{Rows: Span{15, 25}, Cols: Span{15, 25}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBounds(tt.width, tt.height, tt.span, tt.status)
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestBoundsGeometry checks center, interior and clamp on a fixed rectangle
func TestBoundsGeometry(t *testing.T) {
	b := Bounds{Rows: Span{5, 15}, Cols: Span{5, 15}}

	if c := b.Center(); c != (Point{Row: 10, Col: 10}) {
		t.Errorf("Expected center (10,10), got %v", c)
	}

	in := b.Interior()
	if in.Rows != (Span{6, 14}) || in.Cols != (Span{6, 14}) {
		t.Errorf("Expected interior rows[6,14] cols[6,14], got %v", in)
	}
	if in.Area() != 81 {
		t.Errorf("Expected interior area 81, got %d", in.Area())
	}
	if len(in.Cells()) != in.Area() {
		t.Errorf("Expected %d cells, got %d", in.Area(), len(in.Cells()))
	}

	clampTests := []struct {
		in, expected Point
	}{
		{Point{10, 10}, Point{10, 10}},
		{Point{0, 10}, Point{6, 10}},
		{Point{20, 20}, Point{14, 14}},
		{Point{8, -3}, Point{8, 6}},
	}
	for _, tt := range clampTests {
		if got := in.Clamp(tt.in); got != tt.expected {
			t.Errorf("Clamp %v: expected %v, got %v", tt.in, tt.expected, got)
		}
	}

	if label := b.Label(); label != "10x10" {
		t.Errorf("Expected label 10x10, got %q", label)
	}
}

// TestWalls verifies the perimeter is complete and the interior is free
func TestWalls(t *testing.T) {
	b := Bounds{Rows: Span{5, 15}, Cols: Span{5, 15}}
	w := NewWalls(b)

	// 11x11 rectangle perimeter
	if w.Len() != 40 {
		t.Errorf("Expected 40 wall cells, got %d", w.Len())
	}

	for _, p := range b.Cells() {
		onEdge := p.Row == 5 || p.Row == 15 || p.Col == 5 || p.Col == 15
		if w.Contains(p) != onEdge {
			t.Errorf("Cell %v: expected wall=%v", p, onEdge)
		}
	}

	if w.Contains(Point{Row: 4, Col: 4}) {
		t.Error("Cell outside the rectangle must not be a wall")
	}
}

// TestWallsEmptyBounds verifies an inverted rectangle yields no walls
func TestWallsEmptyBounds(t *testing.T) {
	w := NewWalls(Bounds{Rows: Span{3, 2}, Cols: Span{0, 5}})
	if w.Len() != 0 {
		t.Errorf("Expected no walls, got %d", w.Len())
	}
}
