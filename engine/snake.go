package engine

import "github.com/lixenwraith/vi-snake/core"

// Snake is the player: a head, the body from neck to tail, and a heading
type Snake struct {
	head core.Point
	body []core.Point
	dir  core.Direction

	// Tail cell dropped by the last Update, consumed by the incremental draw
	evicted    core.Point
	hasEvicted bool
}

// NewSnake creates a snake heading right with length body segments stacked on start
func NewSnake(start core.Point, length int) *Snake {
	body := make([]core.Point, max(length, 1))
	for i := range body {
		body[i] = start
	}
	return &Snake{
		head: start,
		body: body,
		dir:  core.DirRight,
	}
}

// Head returns the head position
func (s *Snake) Head() core.Point {
	return s.head
}

// Body returns the segments from neck to tail; callers must not modify it
func (s *Snake) Body() []core.Point {
	return s.body
}

// Segments returns head followed by the body as a new slice
func (s *Snake) Segments() []core.Point {
	segs := make([]core.Point, 0, len(s.body)+1)
	segs = append(segs, s.head)
	return append(segs, s.body...)
}

// Len returns the body length, head excluded
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// SetDirection changes the heading for the next Update
// Reversing onto the neck is rejected; every other heading, including the current one, is accepted
func (s *Snake) SetDirection(d core.Direction) bool {
	if d == s.dir.Opposite() {
		return false
	}
	s.dir = d
	return true
}

// Update advances the snake one cell and returns the evicted tail cell
// No bounds checks; collisions are the caller's concern
func (s *Snake) Update() core.Point {
	last := len(s.body) - 1
	s.evicted = s.body[last]
	s.hasEvicted = true

	copy(s.body[1:], s.body[:last])
	s.body[0] = s.head
	s.head = s.head.Step(s.dir)
	return s.evicted
}

// Grow lengthens the body by duplicating the tail segment in place
// The duplicate stays put until later updates pull it along
func (s *Snake) Grow() {
	s.body = append(s.body, s.body[len(s.body)-1])
}

// Evicted returns the tail cell dropped by the last Update
func (s *Snake) Evicted() (core.Point, bool) {
	return s.evicted, s.hasEvicted
}

// Occupies reports whether the head or any body segment covers p
func (s *Snake) Occupies(p core.Point) bool {
	return s.head == p || s.BodyContains(p)
}

// BodyContains reports whether any body segment covers p
func (s *Snake) BodyContains(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Translate shifts every segment by delta and clamps it into area
// The pending eviction refers to the old layout and is dropped
func (s *Snake) Translate(delta core.Point, area core.Bounds) {
	s.head = area.Clamp(s.head.Add(delta))
	for i, seg := range s.body {
		s.body[i] = area.Clamp(seg.Add(delta))
	}
	s.hasEvicted = false
}
