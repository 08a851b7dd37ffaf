package engine

import "github.com/lixenwraith/vi-snake/core"

// Collision classifies a fatal head position
type Collision uint8

const (
	CollisionNone Collision = iota
	CollisionBody
	CollisionWall
)

func (c Collision) String() string {
	switch c {
	case CollisionBody:
		return "body"
	case CollisionWall:
		return "wall"
	default:
		return "none"
	}
}

// CheckCollision tests the head after an update against the body and the walls
// A head outside the wall rectangle counts as a wall hit
func CheckCollision(s *Snake, walls core.Walls, bounds core.Bounds) Collision {
	head := s.Head()
	if s.BodyContains(head) {
		return CollisionBody
	}
	if walls.Contains(head) || !bounds.Contains(head) {
		return CollisionWall
	}
	return CollisionNone
}
