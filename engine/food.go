package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// Spawner places food on a uniformly random free interior cell
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner; seed 0 picks a random seed
func NewSpawner(seed uint64) *Spawner {
	var rng *rand.Rand
	if seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	return &Spawner{rng: rng}
}

// Spawn picks a cell of interior not covered by the snake or the current food
// Returns false when no such cell exists
func (sp *Spawner) Spawn(interior core.Bounds, s *Snake, food core.Point, hasFood bool) (core.Point, bool) {
	free := FreeCells(interior, s, food, hasFood)
	if len(free) == 0 {
		return core.Point{}, false
	}
	return free[sp.rng.IntN(len(free))], true
}

// FreeCells lists interior cells not covered by the snake or the current food
func FreeCells(interior core.Bounds, s *Snake, food core.Point, hasFood bool) []core.Point {
	taken := make(map[core.Point]struct{}, s.Len()+2)
	taken[s.Head()] = struct{}{}
	for _, seg := range s.Body() {
		taken[seg] = struct{}{}
	}
	if hasFood {
		taken[food] = struct{}{}
	}

	cells := interior.Cells()
	free := cells[:0]
	for _, p := range cells {
		if _, ok := taken[p]; !ok {
			free = append(free, p)
		}
	}
	return free
}
