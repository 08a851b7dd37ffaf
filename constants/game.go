package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the input timeout that paces snake movement while playing
	TickInterval = 200 * time.Millisecond

	// MinTickInterval guards against configs that would spin the loop
	MinTickInterval = 20 * time.Millisecond
)

// Arena Geometry Constants
const (
	// ArenaMaxSpan is the widest wall rectangle, in cells, around the screen center
	ArenaMaxSpan = 20

	// ArenaMinSpan is the smallest configurable span
	ArenaMinSpan = 4

	// StatusLines is the number of rows reserved below the arena
	StatusLines = 1

	// MinScreenWidth and MinScreenHeight are the smallest playable terminal
	// Below either, the engine stops and asks for a resize
	MinScreenWidth  = 12
	MinScreenHeight = 8
)

// Snake Constants
const (
	// InitialSnakeLength is the body length of a fresh snake, all stacked on the start cell
	InitialSnakeLength = 3

	// FoodScore is the score gained per food eaten
	FoodScore = 1
)
