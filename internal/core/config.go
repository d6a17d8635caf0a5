package core

import "time"

// DefaultTickPeriod is the fixed interval between simulation ticks.
const DefaultTickPeriod = 120 * time.Millisecond

// RuntimeConfig contains configuration passed to a game session at creation.
type RuntimeConfig struct {
	Grid          Grid          // Board geometry
	InitialLength int           // Snake segments on a fresh board
	TickPeriod    time.Duration // Time between ticks
	Seed          int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults: a 500x500
// board of 25-unit cells and a five segment snake.
func DefaultConfig() RuntimeConfig {
	grid, _ := NewGrid(500, 500, 25)
	return RuntimeConfig{
		Grid:          grid,
		InitialLength: 5,
		TickPeriod:    DefaultTickPeriod,
		Seed:          0, // 0 means use current time in platform layer
	}
}
