package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Fruit is the cosmetic variant of a piece of food. It has no gameplay effect.
type Fruit int

const (
	FruitApple Fruit = iota
	FruitBanana
	FruitOrange
	FruitPear
	fruitCount
)

func (f Fruit) String() string {
	switch f {
	case FruitApple:
		return "apple"
	case FruitBanana:
		return "banana"
	case FruitOrange:
		return "orange"
	case FruitPear:
		return "pear"
	default:
		return "unknown"
	}
}

// FoodPlacer picks free cells for food.
type FoodPlacer struct {
	grid core.Grid
	rng  *rand.Rand
}

// NewFoodPlacer creates a placer drawing from rng.
func NewFoodPlacer(grid core.Grid, rng *rand.Rand) *FoodPlacer {
	return &FoodPlacer{grid: grid, rng: rng}
}

// Place samples uniformly random grid cells until one is not covered by the
// snake, and picks a fruit variant. It never returns if the snake covers the
// whole board.
func (p *FoodPlacer) Place(s *Snake) (core.Cell, Fruit) {
	var c core.Cell
	for {
		c = p.grid.CellAt(p.rng.Intn(p.grid.Cols()), p.rng.Intn(p.grid.Rows()))
		if !s.Contains(c) {
			break
		}
	}
	return c, Fruit(p.rng.Intn(int(fruitCount)))
}
