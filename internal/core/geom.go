// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned when board dimensions and unit size don't form
// a whole number of cells.
var ErrInvalidGrid = errors.New("invalid grid")

// Cell is a board position in board units. Both coordinates are multiples
// of the grid's unit size.
type Cell struct {
	X, Y int
}

// Add returns the cell displaced by the given velocity.
func (c Cell) Add(v Velocity) Cell {
	return Cell{X: c.X + v.DX, Y: c.Y + v.DY}
}

// Velocity is a per-tick displacement. Valid snake velocities are one unit
// step along exactly one axis.
type Velocity struct {
	DX, DY int
}

// Opposite returns the velocity pointing the other way.
func (v Velocity) Opposite() Velocity {
	return Velocity{DX: -v.DX, DY: -v.DY}
}

// IsZero reports whether the velocity doesn't move at all.
func (v Velocity) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// Grid describes the fixed board: its size and the discrete cell size.
type Grid struct {
	width  int
	height int
	unit   int
}

// NewGrid creates a grid of width x height board units split into unit-sized
// cells. The unit must divide both dimensions.
func NewGrid(width, height, unit int) (Grid, error) {
	if width <= 0 || height <= 0 || unit <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d with unit %d", ErrInvalidGrid, width, height, unit)
	}
	if width%unit != 0 || height%unit != 0 {
		return Grid{}, fmt.Errorf("%w: unit %d does not divide %dx%d", ErrInvalidGrid, unit, width, height)
	}
	return Grid{width: width, height: height, unit: unit}, nil
}

// Cols returns the number of cells per row.
func (g Grid) Cols() int {
	if g.unit == 0 {
		return 0
	}
	return g.width / g.unit
}

// Rows returns the number of cells per column.
func (g Grid) Rows() int {
	if g.unit == 0 {
		return 0
	}
	return g.height / g.unit
}

// InBounds returns true if the cell lies on the board.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// CellAt converts a column/row index to a board cell.
func (g Grid) CellAt(col, row int) Cell {
	return Cell{X: col * g.unit, Y: row * g.unit}
}

// Index converts a board cell to its column/row index.
func (g Grid) Index(c Cell) (col, row int) {
	return c.X / g.unit, c.Y / g.unit
}

// Step returns the one-unit velocity for a direction action, or the zero
// velocity for anything else.
func (g Grid) Step(dir Action) Velocity {
	switch dir {
	case ActionUp:
		return Velocity{DY: -g.unit}
	case ActionDown:
		return Velocity{DY: g.unit}
	case ActionLeft:
		return Velocity{DX: -g.unit}
	case ActionRight:
		return Velocity{DX: g.unit}
	default:
		return Velocity{}
	}
}

// Rect represents an axis-aligned box on a character screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}
