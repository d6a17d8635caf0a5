package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is the ordered list of occupied cells, head at index 0.
type Snake struct {
	body []core.Cell
}

// NewSnake creates a snake from head-first cells.
func NewSnake(cells ...core.Cell) *Snake {
	body := make([]core.Cell, len(cells))
	copy(body, cells)
	return &Snake{body: body}
}

// initialSnake lays out length segments along the top row, head rightmost,
// tail at the origin.
func initialSnake(grid core.Grid, length int) *Snake {
	cells := make([]core.Cell, length)
	for i := 0; i < length; i++ {
		cells[i] = grid.CellAt(length-1-i, 0)
	}
	return &Snake{body: cells}
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Cells returns a copy of the segments, head first.
func (s *Snake) Cells() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Contains checks if any segment occupies the given cell.
func (s *Snake) Contains(c core.Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Advance returns where the head would be after moving by v.
func (s *Snake) Advance(v core.Velocity) core.Cell {
	return s.Head().Add(v)
}

// Grow prepends a new head and keeps the tail.
func (s *Snake) Grow(head core.Cell) {
	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head
}

// Slide prepends a new head and drops the tail, keeping the length.
func (s *Snake) Slide(head core.Cell) {
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
}

// SelfCollision reports whether the head overlaps any other segment.
func (s *Snake) SelfCollision() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
