package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the complete session state for determinism testing and
// headless runs.
type Snapshot struct {
	Tick     uint64
	State    RunState
	Score    int
	Pauses   int
	Snake    []core.Cell
	Velocity core.Velocity
	Food     core.Cell
	Fruit    Fruit
	HasFood  bool
	Controls Controls
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:     s.tick,
		State:    s.state,
		Score:    s.score,
		Pauses:   s.pauses,
		Snake:    s.snake.Cells(),
		Velocity: s.dir.Current(),
		Food:     s.food,
		Fruit:    s.fruit,
		HasFood:  s.hasFood,
		Controls: s.Controls(),
	}
}

// String formats the snapshot as a short multi-line report.
func (snap Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, State: %s, Score: %d, Pauses: %d\n", snap.Tick, snap.State, snap.Score, snap.Pauses)
	if len(snap.Snake) > 0 {
		head := snap.Snake[0]
		fmt.Fprintf(&b, "Snake len: %d, Head: (%d, %d), Velocity: (%d, %d)\n",
			len(snap.Snake), head.X, head.Y, snap.Velocity.DX, snap.Velocity.DY)
	}
	if snap.HasFood {
		fmt.Fprintf(&b, "Food: (%d, %d) %s\n", snap.Food.X, snap.Food.Y, snap.Fruit)
	}
	fmt.Fprintf(&b, "Controls: start=%v pause=%v reset=%v\n", snap.Controls.Start, snap.Controls.Pause, snap.Controls.Reset)
	return b.String()
}
