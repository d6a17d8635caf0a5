package game

import "github.com/vovakirdan/tui-snake/internal/core"

// DirectionController holds the player's latest movement intent.
//
// There is one pending slot and no queue: every accepted input overwrites it
// and the tick loop reads it exactly once per tick through Consume. Reversals
// are judged against the velocity the last tick actually used, so the snake
// can never turn back onto its own neck between two ticks.
type DirectionController struct {
	grid    core.Grid
	current core.Velocity // used by the last tick
	pending core.Velocity // read by the next tick
}

// NewDirectionController creates a controller heading right.
func NewDirectionController(grid core.Grid) *DirectionController {
	d := &DirectionController{grid: grid}
	d.Reset()
	return d
}

// Reset restores the initial direction (right).
func (d *DirectionController) Reset() {
	d.current = d.grid.Step(core.ActionRight)
	d.pending = d.current
}

// OnInput applies a direction action. Non-direction actions and reversals of
// the current velocity are ignored; the return value reports acceptance.
func (d *DirectionController) OnInput(a core.Action) bool {
	if !a.IsDirection() {
		return false
	}
	v := d.grid.Step(a)
	if v == d.current.Opposite() {
		return false
	}
	d.pending = v
	return true
}

// Consume returns the velocity for this tick and commits it as current.
func (d *DirectionController) Consume() core.Velocity {
	d.current = d.pending
	return d.current
}

// Current returns the velocity used by the last tick.
func (d *DirectionController) Current() core.Velocity {
	return d.current
}
