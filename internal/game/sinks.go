package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Role selects how a board cell is drawn.
type Role int

const (
	RoleHead Role = iota
	RoleBody
	RoleFood
)

// Renderer is the drawing surface the session paints on. It is retained:
// whatever was drawn stays until the next Clear.
type Renderer interface {
	// Clear wipes the board.
	Clear()
	// DrawCell paints one board cell.
	DrawCell(c core.Cell, role Role)
	// DrawOverlayText shows a message over the board.
	DrawOverlayText(msg string)
	// DrawScore updates the score display.
	DrawScore(score int)
}

// FruitDrawer is implemented by renderers that can show the fruit variant.
// Renderers without it get DrawCell with RoleFood.
type FruitDrawer interface {
	DrawFruit(c core.Cell, f Fruit)
}

// Cue is an audio trigger.
type Cue int

const (
	CueStart Cue = iota
	CueEat
	CuePause
	CueLose
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueEat:
		return "eat"
	case CuePause:
		return "pause"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Audio plays cues. Play must not block the game loop.
type Audio interface {
	Play(c Cue)
}

type nopRenderer struct{}

func (nopRenderer) Clear()                   {}
func (nopRenderer) DrawCell(core.Cell, Role) {}
func (nopRenderer) DrawOverlayText(string)   {}
func (nopRenderer) DrawScore(int)            {}

type nopAudio struct{}

func (nopAudio) Play(Cue) {}
