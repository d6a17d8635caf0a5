package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Each board cell is two characters wide so cells look square in a terminal.
const cellWidth = 2

// Canvas is a Renderer that paints the board onto a core.Screen:
// one HUD line, then the bordered board.
type Canvas struct {
	grid   core.Grid
	screen *core.Screen
	board  core.Rect // board interior in screen coordinates
}

// NewCanvas creates a canvas sized for the grid.
func NewCanvas(grid core.Grid) *Canvas {
	board := core.NewRect(1, 2, grid.Cols()*cellWidth, grid.Rows())
	c := &Canvas{
		grid:   grid,
		screen: core.NewScreen(board.W+2, board.H+3),
		board:  board,
	}
	c.Clear()
	return c
}

// Screen returns the underlying buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Clear wipes the board and redraws its border. The HUD line is kept.
func (c *Canvas) Clear() {
	c.screen.FillRect(c.board, ' ', core.ColorDefault)
	c.screen.DrawBox(core.NewRect(c.board.X-1, c.board.Y-1, c.board.W+2, c.board.H+2), core.ColorBorder)
}

// DrawCell paints a snake segment or generic food.
func (c *Canvas) DrawCell(cell core.Cell, role Role) {
	switch role {
	case RoleHead:
		c.paint(cell, '█', '█', core.ColorHead)
	case RoleBody:
		c.paint(cell, '▓', '▓', core.ColorBody)
	case RoleFood:
		c.paint(cell, '(', ')', core.ColorApple)
	}
}

// DrawFruit paints food in the colour of its variant.
func (c *Canvas) DrawFruit(cell core.Cell, f Fruit) {
	color := core.ColorApple
	switch f {
	case FruitBanana:
		color = core.ColorBanana
	case FruitOrange:
		color = core.ColorOrange
	case FruitPear:
		color = core.ColorPear
	}
	c.paint(cell, '(', ')', color)
}

// DrawOverlayText draws a boxed message centred on the board.
func (c *Canvas) DrawOverlayText(msg string) {
	boxW := len([]rune(msg)) + 4
	boxH := 3
	cx, cy := c.board.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	c.screen.FillRect(box, ' ', core.ColorOverlay)
	c.screen.DrawBox(box, core.ColorOverlay)
	c.screen.DrawTextCentered(box, box.Y+1, msg, core.ColorOverlay)
}

// DrawScore rewrites the HUD line.
func (c *Canvas) DrawScore(score int) {
	c.screen.FillRect(core.NewRect(0, 0, c.screen.Width(), 1), ' ', core.ColorDefault)
	c.screen.DrawText(1, 0, fmt.Sprintf("SNAKE  Score: %d", score), core.ColorHUD)
}

// paint writes the two characters of a board cell. Cells off the board are
// skipped.
func (c *Canvas) paint(cell core.Cell, left, right rune, color core.Color) {
	if !c.grid.InBounds(cell) {
		return
	}
	col, row := c.grid.Index(cell)
	x := c.board.X + col*cellWidth
	y := c.board.Y + row
	c.screen.Set(x, y, left, color)
	c.screen.Set(x+1, y, right, color)
}
