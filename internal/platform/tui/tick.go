// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping and tick delivery.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game tick. Gen identifies the scheduler run
// that armed it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after period.
func tickCmd(gen uint64, period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
