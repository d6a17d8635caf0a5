package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loopScheduler implements game.Scheduler on top of tea.Tick.
//
// Bubble Tea cannot cancel a tick already in flight, so every Start and Stop
// bumps a generation counter and ticks from an older generation are dropped
// on arrival. At most one tick chain is alive at a time.
type loopScheduler struct {
	running bool
	period  time.Duration
	gen     uint64
	armed   bool // started but first tick not yet issued
}

func (l *loopScheduler) Start(period time.Duration) {
	l.gen++
	l.running = true
	l.period = period
	l.armed = true
}

func (l *loopScheduler) Stop() {
	if l.running {
		l.gen++
	}
	l.running = false
	l.armed = false
}

// pending returns the first tick after a Start, once.
func (l *loopScheduler) pending() tea.Cmd {
	if !l.armed {
		return nil
	}
	l.armed = false
	return tickCmd(l.gen, l.period)
}

// accept reports whether msg belongs to the live tick chain.
func (l *loopScheduler) accept(msg TickMsg) bool {
	return l.running && msg.Gen == l.gen
}

// next continues the chain after an accepted tick. A Stop or restart during
// the tick is honoured.
func (l *loopScheduler) next() tea.Cmd {
	if cmd := l.pending(); cmd != nil {
		return cmd
	}
	if !l.running {
		return nil
	}
	return tickCmd(l.gen, l.period)
}
