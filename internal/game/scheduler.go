package game

import "time"

// Scheduler delivers ticks at a fixed period between Start and Stop.
// The session starts it when play begins and stops it on pause, reset and
// game over. Implementations must drop ticks armed before a Stop.
type Scheduler interface {
	Start(period time.Duration)
	Stop()
}

// ManualScheduler records Start/Stop calls and leaves tick delivery to the
// caller. Used for headless runs and tests.
type ManualScheduler struct {
	running bool
	period  time.Duration
	starts  int
	stops   int
}

// Start marks the scheduler as running.
func (m *ManualScheduler) Start(period time.Duration) {
	m.running = true
	m.period = period
	m.starts++
}

// Stop marks the scheduler as stopped.
func (m *ManualScheduler) Stop() {
	m.running = false
	m.stops++
}

// Running reports whether ticks should currently be delivered.
func (m *ManualScheduler) Running() bool {
	return m.running
}

// Period returns the period of the last Start.
func (m *ManualScheduler) Period() time.Duration {
	return m.period
}

// Starts returns how many times Start was called.
func (m *ManualScheduler) Starts() int {
	return m.starts
}

// Stops returns how many times Stop was called.
func (m *ManualScheduler) Stops() int {
	return m.stops
}
