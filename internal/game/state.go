package game

// RunState is the lifecycle state of a session.
type RunState int

const (
	StateIdle RunState = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Controls reports which of the three player triggers are enabled.
type Controls struct {
	Start bool
	Pause bool
	Reset bool
}

// controlsFor derives the control surface from the run state. started is
// true once the session has left Idle at least once.
func controlsFor(state RunState, started bool) Controls {
	return Controls{
		Start: state == StateIdle || state == StatePaused,
		Pause: state == StateRunning,
		Reset: started,
	}
}
