package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // Up arrow, k
	ActionDown          // Down arrow, j
	ActionLeft          // Left arrow, h
	ActionRight         // Right arrow, l
	ActionStart         // Enter, s - start or resume
	ActionPause         // P, Space
	ActionReset         // R
	ActionQuit          // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection returns true for the four movement actions.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
