package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate their key events into actions; the loop driver only
// ever sees actions.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up arrow - upward impulse
	ActionRestart        // R key - new round after game over
	ActionQuit           // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
