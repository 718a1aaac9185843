package core

// Controls is the held state of the movement controls for one frame.
// The simulation reads only these booleans; it never sees key events.
type Controls struct {
	Left  bool
	Right bool
	Jump  bool
}

// InputFrame is everything the platform hands to a game for one tick.
type InputFrame struct {
	Controls Controls
	Pause    bool // Toggle pause this tick
}

// Action represents a semantic platform action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionPause
	ActionBack
	ActionRestart
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
