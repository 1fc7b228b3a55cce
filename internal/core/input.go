package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - hop forward
	ActionDown           // S, Down arrow - hop back
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionRestart        // R
	ActionPause          // P
	ActionQuit           // Q, Ctrl+C, Esc
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
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the (column, row) step for a directional action.
// Rows grow forward (up the screen). ok is false for non-directional actions.
func (a Action) Delta() (dc, dr int, ok bool) {
	switch a {
	case ActionUp:
		return 0, 1, true
	case ActionDown:
		return 0, -1, true
	case ActionLeft:
		return -1, 0, true
	case ActionRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// Directions lists the directional actions in the order a frame applies them.
var Directions = []Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{
		Actions: make(map[Action]bool, len(actions)),
	}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
