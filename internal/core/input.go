package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump (also restarts after game over)
	ActionCrouch         // S, Down - crouch while held
	ActionRestart        // R key - restart game after game over
	ActionPause          // P, Escape - pause/unpause game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionCrouch:
		return "Crouch"
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

// KeyEvent is a single discrete press or release of an action key.
// The simulation consumes these already-decoded events; it never polls
// input devices itself.
type KeyEvent struct {
	Action  Action
	Pressed bool // true = press, false = release
}

// InputFrame collects all key events buffered since the previous simulation
// tick, in arrival order. The whole frame is drained each tick.
type InputFrame struct {
	Events []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press appends a press event for the given action.
func (f *InputFrame) Press(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a, Pressed: true})
}

// Release appends a release event for the given action.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a, Pressed: false})
}

// HasPress returns true if the given action was pressed this frame.
func (f InputFrame) HasPress(a Action) bool {
	for _, e := range f.Events {
		if e.Action == a && e.Pressed {
			return true
		}
	}
	return false
}

// Clear resets all events for the next frame.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Events: make([]KeyEvent, len(f.Events))}
	copy(clone.Events, f.Events)
	return clone
}
