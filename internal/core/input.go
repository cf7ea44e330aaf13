package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow, k - move cursor away from the viewer
	ActionDown               // Down arrow, j - move cursor toward the viewer
	ActionLeft               // Left arrow, h
	ActionRight              // Right arrow, l
	ActionPlace              // Enter, pointer click - add a waypoint at the cursor
	ActionUndo               // Z, R, Backspace - remove the last waypoint
	ActionClear              // C - reset the path to its anchor
	ActionStart              // Space - confirm the path and start physics
	ActionRestartPath        // X - back to drawing, keeping the waypoints
	ActionNextLevel          // N - advance after a win
	ActionQuit               // Q, Ctrl+C - exit game/session
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
	case ActionPlace:
		return "Place"
	case ActionUndo:
		return "Undo"
	case ActionClear:
		return "Clear"
	case ActionStart:
		return "Start"
	case ActionRestartPath:
		return "RestartPath"
	case ActionNextLevel:
		return "NextLevel"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is a pointer position in screen cells.
type Pointer struct {
	X, Y  int
	Valid bool
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame and the
// latest pointer position, if the pointer moved.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer is the most recent pointer position reported this frame.
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
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

// PointAt records a pointer position for this frame.
func (f *InputFrame) PointAt(x, y int) {
	f.Pointer = Pointer{X: x, Y: y, Valid: true}
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Pointer{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
