package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up
	ActionDuck           // S, Down
	ActionRestart        // R key - press the restart button after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P, Escape
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Pointer is a pointer press in screen cells.
type Pointer struct {
	X, Y int
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Presses holds pointer presses (mouse clicks) in arrival order.
	Presses []Pointer

	// Held reports actions whose key is still held down. Terminals only send
	// presses, so the platform keeps a short hold window for duck.
	Held map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
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
	return f.Actions[a]
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the action was triggered or held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a] || f.Actions[a]
}

// Press records a pointer press at screen cell (x, y).
func (f *InputFrame) Press(x, y int) {
	f.Presses = append(f.Presses, Pointer{X: x, Y: y})
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
	f.Presses = f.Presses[:0]
}
