package core

// Action represents a logical game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // A, Left arrow
	ActionMoveRight        // D, Right arrow
	ActionJump             // Space, W, Up arrow
	ActionCrouch           // S, Down arrow
	ActionPause            // P, Escape
	ActionRestart          // R
	ActionQuit             // Q, Ctrl+C - handled by the platform, never by the game
)

// actionNames holds the names used by the input provider contract.
var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionMoveLeft:  "moveLeft",
	ActionMoveRight: "moveRight",
	ActionJump:      "jump",
	ActionCrouch:    "crouch",
	ActionPause:     "pause",
	ActionRestart:   "restart",
	ActionQuit:      "quit",
}

// String returns the logical name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// InputFrame is the held state of every action, sampled once per tick.
// An action that is absent counts as released.
type InputFrame struct {
	Held map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held: make(map[Action]bool),
	}
}

// InputOf builds a frame with the given actions held.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Release marks an action as not held.
func (f *InputFrame) Release(a Action) {
	delete(f.Held, a)
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear releases all actions.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
}
