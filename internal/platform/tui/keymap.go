package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/school-survival/internal/core"
)

// DefaultHoldWindow is how long a key press keeps its action held.
// Terminals only report presses and auto-repeat, so a held key is one that
// was pressed again within this window.
const DefaultHoldWindow = 160 * time.Millisecond

// KeyMap defines the key bindings of the game view.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Crouch     key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Crouch, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Crouch},
		{k.Pause, k.Restart, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Crouch: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "crouch"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Keys without a game meaning map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Crouch):
		return core.ActionCrouch
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// HeldKeys turns a stream of key presses into per-tick held frames.
// Movement actions stay held for the hold window after their last press;
// pause and restart are reported on exactly one frame per press.
type HeldKeys struct {
	window  time.Duration
	pressed map[core.Action]time.Time
	once    map[core.Action]bool
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window:  window,
		pressed: make(map[core.Action]time.Time),
		once:    make(map[core.Action]bool),
	}
}

func isOneShot(a core.Action) bool {
	return a == core.ActionPause || a == core.ActionRestart
}

// Press records a key press at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone || a == core.ActionQuit {
		return
	}
	if isOneShot(a) {
		h.once[a] = true
		return
	}
	// Opposite directions cancel each other so a quick reversal is immediate.
	switch a {
	case core.ActionMoveLeft:
		delete(h.pressed, core.ActionMoveRight)
	case core.ActionMoveRight:
		delete(h.pressed, core.ActionMoveLeft)
	}
	h.pressed[a] = now
}

// Frame returns the actions held at now and consumes one-shot presses.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, at := range h.pressed {
		if now.Sub(at) <= h.window {
			frame.Set(a)
		} else {
			delete(h.pressed, a)
		}
	}
	for a := range h.once {
		frame.Set(a)
		delete(h.once, a)
	}
	return frame
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	clear(h.pressed)
	clear(h.once)
}
