package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - cursor up / rotate in tetris
	ActionDown           // S, Down arrow - cursor down / soft drop
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionRotate         // Space - rotate piece
	ActionConfirm        // Enter - flip card, pick cell, select
	ActionBack           // B, Escape - go back to menu
	ActionStart          // G - start or resume a timed game
	ActionPause          // P - pause
	ActionRestart        // R - restart / new round
	ActionHint           // H - toggle hints
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionChoice1        // 1 - first choice (rock)
	ActionChoice2        // 2 - second choice (paper)
	ActionChoice3        // 3 - third choice (scissors)
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionRotate:  "Rotate",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionStart:   "Start",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionHint:    "Hint",
	ActionQuit:    "Quit",
	ActionChoice1: "Choice1",
	ActionChoice2: "Choice2",
	ActionChoice3: "Choice3",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// PlayerID identifies a player slot within a match.
// Player1 is always the local human player; Player2 is the CPU, a hot-seat
// partner or the simulated online opponent.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// InputOf builds a frame with the given actions set. Handy in tests.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
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

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
