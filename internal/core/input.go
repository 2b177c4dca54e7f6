package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // W, Space - bird 1 flap
	ActionJump2          // Up arrow - bird 2 flap
	ActionConfirm        // Enter - leave the rules screen
	ActionPause          // P - pause/resume
	ActionRestart        // R - retry after a lost round
	ActionBack           // B, Escape - back to menu
	ActionQuit           // Q, Ctrl+C - exit session
	ActionOption1        // 1..4 - menu shortcuts
	ActionOption2
	ActionOption3
	ActionOption4
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionJump2:
		return "Jump2"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionOption1:
		return "Option1"
	case ActionOption2:
		return "Option2"
	case ActionOption3:
		return "Option3"
	case ActionOption4:
		return "Option4"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// Actions are edges: true only on the frame the key went down.
// The pointer position survives Clear; the click is an edge.
type InputFrame struct {
	Actions map[Action]bool

	pointer    Vec2
	hasPointer bool
	clicked    bool
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
	return f.Actions[a]
}

// Pressed is Has under the name the game's input interface expects.
func (f InputFrame) Pressed(a Action) bool {
	return f.Has(a)
}

// SetPointer records the pointer position in world coordinates.
func (f *InputFrame) SetPointer(p Vec2) {
	f.pointer = p
	f.hasPointer = true
}

// Pointer returns the last known pointer position and whether one is known.
func (f InputFrame) Pointer() (Vec2, bool) {
	return f.pointer, f.hasPointer
}

// SetClick marks a primary-button press for this frame.
func (f *InputFrame) SetClick() {
	f.clicked = true
}

// Clicked reports whether the primary button was pressed this frame.
func (f InputFrame) Clicked() bool {
	return f.clicked
}

// Clear resets the per-frame edges. The pointer is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.clicked = false
}
