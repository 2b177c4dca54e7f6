package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bat-adventure/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		bindings: map[string]core.Action{
			"ctrl+c": core.ActionQuit,
			"q":      core.ActionQuit,
			"Q":      core.ActionQuit,
			"w":      core.ActionJump,
			"W":      core.ActionJump,
			" ":      core.ActionJump,
			"up":     core.ActionJump2,
			"enter":  core.ActionConfirm,
			"p":      core.ActionPause,
			"P":      core.ActionPause,
			"r":      core.ActionRestart,
			"R":      core.ActionRestart,
			"b":      core.ActionBack,
			"B":      core.ActionBack,
			"esc":    core.ActionBack,
			"1":      core.ActionOption1,
			"2":      core.ActionOption2,
			"3":      core.ActionOption3,
			"4":      core.ActionOption4,
		},
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}
