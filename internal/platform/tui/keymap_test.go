package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bat-adventure/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"w jumps", runeKey('w'), core.ActionJump, false},
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"up is second bird", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump2, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"b goes back", runeKey('b'), core.ActionBack, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"1", runeKey('1'), core.ActionOption1, false},
		{"2", runeKey('2'), core.ActionOption2, false},
		{"3", runeKey('3'), core.ActionOption3, false},
		{"4", runeKey('4'), core.ActionOption4, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"shifted W jumps", runeKey('W'), core.ActionJump, false},
		{"shifted P pauses", runeKey('P'), core.ActionPause, false},
		{"shifted R restarts", runeKey('R'), core.ActionRestart, false},
		{"shifted B goes back", runeKey('B'), core.ActionBack, false},
		{"shifted Q quits", runeKey('Q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
		{"down unbound", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected {
				t.Errorf("MapKey(%q) action = %s, expected %s", tc.msg.String(), action, tc.expected)
			}
			if quit != tc.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tc.msg.String(), quit, tc.quit)
			}
		})
	}
}

func TestKeyMapperMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('w'), &frame) {
		t.Error("w should not quit")
	}
	if !frame.Has(core.ActionJump) {
		t.Error("frame should have Jump")
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit is not a game action and should not reach the frame")
	}

	km.MapKeyToFrame(runeKey('x'), &frame)
	if len(frame.Actions) != 1 {
		t.Errorf("frame has %d actions, expected only Jump", len(frame.Actions))
	}
}
