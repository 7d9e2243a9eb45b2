package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-runner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", runeKey('w'), core.ActionJump},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"x", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%s) = %v, expected %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%s) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
