package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-runner/internal/core"
)

// KeyMap defines the key bindings shared by the game and the menus.
type KeyMap struct {
	Jump       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding

	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "session runs"),
		),
	}
}

// GameHelp is the help.KeyMap shown under the playfield.
type GameHelp struct{ KeyMap }

// ShortHelp returns key bindings for the short help view.
func (k GameHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Pause, k.Restart},
		{k.Back, k.Screenshot, k.Quit},
	}
}

// MenuHelp is the help.KeyMap shown under the mode picker.
type MenuHelp struct{ KeyMap }

// ShortHelp returns key bindings for the short help view.
func (k MenuHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Scoreboard, k.Quit}}
}

// MapKey translates a key message to a game action.
// Quit is reported as ActionQuit.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (k KeyMap) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Back):
		return MenuActionBack
	case key.Matches(msg, k.Scoreboard):
		return MenuActionScoreboard
	}
	return MenuActionNone
}
