package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/registry"
)

// MenuItem represents a selectable game mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	session        *Session
	config         core.RuntimeConfig
	keys           KeyMap
	help           help.Model
	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	openScoreboard bool      // True if user pressed Tab for session runs
}

// NewMenuModel creates a new menu model listing every registered mode.
func NewMenuModel(session *Session, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:   items,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		session: session,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("  S K Y   R U N N E R  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if best := m.session.Best(item.GameID); best > 0 {
			line += fmt.Sprintf("  (best %d)", best)
		}
		if i == m.cursor {
			b.WriteString(menuCursorStyle.Render(centerText("> "+line[2:], m.width)))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(centerText(m.help.View(MenuHelp{m.keys}), m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(session *Session, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(session, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("menu: %w", err)
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return menuResult(m), nil
}

func menuResult(m MenuModel) MenuResult {
	result := MenuResult{Config: m.config}
	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
	case m.selected != nil:
		result.GameID = m.selected.GameID
	default:
		result.Quit = true
	}
	return result
}
