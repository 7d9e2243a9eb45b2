package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sky-runner/internal/registry"
)

// ScoreboardKeyMap defines the key bindings for the session runs screen.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.NextMode, k.PrevMode}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the runs of the current session per mode.
type ScoreboardModel struct {
	modes     []registry.ModeInfo
	cursor    int
	session   *Session
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(session *Session, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:   registry.List(),
		session: session,
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Ticks", Width: 8},
			{Title: "Run", Width: 10},
			{Title: "Ended", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// loadRuns fills the table with the runs of the selected mode.
func (m *ScoreboardModel) loadRuns() {
	var rows []table.Row
	if len(m.modes) > 0 {
		for i, r := range m.session.Runs(m.modes[m.cursor].ID) {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.Ticks),
				r.ID.String()[:8],
				r.Ended.Format("15:04:05"),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			if len(m.modes) > 0 {
				m.cursor = (m.cursor + 1) % len(m.modes)
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			if len(m.modes) > 0 {
				m.cursor = (m.cursor - 1 + len(m.modes)) % len(m.modes)
				m.loadRuns()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadRuns()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "SESSION RUNS"
	if len(m.modes) > 0 {
		title = fmt.Sprintf("SESSION RUNS - %s", m.modes[m.cursor].Title)
	}

	body := m.table.View()
	if len(m.table.Rows()) == 0 {
		body = boardEmptyStyle.Render("No runs finished yet.\nPlay a round to fill this table!")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		boardTitleStyle.Render(centerText(title, m.width)),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(body)),
		menuDimStyle.Render(m.help.View(m.keys)),
	)
}

// RunScoreboard runs the scoreboard screen.
// Returns true if the user wants to go back to the menu, false if quitting.
func RunScoreboard(session *Session, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(session, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("scoreboard: %w", err)
	}

	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.goingBack, nil
}
