package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/registry"
)

// Options configures a terminal run.
type Options struct {
	Logger  *log.Logger
	Session *Session

	// Bell, when set, receives a BEL character on every collision.
	Bell io.Writer

	// Autopilot, when set, is asked before every tick whether to jump.
	Autopilot func() bool
}

// Model is the Bubble Tea model for playing a run.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState

	gen      int  // bumped on every restart; stale ticks are dropped
	ticking  bool // false after game over until restart
	runID    uuid.UUID
	ticks    int
	quitting bool
	back     bool
}

// NewModel creates a model and starts the first run.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Session == nil {
		opts.Session = NewSession()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
	m.startRun()
	return m
}

// startRun resets the game and opens a new tick generation.
func (m *Model) startRun() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.gen++
	m.ticking = true
	m.ticks = 0
	m.runID = uuid.New()

	if err := configErr(m.game); err != nil {
		m.opts.Logger.Warn("using default config", "err", err)
	}
	m.opts.Logger.Info("run started", "run", m.runID, "game", m.game.ID(), "seed", m.config.Seed)
}

// configErr extracts a config error from games that report one.
func configErr(g registry.Game) error {
	if c, ok := g.(interface{ ConfigErr() error }); ok {
		return c.ConfigErr()
	}
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.back = true
		return m, tea.Quit
	case core.ActionRestart:
		// Ticks stop at game over, so restart cannot wait for the next tick.
		if m.gameState.GameOver {
			m.config.Seed = time.Now().UnixNano()
			m.startRun()
			return m, tickCmd(m.config.TickRate, m.gen)
		}
	case core.ActionJump, core.ActionPause:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one simulation step and schedules the next tick while the
// run is alive.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.ticking {
		return m, nil
	}

	if m.opts.Autopilot != nil && !m.gameState.Paused && m.opts.Autopilot() {
		m.inputFrame.Set(core.ActionJump)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	if !m.gameState.Paused {
		m.ticks++
	}

	for _, s := range result.Sounds {
		if s.Sound == core.SoundCollision && m.opts.Bell != nil {
			//nolint:errcheck // Best-effort bell
			io.WriteString(m.opts.Bell, "\a")
		}
	}

	if m.gameState.GameOver {
		m.ticking = false
		m.opts.Session.Record(RunRecord{
			ID:     m.runID,
			GameID: m.game.ID(),
			Score:  m.gameState.Score,
			Ticks:  m.ticks,
			Ended:  time.Now(),
		})
		m.opts.Logger.Info("game over",
			"run", m.runID,
			"game", m.game.ID(),
			"score", m.gameState.Score,
			"ticks", m.ticks,
		)
		return m, nil
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveScreenshot saves the current screen to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the playfield with a help line below it.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	best := m.opts.Session.Best(m.game.ID())
	if best > 0 {
		text := fmt.Sprintf(" Best: %d ", best)
		m.screen.DrawText(m.screen.Width()-len(text)-2, 0, text)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(GameHelp{m.keys})
}

// RunResult reports how a terminal run ended.
type RunResult struct {
	Config core.RuntimeConfig
	Quit   bool // false when the player went back to the menu
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (RunResult, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return RunResult{Config: cfg, Quit: true}, fmt.Errorf("run %s: %w", game.ID(), err)
	}

	m, ok := final.(Model)
	if !ok {
		return RunResult{Config: cfg, Quit: true}, nil
	}
	return RunResult{Config: m.config, Quit: !m.back}, nil
}
