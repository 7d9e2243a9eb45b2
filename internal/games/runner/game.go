// Package runner implements a side-scrolling endless runner: a square player
// jumps over spike groups and lands on platforms while the ground scrolls
// and gently oscillates.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a RunState to the registry.Game interface used by the
// terminal platform.
type Game struct {
	id      string
	title   string
	mode    config.Mode
	run     *RunState
	runtime core.RuntimeConfig
	paused  bool
	err     error
}

// New creates a runner game in the given mode.
func New(mode config.Mode) *Game {
	g := &Game{id: "runner", title: "Sky Runner", mode: mode}
	if mode == config.ModeClassic {
		g.id = "runner_classic"
		g.title = "Sky Runner Classic"
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new run. A config that fails to load or validate is
// replaced by the defaults; the failure is kept in ConfigErr.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.err = nil

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		g.err = err
		cfg = config.DefaultRunnerConfig()
	}
	config.ApplyMode(&cfg, g.mode)

	rng := rand.New(rand.NewSource(runtime.Seed))
	run, err := NewRunState(cfg, rng)
	if err != nil {
		g.err = err
		cfg = config.DefaultRunnerConfig()
		config.ApplyMode(&cfg, g.mode)
		if run, err = NewRunState(cfg, rng); err != nil {
			panic("runner: default config is invalid: " + err.Error())
		}
	}
	g.run = run
}

// ConfigErr returns the config error from the last Reset, if any.
func (g *Game) ConfigErr() error {
	return g.err
}

// Run exposes the underlying run state.
func (g *Game) Run() *RunState {
	return g.run
}

// Step advances the game by one tick. Every queued jump intent is applied
// before the tick. The step that toggles pause off also ticks.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.run.IsOver() {
		g.paused = !g.paused
	}

	if !g.paused {
		for i := 0; i < in.Jumps; i++ {
			g.run.Jump()
		}
		g.run.Tick()
	}

	return core.StepResult{
		State:  g.State(),
		Sounds: soundsFor(g.run.DrainEvents()),
	}
}

func soundsFor(events []Event) []core.SoundEvent {
	if len(events) == 0 {
		return nil
	}
	out := make([]core.SoundEvent, 0, len(events))
	for _, e := range events {
		s := core.SoundJump
		if e.Kind == EventCollided {
			s = core.SoundCollision
		}
		out = append(out, core.SoundEvent{Sound: s, Pitch: e.Pitch})
	}
	return out
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	NewScreenRenderer(dst).Draw(g.run.Snapshot())
	if g.paused {
		DrawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.run == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.run.DisplayScore(),
		GameOver: g.run.IsOver(),
		Paused:   g.paused,
	}
}

// Register both modes with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New(config.ModeFull)
	})
	registry.Register("runner_classic", func() registry.Game {
		return New(config.ModeClassic)
	})
}
