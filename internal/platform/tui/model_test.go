package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-runner/internal/core"
)

// fakeGame ends after overAfter steps and records the inputs it saw.
type fakeGame struct {
	overAfter int
	steps     int
	resets    int
	jumps     int
	paused    bool
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.resets++
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	g.jumps += in.Jumps
	g.steps++
	res := core.StepResult{State: g.State()}
	if res.State.GameOver {
		res.Sounds = []core.SoundEvent{{Sound: core.SoundCollision}}
	}
	return res
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.steps * 10, GameOver: g.steps >= g.overAfter, Paused: g.paused}
}

func newTestModel(g *fakeGame, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(&bytes.Buffer{})
	}
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, opts)
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg{Gen: m.gen})
	return next.(Model), cmd
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

var (
	keySpace   = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyRestart = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	keyQuit    = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyEsc     = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestTickSchedulesNextTick(t *testing.T) {
	g := &fakeGame{overAfter: 100}
	m := newTestModel(g, Options{})

	m, cmd := tick(t, m)
	if cmd == nil {
		t.Fatal("a live run should schedule the next tick")
	}
	if g.steps != 1 {
		t.Errorf("steps = %d, expected 1", g.steps)
	}
}

func TestStaleTickDropped(t *testing.T) {
	g := &fakeGame{overAfter: 100}
	m := newTestModel(g, Options{})

	next, cmd := m.Update(TickMsg{Gen: m.gen - 1})
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if g.steps != 0 {
		t.Error("stale tick should not step the game")
	}
	_ = next
}

func TestGameOverStopsTicking(t *testing.T) {
	var bell bytes.Buffer
	session := NewSession()
	g := &fakeGame{overAfter: 2}
	m := newTestModel(g, Options{Bell: &bell, Session: session})

	m, _ = tick(t, m)
	m, cmd := tick(t, m)
	if cmd != nil {
		t.Error("game over should stop scheduling ticks")
	}
	if bell.String() != "\a" {
		t.Errorf("bell output = %q, expected one BEL", bell.String())
	}
	if session.Best("fake") != 20 {
		t.Errorf("session best = %d, expected 20", session.Best("fake"))
	}

	// A tick already in flight is ignored
	m, cmd = tick(t, m)
	if cmd != nil || g.steps != 2 {
		t.Error("ticks after game over should be ignored")
	}
}

func TestRestartBumpsGeneration(t *testing.T) {
	g := &fakeGame{overAfter: 1}
	m := newTestModel(g, Options{})
	oldGen := m.gen

	m, _ = tick(t, m)
	if !m.gameState.GameOver {
		t.Fatal("expected game over")
	}

	m, cmd := press(t, m, keyRestart)
	if cmd == nil {
		t.Fatal("restart should schedule a tick")
	}
	if m.gen != oldGen+1 {
		t.Errorf("gen = %d, expected %d", m.gen, oldGen+1)
	}
	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}

	// The old generation's tick must not double-step the new run
	next, cmd := m.Update(TickMsg{Gen: oldGen})
	if cmd != nil || g.steps != 0 {
		t.Error("tick from the previous run should be dropped")
	}
	_ = next
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	g := &fakeGame{overAfter: 100}
	m := newTestModel(g, Options{})

	m, cmd := press(t, m, keyRestart)
	if cmd != nil || g.resets != 1 {
		t.Error("restart should only work after game over")
	}
}

func TestJumpQueuedUntilTick(t *testing.T) {
	g := &fakeGame{overAfter: 100}
	m := newTestModel(g, Options{})

	m, _ = press(t, m, keySpace)
	m, _ = press(t, m, keySpace)
	if g.jumps != 0 {
		t.Fatal("jumps should wait for the tick")
	}

	m, _ = tick(t, m)
	if g.jumps != 2 {
		t.Errorf("jumps = %d, expected both queued jumps", g.jumps)
	}

	tick(t, m)
	if g.jumps != 2 {
		t.Error("input should be cleared after a tick")
	}
}

func TestAutopilotJumps(t *testing.T) {
	g := &fakeGame{overAfter: 100}
	m := newTestModel(g, Options{Autopilot: func() bool { return true }})

	tick(t, m)
	if g.jumps != 1 {
		t.Errorf("jumps = %d, expected autopilot jump", g.jumps)
	}
}

func TestQuitAndBack(t *testing.T) {
	g := &fakeGame{overAfter: 100}

	m, cmd := press(t, newTestModel(g, Options{}), keyQuit)
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}

	m, cmd = press(t, newTestModel(g, Options{}), keyEsc)
	if cmd == nil || !m.back || m.quitting {
		t.Error("esc should go back to the menu")
	}
}

func TestViewShowsHelp(t *testing.T) {
	g := &fakeGame{overAfter: 100}
	m := newTestModel(g, Options{})

	view := m.View()
	if !strings.Contains(view, "fake") {
		t.Error("view should contain the rendered game")
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should contain the key help")
	}
}
