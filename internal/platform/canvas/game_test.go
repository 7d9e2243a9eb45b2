package canvas

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/games/runner"
)

func TestTPS(t *testing.T) {
	tests := []struct {
		rate, want int
	}{
		{0, 60},
		{-5, 60},
		{30, 30},
		{120, 120},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tps(tc.rate), "tps(%d)", tc.rate)
	}
}

func TestRestartLogsRunWithoutSeed(t *testing.T) {
	run, err := runner.NewRunState(config.DefaultRunnerConfig(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	var buf bytes.Buffer
	g := &Game{run: run, sink: Mute{}, logger: log.New(&buf)}
	first := g.runID

	g.wasOver = true
	g.restart()

	out := buf.String()
	assert.Contains(t, out, "run restarted")
	assert.NotContains(t, out, "seed")
	assert.NotEqual(t, first, g.runID)
	assert.False(t, g.wasOver)
	assert.False(t, g.run.IsOver())
	assert.Zero(t, g.run.Score())
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Physics.Gravity = 0

	_, err := NewGame(Options{Config: cfg, Mute: true, Logger: log.New(&bytes.Buffer{})})
	assert.ErrorIs(t, err, config.ErrInvalid)
}
