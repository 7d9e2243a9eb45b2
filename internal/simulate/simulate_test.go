package simulate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/games/runner"
)

func testOptions() Options {
	return Options{
		Runs:      4,
		Seed:      100,
		MaxTicks:  600,
		Workers:   2,
		Config:    config.DefaultRunnerConfig(),
		Autopilot: runner.DefaultAutopilot(),
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := Run(context.Background(), testOptions())
	require.NoError(t, err)
	b, err := Run(context.Background(), testOptions())
	require.NoError(t, err)

	require.Len(t, a, 4)
	require.Len(t, b, 4)
	for i := range a {
		assert.Equal(t, int64(100+i), a[i].Seed)
		assert.Equal(t, a[i].Digest, b[i].Digest, "seed %d", a[i].Seed)
		assert.Equal(t, a[i].Score, b[i].Score)
		assert.Equal(t, a[i].Jumps, b[i].Jumps)
		assert.NotEqual(t, a[i].ID, b[i].ID, "every run gets a fresh id")
	}
}

func TestRunRespectsMaxTicks(t *testing.T) {
	opts := testOptions()
	opts.MaxTicks = 50

	results, err := Run(context.Background(), opts)
	require.NoError(t, err)
	for _, r := range results {
		assert.LessOrEqual(t, r.Ticks, uint64(50))
		if !r.GameOver {
			assert.Equal(t, uint64(50), r.Ticks)
		}
	}
}

func TestRunInvalidConfig(t *testing.T) {
	opts := testOptions()
	opts.Config.Physics.GameSpeed = 0

	_, err := Run(context.Background(), opts)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, testOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunNothing(t *testing.T) {
	opts := testOptions()
	opts.Runs = 0

	results, err := Run(context.Background(), opts)
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Result{
		{Score: 10, GameOver: true},
		{Score: 30, GameOver: false},
		{Score: 20, GameOver: true},
	})

	assert.Equal(t, 3, s.Runs)
	assert.Equal(t, 30, s.Best)
	assert.InDelta(t, 20.0, s.Mean, 1e-9)
	assert.Equal(t, 1, s.Survived)

	assert.Equal(t, Summary{}, Summarize(nil))
}
