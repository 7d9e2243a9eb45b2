package runner

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/sky-runner/internal/config"
)

// scripted replays a fixed sequence of values, cycling when exhausted.
type scripted struct {
	vals []float64
	i    int
}

func (s *scripted) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func newTestRun(t *testing.T, mutate func(*config.RunnerConfig)) *RunState {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := NewRunState(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewRunState() failed: %v", err)
	}
	return s
}

// farPlatform keeps the obstacle list non-empty without reaching the player
// for the duration of a test.
func farPlatform(s *RunState) Obstacle {
	return Obstacle{
		Kind:   KindPlatform,
		X:      10 * s.cfg.View.Width,
		Y:      s.terrain.GroundTop() - 40,
		Width:  100,
		Height: 40,
	}
}

// setObstacles replaces the obstacle stream with obs followed by a far
// platform.
func setObstacles(s *RunState, obs ...Obstacle) {
	s.terrain.obstacles = append(append([]Obstacle(nil), obs...), farPlatform(s))
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
