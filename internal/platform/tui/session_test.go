package tui

import (
	"testing"

	"github.com/google/uuid"
)

func TestSessionRunsAndBest(t *testing.T) {
	s := NewSession()
	if s.Best("runner") != 0 {
		t.Error("empty session should have no best")
	}

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	s.Record(RunRecord{ID: a, GameID: "runner", Score: 10})
	s.Record(RunRecord{ID: b, GameID: "runner_classic", Score: 99})
	s.Record(RunRecord{ID: c, GameID: "runner", Score: 30})

	if s.Best("runner") != 30 {
		t.Errorf("best = %d, expected 30", s.Best("runner"))
	}

	runs := s.Runs("runner")
	if len(runs) != 2 || runs[0].ID != c || runs[1].ID != a {
		t.Errorf("runs = %+v, expected best first", runs)
	}
}
