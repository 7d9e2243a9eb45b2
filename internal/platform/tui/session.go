package tui

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RunRecord describes one finished run.
type RunRecord struct {
	ID     uuid.UUID
	GameID string
	Score  int
	Ticks  int
	Ended  time.Time
}

// Session keeps the runs played since the program started. Nothing is
// written to disk.
type Session struct {
	mu   sync.Mutex
	runs []RunRecord
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Record appends a finished run.
func (s *Session) Record(r RunRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, r)
}

// Best returns the best score for gameID, or 0 when it was never played.
func (s *Session) Best(gameID string) int {
	best := 0
	for _, r := range s.Runs(gameID) {
		best = max(best, r.Score)
	}
	return best
}

// Runs returns the runs of gameID ordered by score, best first.
// Ties keep play order.
func (s *Session) Runs(gameID string) []RunRecord {
	s.mu.Lock()
	out := make([]RunRecord, 0, len(s.runs))
	for _, r := range s.runs {
		if r.GameID == gameID {
			out = append(out, r)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
