package runner

import (
	"testing"
)

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestRun(t, nil)
	setObstacles(s, Obstacle{Kind: KindSpikeGroup, X: 600, Width: 20, Height: 30, SpikeHeights: []float64{30}})

	snap := s.Snapshot()
	snap.Obstacles[0].X = -1
	snap.Obstacles[0].SpikeHeights[0] = 99
	snap.Ground[0].X = 12345
	snap.Player.Y = 0

	if o := s.terrain.Obstacles()[0]; o.X != 600 || o.SpikeHeights[0] != 30 {
		t.Error("mutating a snapshot changed the obstacles")
	}
	if s.terrain.Segments()[0].X == 12345 {
		t.Error("mutating a snapshot changed the ground")
	}
	if s.Player().Y == 0 {
		t.Error("mutating a snapshot changed the player")
	}
}

func TestSnapshotContents(t *testing.T) {
	s := newTestRun(t, nil)
	s.Tick()
	snap := s.Snapshot()

	if snap.Tick != 1 || snap.Score != 1 || snap.GameOver {
		t.Errorf("snapshot header = tick %d score %d over %v", snap.Tick, snap.Score, snap.GameOver)
	}
	if snap.ViewW != 800 || snap.ViewH != 400 {
		t.Errorf("view = %vx%v", snap.ViewW, snap.ViewH)
	}
	if len(snap.Cats) != 3 {
		t.Errorf("cats = %d, expected 3", len(snap.Cats))
	}
	if snap.Speed != 5 {
		t.Errorf("speed = %v, expected 5", snap.Speed)
	}
}

func TestDigestTracksState(t *testing.T) {
	s := newTestRun(t, nil)
	setObstacles(s)

	d0 := s.Snapshot().Digest()
	if d0 != s.Snapshot().Digest() {
		t.Fatal("digest should be stable for an unchanged state")
	}

	s.Tick()
	if s.Snapshot().Digest() == d0 {
		t.Error("digest should change after a tick")
	}
}
