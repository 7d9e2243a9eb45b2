package runner

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// CatPose is the drawable part of a flying cat.
type CatPose struct {
	X        float64
	Y        float64
	Size     float64
	Rotation float64
}

// Snapshot is a read-only copy of everything a frontend needs to draw one
// frame. It shares no memory with the RunState it came from.
type Snapshot struct {
	Tick      uint64
	Score     int
	Speed     float64
	GameOver  bool
	ViewW     float64
	ViewH     float64
	GroundTop float64

	Player    Player
	Ground    []GroundSegment
	Obstacles []Obstacle
	Cats      []CatPose
}

// Snapshot copies the current state for rendering.
func (s *RunState) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		Score:     s.score,
		Speed:     s.speed,
		GameOver:  s.status == StatusGameOver,
		ViewW:     s.cfg.View.Width,
		ViewH:     s.cfg.View.Height,
		GroundTop: s.terrain.GroundTop(),
		Player:    s.player,
		Ground:    append([]GroundSegment(nil), s.terrain.Segments()...),
		Obstacles: make([]Obstacle, len(s.terrain.Obstacles())),
		Cats:      make([]CatPose, len(s.flock.cats)),
	}
	for i, o := range s.terrain.Obstacles() {
		snap.Obstacles[i] = o.clone()
	}
	for i, c := range s.flock.cats {
		snap.Cats[i] = CatPose{X: c.X, Y: c.Y, Size: c.Size, Rotation: c.Rotation}
	}
	return snap
}

// DisplayScore is the score shown to the player.
func (s Snapshot) DisplayScore() int {
	return s.Score / 10
}

// Digest hashes the simulation-relevant part of the snapshot: tick, score,
// status, player, ground and obstacles. Two runs with the same config, seed
// and inputs produce the same digest at every tick.
func (s Snapshot) Digest() uint64 {
	buf := make([]byte, 0, 256)
	u := func(v uint64) { buf = binary.LittleEndian.AppendUint64(buf, v) }
	f := func(v float64) { u(math.Float64bits(v)) }
	b := func(v bool) {
		if v {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}

	u(s.Tick)
	u(uint64(s.Score))
	b(s.GameOver)
	f(s.GroundTop)

	p := s.Player
	f(p.X)
	f(p.Y)
	f(p.VelocityY)
	f(p.Rotation)
	b(p.Jumping)
	b(p.CanDoubleJump)
	u(uint64(p.Support))

	u(uint64(len(s.Ground)))
	for _, g := range s.Ground {
		f(g.X)
		f(g.Y)
	}

	u(uint64(len(s.Obstacles)))
	for _, o := range s.Obstacles {
		u(uint64(o.Kind))
		f(o.X)
		f(o.Y)
		f(o.Width)
		f(o.Height)
		for _, h := range o.SpikeHeights {
			f(h)
		}
	}

	return xxhash.Sum64(buf)
}
