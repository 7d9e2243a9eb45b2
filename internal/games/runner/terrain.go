package runner

import (
	"github.com/vovakirdan/sky-runner/internal/config"
)

// Random is the source of uniform values in [0, 1) the generator draws from.
// *rand.Rand satisfies it; tests inject scripted sequences.
type Random interface {
	Float64() float64
}

// uniform returns a value in [lo, hi).
func uniform(rng Random, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Terrain owns the scrolling ground strip and the obstacle stream.
// Both sequences are ordered left to right: new entries are appended at the
// right and evicted once their right edge reaches x = 0.
type Terrain struct {
	cfg       *config.RunnerConfig
	rng       Random
	ground    Oscillator
	segments  []GroundSegment
	obstacles []Obstacle
}

// NewTerrain creates a terrain generator and fills the initial view.
func NewTerrain(cfg *config.RunnerConfig, rng Random) *Terrain {
	t := &Terrain{
		cfg: cfg,
		rng: rng,
	}
	t.Reset()
	return t
}

// Reset restores the ground to rest and regenerates segments and obstacles.
func (t *Terrain) Reset() {
	t.ground = NewOscillator(t.cfg.Terrain.MoveSpeed, t.cfg.Terrain.MoveRange)

	w := t.cfg.Terrain.SegmentWidth
	t.segments = t.segments[:0]
	for x := -w; x < t.cfg.View.Width+w; x += w {
		t.segments = append(t.segments, t.newSegment(x))
	}

	t.GenerateInitial(t.cfg.View.Width)
}

// GroundTop returns the y coordinate of the ground's top surface.
func (t *Terrain) GroundTop() float64 {
	return t.cfg.View.Height - t.cfg.Terrain.GroundHeight - t.ground.Offset
}

// Segments returns the live ground segments, left to right.
func (t *Terrain) Segments() []GroundSegment {
	return t.segments
}

// Obstacles returns the live obstacles, left to right.
func (t *Terrain) Obstacles() []Obstacle {
	return t.obstacles
}

// GenerateInitial replaces the obstacle list with a run of obstacles starting
// at viewWidth and continuing while x < 3*viewWidth.
func (t *Terrain) GenerateInitial(viewWidth float64) {
	t.obstacles = t.obstacles[:0]
	for x := viewWidth; x < 3*viewWidth; {
		t.obstacles = append(t.obstacles, t.spawn(x))
		x += t.spacing()
	}
}

// Extend appends exactly one obstacle when the rightmost obstacle has scrolled
// into view. It reports whether an obstacle was added.
// Extend panics on an empty obstacle list; GenerateInitial always leaves at
// least one obstacle.
func (t *Terrain) Extend() bool {
	if len(t.obstacles) == 0 {
		panic("runner: extend on empty obstacle list")
	}
	last := t.obstacles[len(t.obstacles)-1]
	if last.X >= t.cfg.View.Width {
		return false
	}
	t.obstacles = append(t.obstacles, t.spawn(last.X+t.spacing()))
	return true
}

// AdvanceGround moves the ground oscillation one step and scrolls every
// segment left by speed.
func (t *Terrain) AdvanceGround(speed float64) {
	t.ground.Advance()
	top := t.GroundTop()
	for i := range t.segments {
		t.segments[i].X -= speed
		t.segments[i].Y = top
	}
}

// AdvanceObstacles scrolls every obstacle left by speed and keeps it resting
// on the current ground top.
func (t *Terrain) AdvanceObstacles(speed float64) {
	top := t.GroundTop()
	for i := range t.obstacles {
		t.obstacles[i].X -= speed
		t.obstacles[i].Y = top - t.obstacles[i].Height
	}
}

// Recycle evicts off-screen segments and obstacles and appends replacements
// on the right.
func (t *Terrain) Recycle() {
	t.segments = evictLeft(t.segments, GroundSegment.Right)
	if n := len(t.segments); n == 0 {
		t.segments = append(t.segments, t.newSegment(0))
	} else if last := t.segments[n-1]; last.X < t.cfg.View.Width {
		t.segments = append(t.segments, t.newSegment(last.X+last.Width))
	}

	t.obstacles = evictLeft(t.obstacles, Obstacle.Right)
	if len(t.obstacles) == 0 {
		t.GenerateInitial(t.cfg.View.Width)
		return
	}
	t.Extend()
}

// evictLeft removes, in place, every item whose right edge is at or left of
// x = 0, preserving order.
func evictLeft[T any](items []T, right func(T) float64) []T {
	kept := items[:0]
	for _, it := range items {
		if right(it) > 0 {
			kept = append(kept, it)
		}
	}
	return kept
}

func (t *Terrain) newSegment(x float64) GroundSegment {
	return GroundSegment{
		X:      x,
		Y:      t.GroundTop(),
		Width:  t.cfg.Terrain.SegmentWidth,
		Height: t.cfg.Terrain.GroundHeight,
	}
}

// spawn creates one obstacle with its left edge at x.
func (t *Terrain) spawn(x float64) Obstacle {
	oc := t.cfg.Obstacles

	var o Obstacle
	if t.rng.Float64() < oc.PlatformChance {
		o = Obstacle{
			Kind:   KindPlatform,
			Width:  oc.PlatformWidth,
			Height: uniform(t.rng, oc.PlatformMinHeight, oc.MaxHeight),
		}
	} else {
		o = t.spikeGroup()
	}

	o.X = x
	o.Y = t.GroundTop() - o.Height
	return o
}

// spikeGroup draws a group of 1..MaxSpikes spikes. Every spike is a random
// fraction of a shared base height; the group is as tall as its tallest spike.
func (t *Terrain) spikeGroup() Obstacle {
	oc := t.cfg.Obstacles

	n := 1 + int(t.rng.Float64()*float64(oc.MaxSpikes))
	if n > oc.MaxSpikes {
		n = oc.MaxSpikes
	}
	base := uniform(t.rng, oc.SpikeMinBase, oc.MaxHeight)

	heights := make([]float64, n)
	tallest := 0.0
	for i := range heights {
		heights[i] = base * uniform(t.rng, oc.SpikeScaleMin, oc.SpikeScaleMax)
		if heights[i] > tallest {
			tallest = heights[i]
		}
	}

	return Obstacle{
		Kind:         KindSpikeGroup,
		Width:        float64(n)*oc.SpikeWidth + float64(n-1)*oc.SpikeGap,
		Height:       tallest,
		SpikeHeights: heights,
	}
}

func (t *Terrain) spacing() float64 {
	return uniform(t.rng, t.cfg.Obstacles.MinSpacing, t.cfg.Obstacles.MaxSpacing)
}
