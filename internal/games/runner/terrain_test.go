package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/sky-runner/internal/config"
)

func newTestTerrain(rng Random) (*Terrain, *config.RunnerConfig) {
	cfg := config.DefaultRunnerConfig()
	return NewTerrain(&cfg, rng), &cfg
}

func TestSpawnPlatform(t *testing.T) {
	tr, _ := newTestTerrain(rand.New(rand.NewSource(1)))
	tr.rng = &scripted{vals: []float64{0.1, 0.5}}

	o := tr.spawn(500)
	if o.Kind != KindPlatform {
		t.Fatalf("kind = %v, expected platform", o.Kind)
	}
	if o.X != 500 || o.Width != 100 || o.Height != 45 {
		t.Errorf("platform = %+v, expected x=500 w=100 h=45", o)
	}
	if o.Y != tr.GroundTop()-45 {
		t.Errorf("platform y = %v, expected resting on ground", o.Y)
	}
	if o.SpikeHeights != nil {
		t.Error("platforms have no spikes")
	}
}

func TestSpawnSpikeGroup(t *testing.T) {
	tr, _ := newTestTerrain(rand.New(rand.NewSource(1)))
	// kind, count, base, then one scale per spike
	tr.rng = &scripted{vals: []float64{0.9, 0.99, 0.5, 0, 0.5, 0.75}}

	o := tr.spawn(0)
	if o.Kind != KindSpikeGroup {
		t.Fatalf("kind = %v, expected spikes", o.Kind)
	}
	if len(o.SpikeHeights) != 3 {
		t.Fatalf("spike count = %d, expected 3", len(o.SpikeHeights))
	}

	want := []float64{40 * 0.5, 40 * 0.7, 40 * 0.8}
	for i, h := range o.SpikeHeights {
		if !approxEqual(h, want[i]) {
			t.Errorf("spike %d height = %v, expected %v", i, h, want[i])
		}
	}
	if !approxEqual(o.Height, 32) {
		t.Errorf("group height = %v, expected tallest spike 32", o.Height)
	}
	if o.Width != 3*20+2*4 {
		t.Errorf("group width = %v, expected 68", o.Width)
	}
}

func TestSpikeCountWithinBounds(t *testing.T) {
	tests := []struct {
		draw float64
		want int
	}{
		{0, 1},
		{0.33, 1},
		{0.34, 2},
		{0.999999, 3},
	}

	for _, tc := range tests {
		tr, _ := newTestTerrain(rand.New(rand.NewSource(1)))
		tr.rng = &scripted{vals: []float64{tc.draw, 0.5}}
		g := tr.spikeGroup()
		if len(g.SpikeHeights) != tc.want {
			t.Errorf("draw %v: %d spikes, expected %d", tc.draw, len(g.SpikeHeights), tc.want)
		}
	}
}

func TestGenerateInitialRange(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		tr, cfg := newTestTerrain(rand.New(rand.NewSource(seed)))
		obs := tr.Obstacles()

		if obs[0].X != cfg.View.Width {
			t.Errorf("seed %d: first obstacle at %v", seed, obs[0].X)
		}
		for i, o := range obs {
			if o.X >= 3*cfg.View.Width {
				t.Errorf("seed %d: obstacle %d at %v beyond initial range", seed, i, o.X)
			}
			if i == 0 {
				continue
			}
			gap := o.X - obs[i-1].X
			if gap < cfg.Obstacles.MinSpacing || gap >= cfg.Obstacles.MaxSpacing {
				t.Errorf("seed %d: gap %v outside [250, 450)", seed, gap)
			}
		}
	}
}

func TestGeneratedShapes(t *testing.T) {
	tr, cfg := newTestTerrain(rand.New(rand.NewSource(3)))
	oc := cfg.Obstacles

	for i := 0; i < 500; i++ {
		o := tr.spawn(0)
		switch o.Kind {
		case KindPlatform:
			if o.Height < oc.PlatformMinHeight || o.Height >= oc.MaxHeight {
				t.Errorf("platform height %v out of range", o.Height)
			}
		case KindSpikeGroup:
			n := len(o.SpikeHeights)
			if n < 1 || n > oc.MaxSpikes {
				t.Errorf("spike count %d out of range", n)
			}
			for _, h := range o.SpikeHeights {
				if h <= 0 || h > o.Height {
					t.Errorf("spike height %v outside (0, %v]", h, o.Height)
				}
			}
		}
	}
}

func TestExtendAppendsExactlyOne(t *testing.T) {
	tr, cfg := newTestTerrain(rand.New(rand.NewSource(1)))
	tr.obstacles = []Obstacle{{Kind: KindPlatform, X: 790, Width: 100, Height: 40}}

	if !tr.Extend() {
		t.Fatal("Extend should append when the last obstacle is in view")
	}
	if len(tr.obstacles) != 2 {
		t.Fatalf("len = %d, expected 2", len(tr.obstacles))
	}
	gap := tr.obstacles[1].X - 790
	if gap < cfg.Obstacles.MinSpacing || gap >= cfg.Obstacles.MaxSpacing {
		t.Errorf("gap %v outside spacing range", gap)
	}

	if tr.Extend() {
		t.Error("Extend should not append while the last obstacle is off screen")
	}
}

func TestExtendPanicsOnEmpty(t *testing.T) {
	tr, _ := newTestTerrain(rand.New(rand.NewSource(1)))
	tr.obstacles = nil

	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty obstacle list")
		}
	}()
	tr.Extend()
}

func TestRecycleEvictsOffscreen(t *testing.T) {
	tr, _ := newTestTerrain(rand.New(rand.NewSource(1)))
	tr.obstacles = []Obstacle{
		{Kind: KindPlatform, X: -50, Width: 50},
		{Kind: KindPlatform, X: -40, Width: 50},
		{Kind: KindPlatform, X: 5000, Width: 50},
	}

	tr.Recycle()

	if len(tr.obstacles) != 2 {
		t.Fatalf("len = %d, expected 2", len(tr.obstacles))
	}
	if tr.obstacles[0].X != -40 {
		t.Errorf("kept obstacle at %v, expected the one still on screen", tr.obstacles[0].X)
	}
}

func TestTerrainCoverage(t *testing.T) {
	tr, cfg := newTestTerrain(rand.New(rand.NewSource(9)))

	for tick := 0; tick < 2000; tick++ {
		tr.AdvanceGround(cfg.Physics.GameSpeed)
		tr.AdvanceObstacles(cfg.Physics.GameSpeed)
		tr.Recycle()

		segs := tr.Segments()
		if segs[0].X > 0 {
			t.Fatalf("tick %d: gap at left edge, first segment at %v", tick, segs[0].X)
		}
		if last := segs[len(segs)-1]; last.Right() < cfg.View.Width {
			t.Fatalf("tick %d: gap at right edge, last segment ends at %v", tick, last.Right())
		}
		for i := 1; i < len(segs); i++ {
			if d := segs[i].X - segs[i-1].Right(); d > 1e-6 || d < -1e-6 {
				t.Fatalf("tick %d: segments %d and %d are not contiguous", tick, i-1, i)
			}
		}

		top := tr.GroundTop()
		for _, o := range tr.Obstacles() {
			if o.Y != top-o.Height {
				t.Fatalf("tick %d: obstacle not resting on ground", tick)
			}
		}
		obs := tr.Obstacles()
		if len(obs) == 0 {
			t.Fatalf("tick %d: obstacle stream ran dry", tick)
		}
		if last := obs[len(obs)-1]; last.X < cfg.View.Width-cfg.Physics.GameSpeed {
			t.Fatalf("tick %d: rightmost obstacle at %v, view ends at %v", tick, last.X, cfg.View.Width)
		}
	}
}
