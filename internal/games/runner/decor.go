package runner

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/sky-runner/internal/config"
)

// tickSeconds is the simulated duration of one tick, used to advance tweens.
const tickSeconds = 1.0 / 60

// FlyingCat is a decorative sprite crossing the sky. It never collides.
type FlyingCat struct {
	X        float64
	Y        float64
	BaseY    float64
	Size     float64
	Speed    float64
	Rotation float64

	bob *gween.Sequence
}

// flock moves the decorative cats right to left and recycles them once they
// leave the view.
type flock struct {
	cfg   config.RunnerDecor
	viewW float64
	rng   Random
	cats  []FlyingCat
}

func newFlock(cfg *config.RunnerConfig, rng Random) *flock {
	f := &flock{
		cfg:   cfg.Decor,
		viewW: cfg.View.Width,
		rng:   rng,
	}
	f.reset()
	return f
}

// reset scatters the cats across the sky.
func (f *flock) reset() {
	f.cats = f.cats[:0]
	for i := 0; i < f.cfg.Cats; i++ {
		f.cats = append(f.cats, f.spawn(uniform(f.rng, 0, f.viewW)))
	}
}

func (f *flock) spawn(x float64) FlyingCat {
	top := f.cfg.SkyHeight - f.cfg.CatSize - f.cfg.BobHeight
	if top < 0 {
		top = 0
	}
	y := uniform(f.rng, 0, top)

	half := float32(f.cfg.BobSeconds / 2)
	h := float32(f.cfg.BobHeight)
	bob := gween.NewSequence(
		gween.New(0, h, half, ease.InOutSine),
		gween.New(h, 0, half, ease.InOutSine),
	)

	return FlyingCat{
		X:     x,
		Y:     y,
		BaseY: y,
		Size:  f.cfg.CatSize,
		Speed: uniform(f.rng, f.cfg.MinSpeed, f.cfg.MaxSpeed),
		bob:   bob,
	}
}

func (f *flock) advance() {
	for i := range f.cats {
		c := &f.cats[i]
		c.X -= c.Speed
		c.Rotation += f.cfg.Spin

		if c.bob != nil {
			offset, _, done := c.bob.Update(tickSeconds)
			if done {
				c.bob.Reset()
			}
			c.Y = c.BaseY + float64(offset)
		}

		if c.X+c.Size <= 0 {
			*c = f.spawn(f.viewW + uniform(f.rng, 0, f.viewW/2))
		}
	}
}
