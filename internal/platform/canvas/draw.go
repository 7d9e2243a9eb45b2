package canvas

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/sky-runner/internal/games/runner"
)

var (
	colorSky      = color.RGBA{0x2a, 0x2a, 0x2a, 0xff}
	colorGround   = color.RGBA{0x3a, 0x3a, 0x3a, 0xff}
	colorGrass    = color.RGBA{0x55, 0x55, 0x55, 0xff}
	colorPlayer   = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	colorPlatform = color.RGBA{0x44, 0x44, 0xff, 0xff}
	colorSpike    = color.RGBA{0xff, 0x44, 0x44, 0xff}
	colorCat      = color.RGBA{0xff, 0xa5, 0x00, 0xff}
	colorShade    = color.RGBA{0, 0, 0, 0xa0}
)

// whitePixel is the source texture for filled paths.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
}()

// Sprites holds images and geometry reused across frames.
type Sprites struct {
	player   *ebiten.Image
	cat      *ebiten.Image
	spikeGap float32
}

// NewSprites builds the player square and the cat head for the given sizes.
// spikeGap is the horizontal gap between spikes of one group.
func NewSprites(playerSize, catSize, spikeGap float64) *Sprites {
	ps := max(int(playerSize), 1)
	player := ebiten.NewImage(ps, ps)
	player.Fill(colorPlayer)

	cs := max(int(catSize), 1)
	cat := ebiten.NewImage(cs, cs)
	r := float32(cs) / 2
	vector.DrawFilledCircle(cat, r, r*1.15, r*0.8, colorCat, true)
	fillTriangle(cat, r*0.2, r*0.9, r*0.35, 0, r*0.9, r*0.5, colorCat)
	fillTriangle(cat, r*1.8, r*0.9, r*1.65, 0, r*1.1, r*0.5, colorCat)

	return &Sprites{player: player, cat: cat, spikeGap: float32(spikeGap)}
}

// Renderer draws snapshots onto an ebiten image at canvas resolution.
type Renderer struct {
	dst     *ebiten.Image
	sprites *Sprites
}

// NewRenderer returns a renderer targeting dst for one frame.
func NewRenderer(dst *ebiten.Image, sprites *Sprites) Renderer {
	return Renderer{dst: dst, sprites: sprites}
}

// Draw paints the whole frame.
func (r Renderer) Draw(s runner.Snapshot) {
	r.dst.Fill(colorSky)

	for _, c := range s.Cats {
		r.drawRotated(r.sprites.cat, c.X, c.Y, c.Size, c.Rotation)
	}

	for _, g := range s.Ground {
		vector.DrawFilledRect(r.dst, float32(g.X), float32(g.Y), float32(g.Width)+1, float32(g.Height), colorGround, false)
		vector.StrokeLine(r.dst, float32(g.X), float32(g.Y), float32(g.Right())+1, float32(g.Y), 2, colorGrass, false)
	}

	for _, o := range s.Obstacles {
		switch o.Kind {
		case runner.KindPlatform:
			vector.DrawFilledRect(r.dst, float32(o.X), float32(o.Y), float32(o.Width), float32(o.Height), colorPlatform, false)
		case runner.KindSpikeGroup:
			r.drawSpikes(o)
		}
	}

	p := s.Player
	r.drawRotated(r.sprites.player, p.X, p.Y, p.Size, p.Rotation)

	ebitenutil.DebugPrintAt(r.dst, fmt.Sprintf("Score: %d", s.DisplayScore()), 8, 8)

	if s.GameOver {
		vector.DrawFilledRect(r.dst, 0, 0, float32(s.ViewW), float32(s.ViewH), colorShade, false)
		msg := fmt.Sprintf("GAME OVER\nScore: %d\nPress R or click to restart", s.DisplayScore())
		ebitenutil.DebugPrintAt(r.dst, msg, int(s.ViewW/2)-80, int(s.ViewH/2)-24)
	}
}

// drawSpikes fills one triangle per spike, bottoms resting on the group base.
func (r Renderer) drawSpikes(o runner.Obstacle) {
	n := len(o.SpikeHeights)
	if n == 0 {
		return
	}
	gap := r.sprites.spikeGap
	w := (float32(o.Width) - float32(n-1)*gap) / float32(n)
	base := float32(o.Y + o.Height)
	for i, h := range o.SpikeHeights {
		x := float32(o.X) + float32(i)*(w+gap)
		fillTriangle(r.dst, x, base, x+w/2, base-float32(h), x+w, base, colorSpike)
	}
}

// drawRotated draws img scaled to size with its top-left at (x, y), rotated
// about its center.
func (r Renderer) drawRotated(img *ebiten.Image, x, y, size, angle float64) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(size/w, size/h)
	op.GeoM.Rotate(math.Mod(angle, 2*math.Pi))
	op.GeoM.Translate(x+size/2, y+size/2)
	op.Filter = ebiten.FilterLinear
	r.dst.DrawImage(img, op)
}

func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(x0, y0)
	path.LineTo(x1, y1)
	path.LineTo(x2, y2)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = cr, cg, cb, ca
	}
	dst.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
