package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/sky-runner/internal/core"
)

// Visual characters for terminal rendering.
const (
	GroundChar   = '▓'
	GroundTop    = '▀'
	PlatformChar = '█'
	SpikeChar    = '▲'
	PlayerChar   = '■'
	PlayerTilt   = '◆'
)

const catSprite = "=^.^="

// ScreenRenderer rasterizes snapshots into a character grid. The top row is
// the HUD; the canvas is scaled to fit the rows below it.
type ScreenRenderer struct {
	dst *core.Screen
	sx  float64
	sy  float64
}

// NewScreenRenderer returns a renderer that draws into dst.
func NewScreenRenderer(dst *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{dst: dst}
}

// Draw clears the screen and draws the snapshot.
func (r *ScreenRenderer) Draw(s Snapshot) {
	dst := r.dst
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 || s.ViewW <= 0 || s.ViewH <= 0 {
		return
	}
	r.sx = float64(dst.Width()) / s.ViewW
	r.sy = float64(dst.Height()-1) / s.ViewH

	for _, c := range s.Cats {
		x, y := r.col(c.X), r.row(c.Y)
		w := r.col(c.X+c.Size) - x
		if w < 1 {
			w = 1
		}
		sprite := []rune(catSprite)
		if w < len(sprite) {
			sprite = sprite[:w]
		}
		dst.DrawTextColored(x, y, string(sprite), core.ColorOrange)
	}

	for _, g := range s.Ground {
		rect := r.rect(g.X, g.Y, g.Width, g.Height)
		dst.DrawRect(rect, GroundChar, core.ColorGray)
		dst.DrawHLine(rect.X, rect.Y, rect.W, GroundTop, core.ColorGray)
	}

	for _, o := range s.Obstacles {
		switch o.Kind {
		case KindPlatform:
			dst.DrawRect(r.rect(o.X, o.Y, o.Width, o.Height), PlatformChar, core.ColorBlue)
		case KindSpikeGroup:
			r.drawSpikes(o, s.GroundTop)
		}
	}

	p := s.Player
	glyph := PlayerChar
	if p.Jumping && int(math.Mod(p.Rotation, math.Pi/2)/(math.Pi/4)) == 1 {
		glyph = PlayerTilt
	}
	dst.DrawRect(r.rect(p.X, p.Y, p.Size, p.Size), glyph, core.ColorBrightGreen)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", s.DisplayScore()))

	if s.GameOver {
		DrawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.DisplayScore()))
	}
}

// drawSpikes splits the group into equal columns, one per spike.
func (r *ScreenRenderer) drawSpikes(o Obstacle, groundTop float64) {
	n := len(o.SpikeHeights)
	if n == 0 {
		r.dst.DrawRect(r.rect(o.X, o.Y, o.Width, o.Height), SpikeChar, core.ColorRed)
		return
	}
	w := o.Width / float64(n)
	for i, h := range o.SpikeHeights {
		r.dst.DrawRect(r.rect(o.X+float64(i)*w, groundTop-h, w, h), SpikeChar, core.ColorRed)
	}
}

func (r *ScreenRenderer) col(x float64) int {
	return int(math.Floor(x * r.sx))
}

func (r *ScreenRenderer) row(y float64) int {
	return int(math.Floor(y*r.sy)) + 1
}

// rect maps a canvas box onto cells. Non-empty boxes cover at least one cell.
func (r *ScreenRenderer) rect(x, y, w, h float64) core.Rect {
	x0, y0 := r.col(x), r.row(y)
	x1 := int(math.Ceil((x + w) * r.sx))
	y1 := int(math.Ceil((y+h)*r.sy)) + 1
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	// Keep the world below the HUD row.
	if y0 < 1 {
		y0 = 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// DrawCenteredMessage draws a message box in the center of the screen.
func DrawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
