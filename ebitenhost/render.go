package ebitenhost

import (
	"github.com/phanxgames/clicker"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawTo renders the axes, every series and the legend onto screen.
func (c *Canvas) DrawTo(screen *ebiten.Image) {
	screen.Fill(c.opts.Background.ToRGBA(1))

	ax := c.view.Axes
	frame := c.opts.AxesColor.ToRGBA(1)

	// Markers are clipped to the axes by drawing into a sub-image.
	clip := screen.SubImage(imageRect(ax)).(*ebiten.Image)
	for _, s := range c.series {
		c.drawSeries(clip, s)
	}
	vector.StrokeRect(screen, float32(ax.X), float32(ax.Y), float32(ax.Width), float32(ax.Height), 1, frame, false)

	if len(c.rows) > 0 {
		c.drawLegend(screen)
	}
}

func (c *Canvas) drawSeries(dst *ebiten.Image, s *series) {
	clr := s.color.ToRGBA(1)
	if s.style.LineStyle != "" && len(s.visible) > 1 {
		for i := 1; i < len(s.visible); i++ {
			x0, y0 := c.view.DataToScreen(s.visible[i-1])
			x1, y1 := c.view.DataToScreen(s.visible[i])
			vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
		}
	}
	for _, p := range s.visible {
		x, y := c.view.DataToScreen(p)
		drawMarker(dst, s.style.Marker, x, y, c.opts.MarkerRadius, s.color, 1)
	}
}

func (c *Canvas) drawLegend(screen *ebiten.Image) {
	b := c.legendBox
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height),
		c.opts.Background.ToRGBA(0.8), false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height),
		1, clicker.Color{R: 0.8, G: 0.8, B: 0.8, A: 1}.ToRGBA(1), false)

	for _, r := range c.rows {
		lb := r.line.bounds
		if c.lineStyle != "" {
			vector.StrokeLine(screen, float32(lb.X), float32(lb.Y+1), float32(lb.X+lb.Width), float32(lb.Y+1),
				1, r.color.ToRGBA(r.line.alpha), true)
		}
		mb := r.marker.bounds
		drawMarker(screen, r.entry.Marker, mb.X+mb.Width/2, mb.Y+mb.Height/2, c.opts.MarkerRadius, r.color, r.marker.alpha)

		op := &text.DrawOptions{}
		tb := r.label.bounds
		op.GeoM.Translate(tb.X, tb.Y+(legendRowH-13)/2)
		op.ColorScale.ScaleWithColor(c.opts.AxesColor.ToRGBA(1))
		op.ColorScale.ScaleAlpha(float32(r.label.alpha))
		text.Draw(screen, r.entry.Label, c.face, op)
	}
}

// drawMarker draws one marker glyph centred on (x, y). Unknown marker codes
// draw a filled circle.
func drawMarker(dst *ebiten.Image, marker string, x, y, r float64, col clicker.Color, alpha float64) {
	clr := col.ToRGBA(alpha)
	fx, fy, fr := float32(x), float32(y), float32(r)
	switch marker {
	case "s":
		vector.DrawFilledRect(dst, fx-fr, fy-fr, 2*fr, 2*fr, clr, true)
	case "x":
		vector.StrokeLine(dst, fx-fr, fy-fr, fx+fr, fy+fr, 1.5, clr, true)
		vector.StrokeLine(dst, fx-fr, fy+fr, fx+fr, fy-fr, 1.5, clr, true)
	case "+":
		vector.StrokeLine(dst, fx-fr, fy, fx+fr, fy, 1.5, clr, true)
		vector.StrokeLine(dst, fx, fy-fr, fx, fy+fr, 1.5, clr, true)
	case "*":
		vector.StrokeLine(dst, fx-fr, fy, fx+fr, fy, 1.5, clr, true)
		vector.StrokeLine(dst, fx, fy-fr, fx, fy+fr, 1.5, clr, true)
		d := fr * 0.7
		vector.StrokeLine(dst, fx-d, fy-d, fx+d, fy+d, 1.5, clr, true)
		vector.StrokeLine(dst, fx-d, fy+d, fx+d, fy-d, 1.5, clr, true)
	case "^":
		vector.StrokeLine(dst, fx, fy-fr, fx+fr, fy+fr, 1.5, clr, true)
		vector.StrokeLine(dst, fx+fr, fy+fr, fx-fr, fy+fr, 1.5, clr, true)
		vector.StrokeLine(dst, fx-fr, fy+fr, fx, fy-fr, 1.5, clr, true)
	case ".":
		vector.DrawFilledCircle(dst, fx, fy, fr/2, clr, true)
	default:
		vector.DrawFilledCircle(dst, fx, fy, fr, clr, true)
	}
}
