package tcellhost

import (
	"github.com/gdamore/tcell/v2"
)

// Draw implements clicker.Canvas. It repaints the whole screen and shows it.
func (c *Canvas) Draw() {
	c.draws++
	c.screen.Clear()
	c.drawFrame()
	c.drawSeries()
	c.drawLegend()
	c.screen.Show()
}

// DrawCount reports how many times Draw has run.
func (c *Canvas) DrawCount() int { return c.draws }

func (c *Canvas) drawFrame() {
	ax, ay, aw, ah := c.axes()
	st := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	left, top, right, bottom := ax-1, ay-1, ax+aw, ay+ah
	for x := left + 1; x < right; x++ {
		c.screen.SetContent(x, top, tcell.RuneHLine, nil, st)
		c.screen.SetContent(x, bottom, tcell.RuneHLine, nil, st)
	}
	for y := top + 1; y < bottom; y++ {
		c.screen.SetContent(left, y, tcell.RuneVLine, nil, st)
		c.screen.SetContent(right, y, tcell.RuneVLine, nil, st)
	}
	c.screen.SetContent(left, top, tcell.RuneULCorner, nil, st)
	c.screen.SetContent(right, top, tcell.RuneURCorner, nil, st)
	c.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, st)
	c.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, st)
}

func (c *Canvas) drawSeries() {
	for _, s := range c.series {
		st := tcell.StyleDefault.Foreground(s.color)
		for _, p := range s.points {
			cx, cy, ok := c.DataToCell(p)
			if !ok {
				continue
			}
			c.screen.SetContent(cx, cy, s.marker, nil, st)
		}
	}
}

func (c *Canvas) drawLegend() {
	if len(c.rows) == 0 {
		return
	}
	sw, _ := c.screen.Size()
	lx := sw - c.legendWidth()
	top := c.legendTop()
	for i, r := range c.rows {
		y := top + i
		glyph := tcell.StyleDefault.Foreground(r.color).Dim(r.glyph.alpha < 1)
		c.screen.SetContent(lx+1, y, r.marker, nil, glyph)
		label := tcell.StyleDefault.Dim(r.text.alpha < 1).Bold(r.text.alpha >= 1)
		for j, ch := range []rune(r.entry.Label) {
			c.screen.SetContent(lx+3+j, y, ch, nil, label)
		}
	}
}
