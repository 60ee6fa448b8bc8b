// Package tcellhost is a clicker.Canvas drawn on a terminal with tcell.
//
// Each cell of the plot area maps to a data coordinate. Markers are single
// runes; the legend occupies a column on the right, one row per class. Mouse
// button 1 adds, button 2 removes, and clicking a legend row picks its class.
// Only the vertical part of the legend anchor is honored.
package tcellhost

import (
	"fmt"
	"math"
	"os"

	"github.com/phanxgames/clicker"

	"github.com/gdamore/tcell/v2"
)

// Options configures a Canvas. Zero ranges mean [0, 1].
type Options struct {
	XLim, YLim clicker.Range
	// CellWidth is the assumed cell width in pixels, used to convert the
	// widget's pick distance to cells. Zero means 8.
	CellWidth float64
	Debug     bool
}

var defaultPalette = []tcell.Color{
	tcell.ColorBlue,
	tcell.ColorOrange,
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorPurple,
	tcell.ColorMaroon,
	tcell.ColorFuchsia,
	tcell.ColorGray,
	tcell.ColorOlive,
	tcell.ColorTeal,
}

var markerRunes = map[string]rune{
	"o": 'o',
	"x": 'x',
	"*": '*',
	"s": '■',
	"+": '+',
	"^": '^',
	".": '·',
}

// markerRune maps a marker code to the rune drawn for it.
func markerRune(marker string) rune {
	if r, ok := markerRunes[marker]; ok {
		return r
	}
	for _, r := range marker {
		return r
	}
	return 'o'
}

func toTcellColor(c clicker.Color, fallback tcell.Color) tcell.Color {
	if c.IsZero() {
		return fallback
	}
	rgba := c.ToRGBA(1)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

type series struct {
	label  string
	marker rune
	color  tcell.Color
	points []clicker.Point
}

func (s *series) SetData(points []clicker.Point) { s.points = points }

type legendArtifact struct {
	row        *legendRow
	alpha      float64
	pickRadius float64
}

func (a *legendArtifact) SetAlpha(alpha float64)       { a.alpha = alpha }
func (a *legendArtifact) SetPickRadius(pixels float64) { a.pickRadius = pixels }

type legendRow struct {
	entry  clicker.LegendEntry
	marker rune
	color  tcell.Color
	glyph  *legendArtifact
	text   *legendArtifact
}

type handler[T any] struct {
	id uint32
	fn func(T)
}

// Canvas is a terminal clicker.Canvas.
type Canvas struct {
	screen tcell.Screen
	opts   Options

	series    []*series
	rows      []*legendRow
	placement clicker.LegendPlacement

	press  []handler[clicker.ButtonEvent]
	pick   []handler[clicker.PickEvent]
	nextID uint32

	lock    clicker.WidgetLock
	buttons tcell.ButtonMask
	draws   int
}

// New creates a Canvas on an initialised screen and enables mouse reporting.
func New(screen tcell.Screen, opts Options) *Canvas {
	if opts.XLim.Span() == 0 {
		opts.XLim = clicker.Range{Min: 0, Max: 1}
	}
	if opts.YLim.Span() == 0 {
		opts.YLim = clicker.Range{Min: 0, Max: 1}
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &Canvas{screen: screen, opts: opts}
}

// AddSeries implements clicker.Canvas.
func (c *Canvas) AddSeries(label string, style clicker.SeriesStyle) clicker.Series {
	s := &series{
		label:  label,
		marker: markerRune(style.Marker),
		color:  toTcellColor(style.Color, defaultPalette[len(c.series)%len(defaultPalette)]),
	}
	c.series = append(c.series, s)
	return s
}

// AddLegend implements clicker.Canvas.
func (c *Canvas) AddLegend(entries []clicker.LegendEntry, placement clicker.LegendPlacement) []clicker.LegendItem {
	c.placement = placement
	c.rows = c.rows[:0]
	items := make([]clicker.LegendItem, len(entries))
	for i, e := range entries {
		r := &legendRow{
			entry:  e,
			marker: markerRune(e.Marker),
			color:  toTcellColor(e.Color, defaultPalette[i%len(defaultPalette)]),
		}
		r.glyph = &legendArtifact{row: r, alpha: 1}
		r.text = &legendArtifact{row: r, alpha: 1}
		c.rows = append(c.rows, r)
		items[i] = clicker.LegendItem{Pickable: []clicker.Artifact{r.glyph, r.text}}
	}
	return items
}

// ConnectButtonPress implements clicker.Canvas.
func (c *Canvas) ConnectButtonPress(fn func(clicker.ButtonEvent)) func() {
	c.nextID++
	id := c.nextID
	c.press = append(c.press, handler[clicker.ButtonEvent]{id: id, fn: fn})
	return func() { c.press = removeHandler(c.press, id) }
}

// ConnectPick implements clicker.Canvas.
func (c *Canvas) ConnectPick(fn func(clicker.PickEvent)) func() {
	c.nextID++
	id := c.nextID
	c.pick = append(c.pick, handler[clicker.PickEvent]{id: id, fn: fn})
	return func() { c.pick = removeHandler(c.pick, id) }
}

func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[T]{}
			return s[:len(s)-1]
		}
	}
	return s
}

// WidgetLock implements clicker.Canvas.
func (c *Canvas) WidgetLock() *clicker.WidgetLock {
	return &c.lock
}

// --- Layout ---

// legendWidth is the width of the legend column: marker, space, longest label,
// and a one-cell margin on each side.
func (c *Canvas) legendWidth() int {
	w := 0
	for _, r := range c.rows {
		if n := len([]rune(r.entry.Label)); n > w {
			w = n
		}
	}
	if len(c.rows) == 0 {
		return 0
	}
	return w + 4
}

// axes returns the plot area in cells, inside a one-cell frame.
func (c *Canvas) axes() (x, y, w, h int) {
	sw, sh := c.screen.Size()
	w = sw - c.legendWidth() - 2
	h = sh - 2
	return 1, 1, max(w, 1), max(h, 1)
}

// legendTop returns the first legend row's screen row, from the vertical
// anchor of the legend placement.
func (c *Canvas) legendTop() int {
	_, ay, _, ah := c.axes()
	_, fy := c.placement.Anchor.Fractions()
	anchorY := float64(ay) + (1-c.placement.Y)*float64(ah)
	top := int(math.Round(anchorY - fy*float64(len(c.rows))))
	_, sh := c.screen.Size()
	return min(max(top, 0), max(sh-len(c.rows), 0))
}

// CellToData converts a cell to the data coordinate of its centre.
func (c *Canvas) CellToData(cx, cy int) clicker.Point {
	ax, ay, aw, ah := c.axes()
	return clicker.Point{
		X: c.opts.XLim.Min + (float64(cx-ax)+0.5)/float64(aw)*c.opts.XLim.Span(),
		Y: c.opts.YLim.Max - (float64(cy-ay)+0.5)/float64(ah)*c.opts.YLim.Span(),
	}
}

// DataToCell converts a data coordinate to the cell containing it. ok is
// false when the point falls outside the plot area.
func (c *Canvas) DataToCell(p clicker.Point) (cx, cy int, ok bool) {
	ax, ay, aw, ah := c.axes()
	fx := (p.X - c.opts.XLim.Min) / c.opts.XLim.Span() * float64(aw)
	fy := (c.opts.YLim.Max - p.Y) / c.opts.YLim.Span() * float64(ah)
	cx = ax + int(math.Floor(fx))
	cy = ay + int(math.Floor(fy))
	// Points on the far limit belong to the last cell.
	if fx == float64(aw) {
		cx--
	}
	if fy == float64(ah) {
		cy--
	}
	ok = cx >= ax && cx < ax+aw && cy >= ay && cy < ay+ah
	return cx, cy, ok
}

func (c *Canvas) inAxes(cx, cy int) bool {
	ax, ay, aw, ah := c.axes()
	return cx >= ax && cx < ax+aw && cy >= ay && cy < ay+ah
}

// artifactAt returns the legend artifact under the cell, allowing the pick
// radius horizontally. Rows never overlap vertically.
func (c *Canvas) artifactAt(cx, cy int) *legendArtifact {
	if len(c.rows) == 0 {
		return nil
	}
	i := cy - c.legendTop()
	if i < 0 || i >= len(c.rows) {
		return nil
	}
	r := c.rows[i]
	sw, _ := c.screen.Size()
	lx := sw - c.legendWidth()
	glyphX := lx + 1
	textX, textEnd := lx+3, lx+3+len([]rune(r.entry.Label))-1

	within := func(a *legendArtifact, from, to int) bool {
		reach := int(a.pickRadius / c.opts.CellWidth)
		return cx >= from-reach && cx <= to+reach
	}
	switch {
	case cx == glyphX:
		return r.glyph
	case cx >= textX && cx <= textEnd:
		return r.text
	case within(r.glyph, glyphX, glyphX):
		return r.glyph
	case within(r.text, textX, textEnd):
		return r.text
	}
	return nil
}

// LegendCell returns the cell of a legend row's label start, for driving
// picks programmatically.
func (c *Canvas) LegendCell(label string) (cx, cy int, ok bool) {
	sw, _ := c.screen.Size()
	for i, r := range c.rows {
		if r.entry.Label == label {
			return sw - c.legendWidth() + 3, c.legendTop() + i, true
		}
	}
	return 0, 0, false
}

func (c *Canvas) debugf(format string, args ...any) {
	if !c.opts.Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[clicker/tcell] "+format+"\n", args...)
}
