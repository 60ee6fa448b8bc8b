package ebitenhost

import (
	"math"

	"github.com/phanxgames/clicker"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	defaultWidth  = 640
	defaultHeight = 480

	legendPadding  = 6.0
	legendRowH     = 18.0
	legendGlyphW   = 28.0
	legendGap      = 6.0
	defaultMarkerR = 4.0
)

// Options configures a Canvas. The zero value gives a 640x480 window with
// unit data limits.
type Options struct {
	// Axes is the screen-space data region. Zero uses a 60px margin on the
	// left, top and bottom and leaves room for a legend on the right.
	Axes clicker.Rect
	// XLim and YLim are the initial data limits. Zero ranges mean [0, 1].
	XLim, YLim clicker.Range

	// Width and Height are the logical screen size used for the default Axes.
	Width, Height int

	Background clicker.Color
	AxesColor  clicker.Color
	// MarkerRadius is the marker half-size in pixels. Zero means 4.
	MarkerRadius float64

	// DragDeadZone is the movement in pixels before a middle press starts a
	// pan. Zero means 4.
	DragDeadZone float64

	// Debug logs input routing to stderr.
	Debug bool
}

// defaultPalette is used for series with a zero color, cycling by series index.
var defaultPalette = []clicker.Color{
	{R: 0.122, G: 0.467, B: 0.706, A: 1}, // blue
	{R: 1.000, G: 0.498, B: 0.055, A: 1}, // orange
	{R: 0.173, G: 0.627, B: 0.173, A: 1}, // green
	{R: 0.839, G: 0.153, B: 0.157, A: 1}, // red
	{R: 0.580, G: 0.404, B: 0.741, A: 1}, // purple
	{R: 0.549, G: 0.337, B: 0.294, A: 1}, // brown
	{R: 0.890, G: 0.467, B: 0.761, A: 1}, // pink
	{R: 0.498, G: 0.498, B: 0.498, A: 1}, // gray
	{R: 0.737, G: 0.741, B: 0.133, A: 1}, // olive
	{R: 0.090, G: 0.745, B: 0.812, A: 1}, // cyan
}

// --- Series ---

type series struct {
	label   string
	style   clicker.SeriesStyle
	color   clicker.Color
	pending []clicker.Point
	staged  bool
	visible []clicker.Point
}

// SetData stages new points; they become visible on the next Canvas.Draw.
func (s *series) SetData(points []clicker.Point) {
	s.pending = points
	s.staged = true
}

// --- Legend artifacts ---

type artifactKind uint8

const (
	artifactLine artifactKind = iota
	artifactLabel
	artifactMarker
)

// legendArtifact is one drawable piece of a legend row.
type legendArtifact struct {
	kind       artifactKind
	row        *legendRow
	bounds     clicker.Rect
	alpha      float64
	pending    float64
	pickRadius float64
	pickable   bool
}

func (a *legendArtifact) SetAlpha(alpha float64) { a.pending = alpha }

func (a *legendArtifact) SetPickRadius(pixels float64) {
	a.pickRadius = pixels
	a.pickable = true
}

// hit reports whether (sx, sy) is within the artifact's bounds grown by its
// pick radius.
func (a *legendArtifact) hit(sx, sy float64) bool {
	return a.pickable && a.bounds.Grow(a.pickRadius).Contains(sx, sy)
}

type legendRow struct {
	entry  clicker.LegendEntry
	color  clicker.Color
	line   *legendArtifact
	label  *legendArtifact
	marker *legendArtifact
}

// --- Canvas ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

// Canvas is an Ebitengine-backed clicker.Canvas. Call Update and DrawTo from
// an ebiten.Game, or use Run.
type Canvas struct {
	opts Options
	view *View
	face text.Face

	series    []*series
	rows      []*legendRow
	legendBox clicker.Rect
	lineStyle string

	press  []handler[clicker.ButtonEvent]
	pick   []handler[clicker.PickEvent]
	nextID uint32

	lock    clicker.WidgetLock
	pointer pointerState

	injectQueue []syntheticEvent
	testRunner  *TestRunner

	draws int
}

// NewCanvas creates a Canvas with the given options.
func NewCanvas(opts Options) *Canvas {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	if opts.Axes.Width <= 0 || opts.Axes.Height <= 0 {
		opts.Axes = clicker.Rect{
			X:      60,
			Y:      40,
			Width:  float64(opts.Width) * 0.6,
			Height: float64(opts.Height) - 100,
		}
	}
	if opts.XLim.Span() == 0 {
		opts.XLim = clicker.Range{Min: 0, Max: 1}
	}
	if opts.YLim.Span() == 0 {
		opts.YLim = clicker.Range{Min: 0, Max: 1}
	}
	if opts.Background.IsZero() {
		opts.Background = clicker.Color{R: 1, G: 1, B: 1, A: 1}
	}
	if opts.AxesColor.IsZero() {
		opts.AxesColor = clicker.Color{A: 1}
	}
	if opts.MarkerRadius <= 0 {
		opts.MarkerRadius = defaultMarkerR
	}
	if opts.DragDeadZone <= 0 {
		opts.DragDeadZone = defaultDragDeadZone
	}
	return &Canvas{
		opts: opts,
		view: newView(opts.Axes, opts.XLim, opts.YLim),
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// View returns the canvas's data/screen mapping.
func (c *Canvas) View() *View {
	return c.view
}

// AddSeries implements clicker.Canvas.
func (c *Canvas) AddSeries(label string, style clicker.SeriesStyle) clicker.Series {
	col := style.Color
	if col.IsZero() {
		col = defaultPalette[len(c.series)%len(defaultPalette)]
	}
	s := &series{label: label, style: style, color: col}
	c.series = append(c.series, s)
	if style.LineStyle != "" {
		c.lineStyle = style.LineStyle
	}
	return s
}

// AddLegend implements clicker.Canvas. Each row exposes its line glyph and
// text label as pickable artifacts and the marker drawn on the glyph as a
// decoration.
func (c *Canvas) AddLegend(entries []clicker.LegendEntry, placement clicker.LegendPlacement) []clicker.LegendItem {
	maxLabel := 0.0
	for _, e := range entries {
		if w := text.Advance(e.Label, c.face); w > maxLabel {
			maxLabel = w
		}
	}
	w := legendPadding*2 + legendGlyphW + legendGap + maxLabel
	h := legendPadding*2 + legendRowH*float64(len(entries))

	ax := c.view.Axes
	px := ax.X + placement.X*ax.Width
	py := ax.Y + (1-placement.Y)*ax.Height
	fx, fy := placement.Anchor.Fractions()
	c.legendBox = clicker.Rect{X: px - fx*w, Y: py - fy*h, Width: w, Height: h}

	items := make([]clicker.LegendItem, len(entries))
	c.rows = c.rows[:0]
	for i, e := range entries {
		col := e.Color
		if col.IsZero() {
			col = defaultPalette[i%len(defaultPalette)]
		}
		rowY := c.legendBox.Y + legendPadding + float64(i)*legendRowH
		glyphX := c.legendBox.X + legendPadding
		row := &legendRow{entry: e, color: col}
		row.line = &legendArtifact{
			kind:   artifactLine,
			row:    row,
			bounds: clicker.Rect{X: glyphX, Y: rowY + legendRowH/2 - 1, Width: legendGlyphW, Height: 2},
		}
		row.marker = &legendArtifact{
			kind: artifactMarker,
			row:  row,
			bounds: clicker.Rect{
				X: glyphX + legendGlyphW/2 - c.opts.MarkerRadius, Y: rowY + legendRowH/2 - c.opts.MarkerRadius,
				Width: 2 * c.opts.MarkerRadius, Height: 2 * c.opts.MarkerRadius,
			},
		}
		row.label = &legendArtifact{
			kind: artifactLabel,
			row:  row,
			bounds: clicker.Rect{
				X: glyphX + legendGlyphW + legendGap, Y: rowY,
				Width: text.Advance(e.Label, c.face), Height: legendRowH,
			},
		}
		for _, a := range []*legendArtifact{row.line, row.marker, row.label} {
			a.alpha, a.pending = 1, 1
		}
		c.rows = append(c.rows, row)
		items[i] = clicker.LegendItem{
			Pickable:    []clicker.Artifact{row.line, row.label},
			Decorations: []clicker.Artifact{row.marker},
		}
	}
	return items
}

// LegendBox returns the screen rectangle occupied by the legend.
func (c *Canvas) LegendBox() clicker.Rect {
	return c.legendBox
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

// Draw implements clicker.Canvas: staged series data and legend opacity
// become visible and are used by the next DrawTo.
func (c *Canvas) Draw() {
	for _, s := range c.series {
		if s.staged {
			s.visible, s.pending, s.staged = s.pending, nil, false
		}
	}
	for _, r := range c.rows {
		for _, a := range []*legendArtifact{r.line, r.marker, r.label} {
			a.alpha = a.pending
		}
	}
	c.draws++
}

// DrawCount returns how many times Draw has been called.
func (c *Canvas) DrawCount() int {
	return c.draws
}

// visiblePoints returns the committed points of the series at index i.
func (c *Canvas) visiblePoints(i int) []clicker.Point {
	if i < 0 || i >= len(c.series) {
		return nil
	}
	return c.series[i].visible
}

// artifactAt returns the pickable legend artifact under (sx, sy). When pick
// radii overlap, the artifact whose bounds are closest wins; ties go to the
// earlier row.
func (c *Canvas) artifactAt(sx, sy float64) *legendArtifact {
	var best *legendArtifact
	bestDist := math.Inf(1)
	for _, r := range c.rows {
		for _, a := range []*legendArtifact{r.line, r.label} {
			if !a.hit(sx, sy) {
				continue
			}
			if d := rectDistance(a.bounds, sx, sy); d < bestDist {
				best, bestDist = a, d
			}
		}
	}
	return best
}

// rectDistance is the distance from (x, y) to r, zero inside.
func rectDistance(r clicker.Rect, x, y float64) float64 {
	dx := math.Max(0, math.Max(r.X-x, x-(r.X+r.Width)))
	dy := math.Max(0, math.Max(r.Y-y, y-(r.Y+r.Height)))
	return math.Hypot(dx, dy)
}

func (c *Canvas) rowByLabel(label string) *legendRow {
	for _, r := range c.rows {
		if r.entry.Label == label {
			return r
		}
	}
	return nil
}
