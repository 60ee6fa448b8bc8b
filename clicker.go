package clicker

import (
	"fmt"
)

const (
	// DefaultMarker is used for every class when Config.Markers is nil.
	DefaultMarker = "o"
	// DefaultPickDistance is the legend pick radius in pixels.
	DefaultPickDistance = 10.0
)

// DefaultLegendPlacement puts the legend just outside the top-right corner
// of the axes, anchored at its upper-left corner.
var DefaultLegendPlacement = LegendPlacement{X: 1.04, Y: 1, Anchor: AnchorUpperLeft}

// Config holds the optional construction settings for a Clicker. The zero
// value is valid.
type Config[C comparable] struct {
	// InitialClass is the class active at start. Nil selects the first class.
	InitialClass *C

	// Markers and Colors style each class's series and legend entry. When
	// non-nil they must have one entry per class. A zero Color leaves the
	// choice to the canvas.
	Markers []string
	Colors  []Color

	// Legend placement. A nil LegendPosition uses DefaultLegendPlacement's
	// position; LegendAnchor's zero value is upper left.
	LegendPosition *Point
	LegendAnchor   Anchor

	// PickDistance is the pick radius around legend artifacts, in pixels.
	// Zero means DefaultPickDistance, so a zero radius cannot be requested;
	// use a small positive value such as 1e-9 for picks on the artifact only.
	PickDistance float64

	// LineStyle is forwarded to every series. Empty draws markers only.
	LineStyle string

	// Style is forwarded verbatim to every series as SeriesStyle.Extra.
	Style map[string]any

	// InactiveAlpha is the legend opacity of inactive classes. Zero means
	// DefaultInactiveAlpha, so fully transparent entries cannot be requested;
	// use a small positive value such as 1e-9 instead.
	InactiveAlpha float64

	// Debug logs ignored input and state changes to stderr.
	Debug bool
}

// Clicker is the point-annotation widget. It owns the points, the legend
// binding, and the callback registry; the canvas is only referenced.
//
// A Clicker is not safe for concurrent use. All calls, including the input
// handlers the canvas invokes, must come from one goroutine.
type Clicker[C comparable] struct {
	canvas  Canvas
	classes []C
	series  map[C]Series

	store    *pointStore[C]
	legend   *legendSelector[C]
	handlers handlerRegistry[C]
	sink     EventSink[C]

	disconnect []func()
	debug      bool
}

// NewIndexed creates a Clicker whose classes are the integers 0..n-1.
func NewIndexed(canvas Canvas, n int, cfg Config[int]) (*Clicker[int], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: class count must be positive, got %d", ErrConfiguration, n)
	}
	classes := make([]int, n)
	for i := range classes {
		classes[i] = i
	}
	return New(canvas, classes, cfg)
}

// New creates a Clicker for the given ordered, non-empty class set and
// attaches it to canvas: one series and one legend entry per class, and
// subscriptions to the canvas's button and pick events. On error nothing is
// attached to the canvas.
func New[C comparable](canvas Canvas, classes []C, cfg Config[C]) (*Clicker[C], error) {
	if canvas == nil {
		return nil, fmt.Errorf("%w: nil canvas", ErrConfiguration)
	}
	if err := validateConfig(classes, &cfg); err != nil {
		return nil, err
	}

	active := classes[0]
	if cfg.InitialClass != nil {
		active = *cfg.InitialClass
	}

	cls := make([]C, len(classes))
	copy(cls, classes)

	c := &Clicker[C]{
		canvas:  canvas,
		classes: cls,
		series:  make(map[C]Series, len(cls)),
		store:   newPointStore(cls),
		debug:   cfg.Debug,
	}

	entries := make([]LegendEntry, len(cls))
	for i, class := range cls {
		label := fmt.Sprint(class)
		style := SeriesStyle{
			Marker:    cfg.Markers[i],
			Color:     cfg.Colors[i],
			LineStyle: cfg.LineStyle,
			Extra:     cfg.Style,
		}
		c.series[class] = canvas.AddSeries(label, style)
		entries[i] = LegendEntry{Label: label, Marker: style.Marker, Color: style.Color}
	}

	placement := DefaultLegendPlacement
	if cfg.LegendPosition != nil {
		placement.X, placement.Y = cfg.LegendPosition.X, cfg.LegendPosition.Y
	}
	placement.Anchor = cfg.LegendAnchor
	items := canvas.AddLegend(entries, placement)

	c.legend = newLegendSelector(cls, active, items, cfg.InactiveAlpha, cfg.PickDistance)

	c.disconnect = append(c.disconnect,
		canvas.ConnectButtonPress(c.HandleButtonPress),
		canvas.ConnectPick(c.HandlePick),
	)

	c.legend.apply()
	canvas.Draw()
	c.debugf("created with classes %v, active %v", cls, active)
	return c, nil
}

// validateConfig checks the class set and fills in defaults on cfg.
func validateConfig[C comparable](classes []C, cfg *Config[C]) error {
	if len(classes) == 0 {
		return fmt.Errorf("%w: classes must not be empty", ErrConfiguration)
	}
	seen := make(map[C]struct{}, len(classes))
	for _, c := range classes {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: duplicate class %v", ErrConfiguration, c)
		}
		seen[c] = struct{}{}
	}
	if cfg.InitialClass != nil {
		if _, ok := seen[*cfg.InitialClass]; !ok {
			return fmt.Errorf("%w: initial class must be a valid class, got %v while valid classes are %v",
				ErrConfiguration, *cfg.InitialClass, classes)
		}
	}

	if cfg.Markers == nil {
		cfg.Markers = make([]string, len(classes))
		for i := range cfg.Markers {
			cfg.Markers[i] = DefaultMarker
		}
	} else if len(cfg.Markers) != len(classes) {
		return fmt.Errorf("%w: got %d markers for %d classes", ErrConfiguration, len(cfg.Markers), len(classes))
	}
	if cfg.Colors == nil {
		cfg.Colors = make([]Color, len(classes))
	} else if len(cfg.Colors) != len(classes) {
		return fmt.Errorf("%w: got %d colors for %d classes", ErrConfiguration, len(cfg.Colors), len(classes))
	}

	if cfg.PickDistance < 0 {
		return fmt.Errorf("%w: negative pick distance %v", ErrConfiguration, cfg.PickDistance)
	}
	if cfg.PickDistance == 0 {
		cfg.PickDistance = DefaultPickDistance
	}
	if cfg.InactiveAlpha < 0 || cfg.InactiveAlpha > 1 {
		return fmt.Errorf("%w: inactive alpha %v outside [0, 1]", ErrConfiguration, cfg.InactiveAlpha)
	}
	if cfg.InactiveAlpha == 0 {
		cfg.InactiveAlpha = DefaultInactiveAlpha
	}
	return nil
}

// Classes returns the widget's classes in order.
func (c *Clicker[C]) Classes() []C {
	out := make([]C, len(c.classes))
	copy(out, c.classes)
	return out
}

// ActiveClass returns the class new points are added to and removed from.
func (c *Clicker[C]) ActiveClass() C {
	return c.legend.activeClass()
}

// SetActiveClass makes class active as if its legend entry had been picked:
// the legend is re-highlighted, the canvas redrawn, and class-changed fires.
func (c *Clicker[C]) SetActiveClass(class C) error {
	if err := c.legend.setActive(class); err != nil {
		return err
	}
	c.legend.apply()
	c.canvas.Draw()
	c.fireClassChanged(class)
	return nil
}

// Highlight returns the legend opacity of every class: 1 for the active class
// and the inactive alpha for the rest.
func (c *Clicker[C]) Highlight() map[C]float64 {
	return c.legend.highlight()
}

// Positions returns a copy of every class's points in insertion order.
// Modifying the result does not affect the widget.
func (c *Clicker[C]) Positions() map[C][]Point {
	return c.store.snapshot()
}

// SetPositions replaces the points of every class listed in positions.
// Classes not listed keep their points. If any key is not a valid class,
// ErrValidation is returned and nothing changes.
func (c *Clicker[C]) SetPositions(positions map[C][]Point) error {
	if err := c.store.replaceAll(positions); err != nil {
		return err
	}
	for _, class := range c.classes {
		if _, ok := positions[class]; ok {
			c.series[class].SetData(copyPoints(c.store.get(class)))
		}
	}
	c.canvas.Draw()
	c.firePositionsSet()
	return nil
}

// Disconnect detaches the widget from the canvas's input events. The points
// and callbacks stay usable; canvas clicks and picks no longer reach it.
func (c *Clicker[C]) Disconnect() {
	for _, fn := range c.disconnect {
		if fn != nil {
			fn()
		}
	}
	c.disconnect = nil
}

// updateSeries pushes class's points to its series and redraws.
func (c *Clicker[C]) updateSeries(class C) {
	c.series[class].SetData(copyPoints(c.store.get(class)))
	c.canvas.Draw()
}

func copyPoints(pts []Point) []Point {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return cp
}
