package clicker

// Canvas is the rendering collaborator a Clicker is attached to. It owns the
// drawing surface, lays out the legend, and delivers raw input. The widget
// references the canvas but never owns it.
//
// All methods are called on the goroutine that delivers input; a Canvas does
// not need to be safe for concurrent use.
type Canvas interface {
	// AddSeries creates the marker series for one class. It is called once
	// per class, in class order, during construction.
	AddSeries(label string, style SeriesStyle) Series

	// AddLegend lays out one legend entry per class and returns the artifacts
	// for each entry, in the same order as entries.
	AddLegend(entries []LegendEntry, placement LegendPlacement) []LegendItem

	// ConnectButtonPress subscribes fn to mouse button presses. The returned
	// function removes the subscription.
	ConnectButtonPress(fn func(ButtonEvent)) (disconnect func())

	// ConnectPick subscribes fn to pick events on pickable artifacts.
	ConnectPick(fn func(PickEvent)) (disconnect func())

	// WidgetLock returns the canvas-wide lock that gestures such as pan and
	// zoom hold while active.
	WidgetLock() *WidgetLock

	// Draw flushes all pending visual changes. It is called synchronously
	// after every state change.
	Draw()
}

// Series is the rendered marker set for one class.
type Series interface {
	SetData(points []Point)
}

// Artifact is a legend element handle: a line glyph, a text label, or an
// extra marker glyph. Implementations must be comparable (typically a
// pointer), since the widget uses artifacts as map keys.
type Artifact interface {
	SetAlpha(alpha float64)
	SetPickRadius(pixels float64)
}

// LegendItem lists the artifacts a canvas created for one legend entry.
// Pickable artifacts receive a pick radius and resolve pick events to the
// entry's class. Decorations only follow the entry's opacity.
type LegendItem struct {
	Pickable    []Artifact
	Decorations []Artifact
}

// Artifacts returns every artifact of the entry, pickable first.
func (it LegendItem) Artifacts() []Artifact {
	out := make([]Artifact, 0, len(it.Pickable)+len(it.Decorations))
	out = append(out, it.Pickable...)
	return append(out, it.Decorations...)
}

// SeriesStyle carries the per-class styling passed through to the canvas.
type SeriesStyle struct {
	Marker    string
	Color     Color // zero value: host default
	LineStyle string
	// Extra holds arbitrary host-specific style parameters, forwarded verbatim.
	Extra map[string]any
}

// LegendEntry describes one legend row.
type LegendEntry struct {
	Label  string
	Marker string
	Color  Color
}

// LegendPlacement positions the legend. X and Y are in axes-fraction
// coordinates (0,0 bottom-left, 1,1 top-right); Anchor chooses which point of
// the legend box sits there.
type LegendPlacement struct {
	X, Y   float64
	Anchor Anchor
}

// ButtonEvent is a mouse button press delivered by the canvas.
// Position is in data coordinates and is only meaningful when InAxes is true.
type ButtonEvent struct {
	Button   MouseButton
	Position Point
	InAxes   bool
}

// PickEvent reports that the pointer selected a pickable artifact.
type PickEvent struct {
	Artifact Artifact
}
