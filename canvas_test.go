package clicker

// --- Fake canvas used across the package tests ---

type fakeArtifact struct {
	name       string
	alpha      float64
	pickRadius float64
}

func (a *fakeArtifact) SetAlpha(alpha float64)       { a.alpha = alpha }
func (a *fakeArtifact) SetPickRadius(pixels float64) { a.pickRadius = pixels }

type fakeSeries struct {
	label   string
	style   SeriesStyle
	data    []Point
	updates int
}

func (s *fakeSeries) SetData(points []Point) {
	s.data = points
	s.updates++
}

type fakeLegendItem struct {
	line, text, marker *fakeArtifact
}

type fakeCanvas struct {
	series     []*fakeSeries
	legend     []fakeLegendItem
	placement  LegendPlacement
	entries    []LegendEntry
	withMarker bool // expose an extra decoration artifact per entry

	onPress []func(ButtonEvent)
	onPick  []func(PickEvent)

	lock  WidgetLock
	draws int
}

func (fc *fakeCanvas) AddSeries(label string, style SeriesStyle) Series {
	s := &fakeSeries{label: label, style: style}
	fc.series = append(fc.series, s)
	return s
}

func (fc *fakeCanvas) AddLegend(entries []LegendEntry, placement LegendPlacement) []LegendItem {
	fc.entries = entries
	fc.placement = placement
	items := make([]LegendItem, len(entries))
	for i, e := range entries {
		li := fakeLegendItem{
			line: &fakeArtifact{name: e.Label + "/line", alpha: 1},
			text: &fakeArtifact{name: e.Label + "/text", alpha: 1},
		}
		items[i].Pickable = []Artifact{li.line, li.text}
		if fc.withMarker {
			li.marker = &fakeArtifact{name: e.Label + "/marker", alpha: 1}
			items[i].Decorations = []Artifact{li.marker}
		}
		fc.legend = append(fc.legend, li)
	}
	return items
}

func (fc *fakeCanvas) ConnectButtonPress(fn func(ButtonEvent)) func() {
	fc.onPress = append(fc.onPress, fn)
	i := len(fc.onPress) - 1
	return func() { fc.onPress[i] = nil }
}

func (fc *fakeCanvas) ConnectPick(fn func(PickEvent)) func() {
	fc.onPick = append(fc.onPick, fn)
	i := len(fc.onPick) - 1
	return func() { fc.onPick[i] = nil }
}

func (fc *fakeCanvas) WidgetLock() *WidgetLock { return &fc.lock }

func (fc *fakeCanvas) Draw() { fc.draws++ }

// press simulates the host delivering a button press to all subscribers.
func (fc *fakeCanvas) press(button MouseButton, x, y float64) {
	fc.pressEvent(ButtonEvent{Button: button, Position: Point{x, y}, InAxes: true})
}

func (fc *fakeCanvas) pressEvent(ev ButtonEvent) {
	for _, fn := range fc.onPress {
		if fn != nil {
			fn(ev)
		}
	}
}

// pick simulates the host delivering a pick on artifact a.
func (fc *fakeCanvas) pick(a Artifact) {
	for _, fn := range fc.onPick {
		if fn != nil {
			fn(PickEvent{Artifact: a})
		}
	}
}

func pointsEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
