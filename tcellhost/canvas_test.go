package tcellhost

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phanxgames/clicker"

	"github.com/gdamore/tcell/v2"
)

// newTestCanvas returns a 40x12 simulated terminal where every plot cell is
// one data unit: x in [0, 33], y in [0, 10].
func newTestCanvas(t *testing.T) (*Canvas, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(40, 12)
	c := New(s, Options{
		XLim: clicker.Range{Min: 0, Max: 33},
		YLim: clicker.Range{Min: 0, Max: 10},
	})
	return c, s
}

func newWiredCanvas(t *testing.T) (*Canvas, tcell.SimulationScreen, *clicker.Clicker[string]) {
	t.Helper()
	c, s := newTestCanvas(t)
	k, err := clicker.New(c, []string{"a", "b"}, clicker.Config[string]{
		Markers: []string{"o", "s"},
	})
	if err != nil {
		t.Fatalf("clicker.New: %v", err)
	}
	return c, s, k
}

func click(c *Canvas, x, y int, btn tcell.ButtonMask) {
	c.HandleEvent(tcell.NewEventMouse(x, y, btn, tcell.ModNone))
	c.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestMarkerRune(t *testing.T) {
	tests := []struct {
		marker string
		want   rune
	}{
		{"o", 'o'},
		{"s", '■'},
		{"^", '^'},
		{"+", '+'},
		{"D", 'D'},
		{"", 'o'},
	}
	for _, tt := range tests {
		if got := markerRune(tt.marker); got != tt.want {
			t.Errorf("markerRune(%q) = %q, want %q", tt.marker, got, tt.want)
		}
	}
}

func TestCellDataMapping(t *testing.T) {
	c, _, _ := newWiredCanvas(t)

	p := c.CellToData(1, 1)
	if p.X != 0.5 || p.Y != 9.5 {
		t.Errorf("CellToData(1,1) = %v, want (0.5, 9.5)", p)
	}
	for _, cell := range [][2]int{{1, 1}, {10, 4}, {33, 10}} {
		cx, cy, ok := c.DataToCell(c.CellToData(cell[0], cell[1]))
		if !ok || cx != cell[0] || cy != cell[1] {
			t.Errorf("round trip %v = (%d,%d,%v)", cell, cx, cy, ok)
		}
	}
	if _, _, ok := c.DataToCell(clicker.Point{X: 33, Y: 0}); !ok {
		t.Error("far corner should be inside the plot")
	}
	if _, _, ok := c.DataToCell(clicker.Point{X: 34, Y: 5}); ok {
		t.Error("x beyond the limit should be outside the plot")
	}
}

func TestLeftClickAddsAndDraws(t *testing.T) {
	c, s, k := newWiredCanvas(t)

	click(c, 5, 3, tcell.Button1)

	got := k.Positions()["a"]
	want := c.CellToData(5, 3)
	if len(got) != 1 || got[0] != want {
		t.Fatalf("class a = %v, want [%v]", got, want)
	}
	if r := runeAt(s, 5, 3); r != 'o' {
		t.Errorf("cell (5,3) = %q, want 'o'", r)
	}
}

func TestHeldButtonMotionAddsOnce(t *testing.T) {
	c, _, k := newWiredCanvas(t)

	c.HandleEvent(tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModNone))
	c.HandleEvent(tcell.NewEventMouse(6, 3, tcell.Button1, tcell.ModNone))
	c.HandleEvent(tcell.NewEventMouse(7, 3, tcell.Button1, tcell.ModNone))
	c.HandleEvent(tcell.NewEventMouse(7, 3, tcell.ButtonNone, tcell.ModNone))

	if got := k.Positions()["a"]; len(got) != 1 {
		t.Errorf("class a = %v, want one point", got)
	}
}

func TestRightClickRemovesNearest(t *testing.T) {
	c, s, k := newWiredCanvas(t)
	if err := k.SetPositions(map[string][]clicker.Point{
		"a": {{X: 2.5, Y: 5.5}, {X: 20.5, Y: 5.5}},
	}); err != nil {
		t.Fatalf("SetPositions: %v", err)
	}

	click(c, 19, 4, tcell.Button2)

	got := k.Positions()["a"]
	if len(got) != 1 || got[0] != (clicker.Point{X: 2.5, Y: 5.5}) {
		t.Fatalf("class a = %v", got)
	}
	cx, cy, _ := c.DataToCell(clicker.Point{X: 20.5, Y: 5.5})
	if r := runeAt(s, cx, cy); r == 'o' {
		t.Error("removed point still drawn")
	}
}

func TestClickOutsidePlotIgnored(t *testing.T) {
	c, _, k := newWiredCanvas(t)

	click(c, 0, 0, tcell.Button1)   // frame corner
	click(c, 36, 11, tcell.Button1) // below the legend

	if got := k.Positions()["a"]; len(got) != 0 {
		t.Errorf("class a = %v, want empty", got)
	}
}

func TestLegendPickSwitchesClass(t *testing.T) {
	c, s, k := newWiredCanvas(t)

	x, y, ok := c.LegendCell("b")
	if !ok {
		t.Fatal("LegendCell(b) not found")
	}
	click(c, x, y, tcell.Button1)
	if k.ActiveClass() != "b" {
		t.Fatalf("active = %q, want b", k.ActiveClass())
	}
	if got := k.Positions()["a"]; len(got) != 0 {
		t.Errorf("a pick must not add a point: %v", got)
	}

	// Legend rows for inactive classes are dimmed.
	ax, ay, _ := c.LegendCell("a")
	_, _, st, _ := s.GetContent(ax, ay)
	if _, _, attrs := st.Decompose(); attrs&tcell.AttrDim == 0 {
		t.Error("inactive legend row should be dim")
	}

	click(c, 5, 3, tcell.Button1)
	if got := k.Positions()["b"]; len(got) != 1 {
		t.Errorf("class b = %v, want one point", got)
	}
	if r := runeAt(s, 5, 3); r != '■' {
		t.Errorf("cell (5,3) = %q, want '■'", r)
	}
}

func TestLegendGlyphPick(t *testing.T) {
	c, _, k := newWiredCanvas(t)
	x, y, _ := c.LegendCell("b")

	// The glyph sits two cells left of the label.
	click(c, x-2, y, tcell.Button1)
	if k.ActiveClass() != "b" {
		t.Errorf("active = %q, want b", k.ActiveClass())
	}
}

func TestWidgetLockBlocksClicks(t *testing.T) {
	c, _, k := newWiredCanvas(t)
	owner := new(int)
	if err := c.WidgetLock().Acquire(owner); err != nil {
		t.Fatal(err)
	}

	click(c, 5, 3, tcell.Button1)
	if got := k.Positions()["a"]; len(got) != 0 {
		t.Errorf("click while locked added %v", got)
	}

	_ = c.WidgetLock().Release(owner)
	click(c, 5, 3, tcell.Button1)
	if got := k.Positions()["a"]; len(got) != 1 {
		t.Errorf("class a = %v after release", got)
	}
}

func TestDisconnectStopsHandling(t *testing.T) {
	c, _, k := newWiredCanvas(t)
	k.Disconnect()
	if len(c.press) != 0 || len(c.pick) != 0 {
		t.Fatalf("handlers left after Disconnect: %d press, %d pick", len(c.press), len(c.pick))
	}
	click(c, 5, 3, tcell.Button1)
	if got := k.Positions()["a"]; len(got) != 0 {
		t.Errorf("class a = %v after Disconnect", got)
	}
}

func TestLegendAnchorLower(t *testing.T) {
	c, _ := newTestCanvas(t)
	_, err := clicker.New(c, []string{"a", "b"}, clicker.Config[string]{
		LegendPosition: &clicker.Point{X: 1.04, Y: 0},
		LegendAnchor:   clicker.AnchorLowerLeft,
	})
	if err != nil {
		t.Fatal(err)
	}
	// Axes bottom edge is row 11; two rows sit directly above it.
	if _, y, _ := c.LegendCell("b"); y != 10 {
		t.Errorf("last legend row at %d, want 10", y)
	}
}

func TestHandleEventQuitKeys(t *testing.T) {
	c, _ := newTestCanvas(t)
	if c.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) != true {
		t.Error("plain key should not quit")
	}
	if c.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Escape should quit")
	}
	if c.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Ctrl-C should quit")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	c, _ := newTestCanvas(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunStopsOnEscape(t *testing.T) {
	c, s := newTestCanvas(t)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Escape")
	}
}

func TestDisconnectDuringPressDispatch(t *testing.T) {
	c, _ := newTestCanvas(t)
	a, err := clicker.New(c, []string{"a"}, clicker.Config[string]{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := clicker.New(c, []string{"b"}, clicker.Config[string]{})
	if err != nil {
		t.Fatal(err)
	}
	a.OnPointAdded(func(clicker.Point, string) { a.Disconnect() })

	click(c, 5, 3, tcell.Button1)

	if got := a.Positions()["a"]; len(got) != 1 {
		t.Errorf("widget a = %v, want one point", got)
	}
	if got := b.Positions()["b"]; len(got) != 1 {
		t.Errorf("widget b = %v, want one point", got)
	}
}
