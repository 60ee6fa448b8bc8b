package ecs

import (
	"testing"

	"github.com/phanxgames/clicker"

	"github.com/yohamta/donburi"
)

func newMirrored(t *testing.T) (donburi.World, *stubCanvas, *clicker.Clicker[string], *Mirror[string]) {
	t.Helper()
	world := donburi.NewWorld()
	c, k := newWidget(t)
	k.SetEventSink(NewDonburiSink(world, LabelEventType))
	m := NewMirror[string](world)
	LabelEventType.Subscribe(world, m.Handle)
	return world, c, k, m
}

func TestMirrorTracksClicks(t *testing.T) {
	world, c, k, m := newMirrored(t)

	c.click(clicker.MouseButtonLeft, 0, 0)
	c.click(clicker.MouseButtonLeft, 5, 0)
	c.click(clicker.MouseButtonLeft, 9, 0)
	c.click(clicker.MouseButtonRight, 4, 0) // removes (5,0), index 1
	LabelEventType.ProcessEvents(world)

	want := k.Positions()["a"]
	got := m.Points("a")
	if len(got) != len(want) {
		t.Fatalf("mirror a = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mirror a[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if n := m.Query().Count(world); n != 2 {
		t.Errorf("entity count = %d, want 2", n)
	}

	// Indices are compacted after a removal.
	seen := map[int]bool{}
	m.Query().Each(world, func(e *donburi.Entry) {
		a := m.Component().Get(e)
		seen[a.Index] = true
		if a.Class != "a" {
			t.Errorf("class = %q, want a", a.Class)
		}
	})
	if !seen[0] || !seen[1] {
		t.Errorf("indices = %v, want 0 and 1", seen)
	}
}

func TestMirrorPositionsSetReplacesEntities(t *testing.T) {
	world, c, k, m := newMirrored(t)

	c.click(clicker.MouseButtonLeft, 1, 1)
	if err := k.SetPositions(map[string][]clicker.Point{
		"b": {{X: 2, Y: 2}, {X: 3, Y: 3}},
	}); err != nil {
		t.Fatal(err)
	}
	LabelEventType.ProcessEvents(world)

	if got := m.Points("a"); len(got) != 1 || got[0] != (clicker.Point{X: 1, Y: 1}) {
		t.Errorf("mirror a = %v, want [(1,1)]", got)
	}
	if got := m.Points("b"); len(got) != 2 {
		t.Errorf("mirror b = %v, want two points", got)
	}
	if n := m.Query().Count(world); n != 3 {
		t.Errorf("entity count = %d, want 3", n)
	}
}

func TestMirrorIgnoresOutOfRangeRemoval(t *testing.T) {
	world := donburi.NewWorld()
	m := NewMirror[int](world)

	m.Handle(world, clicker.Event[int]{Type: clicker.EventPointRemoved, Class: 0, Index: 3})
	m.Handle(world, clicker.Event[int]{Type: clicker.EventClassChanged, Class: 1})

	if n := m.Query().Count(world); n != 0 {
		t.Errorf("entity count = %d, want 0", n)
	}
}
