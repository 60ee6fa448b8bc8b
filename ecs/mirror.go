package ecs

import (
	"github.com/phanxgames/clicker"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Annotation is the component stored on each mirrored point entity.
type Annotation[C comparable] struct {
	Class    C
	Position clicker.Point
	// Index is the point's position within its class list.
	Index int
}

// Mirror maintains one entity per annotated point. Feed it widget events
// through Handle, typically as a Donburi event subscriber.
type Mirror[C comparable] struct {
	world     donburi.World
	component *donburi.ComponentType[Annotation[C]]
	entities  map[C][]donburi.Entity
}

// NewMirror creates a Mirror with its own Annotation component type.
func NewMirror[C comparable](world donburi.World) *Mirror[C] {
	return &Mirror[C]{
		world:     world,
		component: donburi.NewComponentType[Annotation[C]](),
		entities:  make(map[C][]donburi.Entity),
	}
}

// Component returns the component type the mirror writes.
func (m *Mirror[C]) Component() *donburi.ComponentType[Annotation[C]] {
	return m.component
}

// Query returns a query matching every mirrored point entity.
func (m *Mirror[C]) Query() *donburi.Query {
	return donburi.NewQuery(filter.Contains(m.component))
}

// Handle applies one widget event to the world. Its signature matches a
// Donburi event subscriber.
func (m *Mirror[C]) Handle(w donburi.World, e clicker.Event[C]) {
	switch e.Type {
	case clicker.EventPointAdded:
		m.add(e.Class, e.Position)
	case clicker.EventPointRemoved:
		m.remove(e.Class, e.Index)
	case clicker.EventPositionsSet:
		m.reset(e.Positions)
	}
}

func (m *Mirror[C]) add(class C, p clicker.Point) {
	list := m.entities[class]
	entity := m.world.Create(m.component)
	m.component.SetValue(m.world.Entry(entity), Annotation[C]{
		Class:    class,
		Position: p,
		Index:    len(list),
	})
	m.entities[class] = append(list, entity)
}

func (m *Mirror[C]) remove(class C, index int) {
	list := m.entities[class]
	if index < 0 || index >= len(list) {
		return
	}
	m.world.Remove(list[index])
	list = append(list[:index], list[index+1:]...)
	for i := index; i < len(list); i++ {
		m.component.Get(m.world.Entry(list[i])).Index = i
	}
	m.entities[class] = list
}

func (m *Mirror[C]) reset(positions map[C][]clicker.Point) {
	for class, list := range m.entities {
		for _, e := range list {
			m.world.Remove(e)
		}
		delete(m.entities, class)
	}
	for class, pts := range positions {
		for _, p := range pts {
			m.add(class, p)
		}
	}
}

// Points returns the mirrored points of a class in list order.
func (m *Mirror[C]) Points(class C) []clicker.Point {
	list := m.entities[class]
	out := make([]clicker.Point, len(list))
	for i, e := range list {
		out[i] = m.component.Get(m.world.Entry(e)).Position
	}
	return out
}
