package ecs

import (
	"github.com/phanxgames/clicker"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LabelEventType is the Donburi event type for widgets with string classes.
var LabelEventType = NewEventType[string]()

// IndexedEventType is the Donburi event type for widgets built with
// clicker.NewIndexed.
var IndexedEventType = NewEventType[int]()

// NewEventType creates a Donburi event type for widget events with class
// type C.
func NewEventType[C comparable]() *events.EventType[clicker.Event[C]] {
	return events.NewEventType[clicker.Event[C]]()
}

type donburiSink[C comparable] struct {
	world donburi.World
	typ   *events.EventType[clicker.Event[C]]
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Widget
// events are published to typ and can be consumed with Subscribe and
// ProcessEvents.
func NewDonburiSink[C comparable](world donburi.World, typ *events.EventType[clicker.Event[C]]) clicker.EventSink[C] {
	return &donburiSink[C]{world: world, typ: typ}
}

func (s *donburiSink[C]) EmitEvent(event clicker.Event[C]) {
	s.typ.Publish(s.world, event)
}
