// Package ecs provides ECS adapters for clicker's widget events.
//
// [NewDonburiSink] bridges widget events (point added, point removed, class
// changed, positions set) into a [Donburi] world as typed events. Subscribe
// to the event type in your ECS systems to receive them. [Mirror] keeps one
// entity per annotated point in sync with the widget.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world, ecs.LabelEventType)
//	widget.SetEventSink(sink)
//
//	mirror := ecs.NewMirror[string](world)
//	ecs.LabelEventType.Subscribe(world, mirror.Handle)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
