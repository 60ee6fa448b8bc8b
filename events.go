package clicker

// --- Handler registry ---

type pointAddedHandler[C comparable] struct {
	id uint32
	fn func(Point, C)
}

type pointRemovedHandler[C comparable] struct {
	id uint32
	fn func(Point, C, int)
}

type classChangedHandler[C comparable] struct {
	id uint32
	fn func(C)
}

type positionsSetHandler[C comparable] struct {
	id uint32
	fn func(map[C][]Point)
}

type handlerRegistry[C comparable] struct {
	pointAdded   []pointAddedHandler[C]
	pointRemoved []pointRemovedHandler[C]
	classChanged []classChangedHandler[C]
	positionsSet []positionsSetHandler[C]
	nextID       uint32
}

// remover is the non-generic view of a registry that CallbackHandle needs.
type remover interface {
	remove(event EventType, id uint32)
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   remover
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing a handle
// twice, or a zero handle, does nothing.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.event, h.id)
}

// Event reports which event the handle was registered for.
func (h CallbackHandle) Event() EventType {
	return h.event
}

func (r *handlerRegistry[C]) remove(event EventType, id uint32) {
	switch event {
	case EventPointAdded:
		r.pointAdded = removeHandler(r.pointAdded, id, func(h pointAddedHandler[C]) uint32 { return h.id })
	case EventPointRemoved:
		r.pointRemoved = removeHandler(r.pointRemoved, id, func(h pointRemovedHandler[C]) uint32 { return h.id })
	case EventClassChanged:
		r.classChanged = removeHandler(r.classChanged, id, func(h classChangedHandler[C]) uint32 { return h.id })
	case EventPositionsSet:
		r.positionsSet = removeHandler(r.positionsSet, id, func(h positionsSetHandler[C]) uint32 { return h.id })
	}
}

// removeHandler returns a new slice without the entry with the given id,
// preserving order. The old backing array is left untouched so a dispatch
// loop ranging over it when a handler removes itself still sees every entry.
func removeHandler[H any](s []H, id uint32, idOf func(H) uint32) []H {
	for i := range s {
		if idOf(s[i]) == id {
			out := make([]H, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

func (r *handlerRegistry[C]) handle(id uint32, event EventType) CallbackHandle {
	return CallbackHandle{id: id, reg: r, event: event}
}

// --- Registration ---

// OnPointAdded registers fn to run after a point is added by a left click.
// fn receives the new point and its class.
func (c *Clicker[C]) OnPointAdded(fn func(position Point, class C)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.pointAdded = append(c.handlers.pointAdded, pointAddedHandler[C]{id: id, fn: fn})
	return c.handlers.handle(id, EventPointAdded)
}

// OnPointRemoved registers fn to run after a point is removed by a right
// click. fn receives the removed point, its class, and the index it had in
// that class's sequence before removal.
func (c *Clicker[C]) OnPointRemoved(fn func(position Point, class C, index int)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.pointRemoved = append(c.handlers.pointRemoved, pointRemovedHandler[C]{id: id, fn: fn})
	return c.handlers.handle(id, EventPointRemoved)
}

// OnClassChanged registers fn to run after the active class changes.
func (c *Clicker[C]) OnClassChanged(fn func(class C)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.classChanged = append(c.handlers.classChanged, classChangedHandler[C]{id: id, fn: fn})
	return c.handlers.handle(id, EventClassChanged)
}

// OnPositionsSet registers fn to run after SetPositions succeeds. fn receives
// a copy of every class's points, not just the classes that were replaced.
func (c *Clicker[C]) OnPositionsSet(fn func(positions map[C][]Point)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.positionsSet = append(c.handlers.positionsSet, positionsSetHandler[C]{id: id, fn: fn})
	return c.handlers.handle(id, EventPositionsSet)
}

// --- Dispatch ---

// Handlers run in registration order. A handler that panics unwinds through
// the dispatch loop, so handlers after it do not run for that event. Handlers
// added or removed while an event is dispatched take effect from the next
// event.

func (c *Clicker[C]) firePointAdded(p Point, class C) {
	for _, h := range c.handlers.pointAdded {
		h.fn(p, class)
	}
	c.emit(Event[C]{Type: EventPointAdded, Position: p, Class: class})
}

func (c *Clicker[C]) firePointRemoved(p Point, class C, index int) {
	for _, h := range c.handlers.pointRemoved {
		h.fn(p, class, index)
	}
	c.emit(Event[C]{Type: EventPointRemoved, Position: p, Class: class, Index: index})
}

func (c *Clicker[C]) fireClassChanged(class C) {
	for _, h := range c.handlers.classChanged {
		h.fn(class)
	}
	c.emit(Event[C]{Type: EventClassChanged, Class: class})
}

func (c *Clicker[C]) firePositionsSet() {
	// Each handler gets its own copy so one cannot corrupt what the next sees.
	for _, h := range c.handlers.positionsSet {
		h.fn(c.store.snapshot())
	}
	if c.sink != nil {
		c.emit(Event[C]{Type: EventPositionsSet, Positions: c.store.snapshot()})
	}
}

// --- Event sink bridge ---

// EventSink receives every widget event after the typed callbacks have run.
// It is the hook used by the ECS adapter.
type EventSink[C comparable] interface {
	EmitEvent(event Event[C])
}

// Event carries one widget event for an EventSink. Fields not relevant to
// Type are zero.
type Event[C comparable] struct {
	Type      EventType
	Class     C
	Position  Point         // EventPointAdded, EventPointRemoved
	Index     int           // EventPointRemoved
	Positions map[C][]Point // EventPositionsSet
}

// SetEventSink sets the optional event bridge. Pass nil to detach it.
func (c *Clicker[C]) SetEventSink(sink EventSink[C]) {
	c.sink = sink
}

func (c *Clicker[C]) emit(e Event[C]) {
	if c.sink == nil {
		return
	}
	c.sink.EmitEvent(e)
}
