// internal/event/pointer.go
package event

// PointerFeed turns polled cursor positions into PointerMoved events and
// exposes them as a pointer source for icons.
type PointerFeed struct {
	dispatcher *Dispatcher
	last       Pointer
	seen       bool
}

// NewPointerFeed creates a feed publishing on dispatcher.
func NewPointerFeed(dispatcher *Dispatcher) *PointerFeed {
	return &PointerFeed{dispatcher: dispatcher}
}

// Update publishes a PointerMoved event when the position differs from the
// previous one.
func (f *PointerFeed) Update(x, y float64) {
	p := Pointer{X: x, Y: y}
	if f.seen && p == f.last {
		return
	}
	f.last, f.seen = p, true
	f.dispatcher.Dispatch(Event{Type: PointerMoved, Data: p})
}

// Last returns the most recent position and whether one was seen.
func (f *PointerFeed) Last() (Pointer, bool) {
	return f.last, f.seen
}

// SubscribePointer delivers every PointerMoved position to fn.
func (f *PointerFeed) SubscribePointer(fn func(x, y float64)) (unsubscribe func()) {
	return f.dispatcher.Subscribe(PointerMoved, ListenerFunc(func(e Event) {
		if p, ok := e.Data.(Pointer); ok {
			fn(p.X, p.Y)
		}
	}))
}
