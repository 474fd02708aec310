// internal/event/event.go
package event

type EventType string

type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

// OnEvent calls f.
func (f ListenerFunc) OnEvent(event Event) { f(event) }

type subscription struct {
	listener Listener
	active   bool
}

// Dispatcher fans events out to subscribers by type.
type Dispatcher struct {
	listeners map[EventType][]*subscription
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]*subscription),
	}
}

// Subscribe registers listener for eventType. The returned func removes exactly this
// subscription and may be called more than once.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) (unsubscribe func()) {
	sub := &subscription{listener: listener, active: true}
	d.listeners[eventType] = append(d.listeners[eventType], sub)
	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		subs := d.listeners[eventType]
		for i, s := range subs {
			if s == sub {
				d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers event to the listeners of its type. Listeners removed by an
// earlier listener in the same dispatch are skipped.
func (d *Dispatcher) Dispatch(event Event) {
	subs := d.listeners[event.Type]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]*subscription, len(subs))
	copy(snapshot, subs)
	for _, sub := range snapshot {
		if sub.active {
			sub.listener.OnEvent(event)
		}
	}
}

// Count returns the number of live subscriptions for eventType.
func (d *Dispatcher) Count(eventType EventType) int {
	return len(d.listeners[eventType])
}
