package event

import "reflect"

// Event is a notification emitted by the simulation core. Line renders it as
// one plain text line; styling is the subscriber's business.
type Event interface {
	Line() string
}

// Bus queues events in emission order. Flush delivers them to typed
// subscribers and then to catch-all subscribers. Single goroutine only.
type Bus struct {
	queue    []Event
	handlers map[reflect.Type][]func(Event)
	all      []func(Event)
}

func NewBus() *Bus {
	return &Bus{
		queue:    make([]Event, 0, 32),
		handlers: make(map[reflect.Type][]func(Event)),
	}
}

// Emit queues an event. A nil bus drops it.
func Emit[T Event](b *Bus, ev T) {
	if b == nil {
		return
	}
	b.queue = append(b.queue, ev)
}

// Subscribe registers a typed handler for events of type T.
func Subscribe[T Event](b *Bus, fn func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], func(ev Event) {
		if v, ok := ev.(T); ok {
			fn(v)
		}
	})
}

// SubscribeAll registers a handler that receives every event.
func (b *Bus) SubscribeAll(fn func(Event)) {
	b.all = append(b.all, fn)
}

// Flush delivers queued events in order. Events emitted by handlers during
// the flush are delivered in the same call.
func (b *Bus) Flush() {
	if b == nil {
		return
	}
	for i := 0; i < len(b.queue); i++ {
		ev := b.queue[i]
		for _, h := range b.handlers[reflect.TypeOf(ev)] {
			h(ev)
		}
		for _, h := range b.all {
			h(ev)
		}
	}
	b.queue = b.queue[:0]
}
