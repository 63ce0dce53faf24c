package event

// Handler consumes a published event. Handlers run synchronously on
// the publishing goroutine and must return promptly; a handler that
// blocks stalls the simulation tick that raised the event.
type Handler func(Event)

// Bus is a synchronous publish/subscribe registry. It is not safe for
// concurrent use; the engine owns it and publishes from a single
// goroutine.
type Bus struct {
	handlers    map[Type][]Handler
	allHandlers []Handler
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{
		handlers:    make(map[Type][]Handler),
		allHandlers: nil,
	}
}

// Subscribe registers a handler for one event type.
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll registers a handler for every event type.
func (b *Bus) SubscribeAll(handler Handler) {
	b.allHandlers = append(b.allHandlers, handler)
}

// Publish delivers the event to every matching handler, in
// subscription order, before returning.
func (b *Bus) Publish(evt Event) {
	for _, handler := range b.handlers[evt.EventType()] {
		handler(evt)
	}

	for _, handler := range b.allHandlers {
		handler(evt)
	}
}
