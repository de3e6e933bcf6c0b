// Package eventbus provides an in-process publish/subscribe bus. It decouples
// the webhook pipeline from the AI summarizer: the publisher never holds a
// reference to the subscriber, and a request/reply exchange is layered on top
// of the broadcast primitive via a callback embedded in the event itself.
package eventbus

import (
	"context"
	"sync"
)

// Type discriminates events on the bus.
type Type string

// Event is anything that can be published. Events are passed to handlers by
// reference, not copied.
type Event interface {
	EventType() Type
}

// Handler receives published events. Publish calls handlers synchronously in
// subscription order; a handler that needs to do slow work must hand it off
// to a goroutine and report completion through the event's own callback.
type Handler func(ctx context.Context, ev Event)

// Subscription identifies a registered handler so it can be removed later.
// Go funcs are not comparable, so identity-based unsubscribe is realized with
// this token instead.
type Subscription struct {
	eventType Type
	id        uint64
}

type entry struct {
	id uint64
	fn Handler
}

// Bus is safe for concurrent use. One instance is constructed at process
// startup and injected into the components that need it; there is no hidden
// package-level instance.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[Type][]entry
}

func New() *Bus {
	return &Bus{
		handlers: map[Type][]entry{},
	}
}

// Subscribe registers a handler for the given event type. Multiple handlers
// for the same type are permitted and are invoked in registration order.
func (x *Bus) Subscribe(eventType Type, handler Handler) Subscription {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.nextID++
	x.handlers[eventType] = append(x.handlers[eventType], entry{
		id: x.nextID,
		fn: handler,
	})

	return Subscription{eventType: eventType, id: x.nextID}
}

// Unsubscribe removes the handler registered under the given subscription.
// After it returns, the handler receives no further events. Unknown tokens
// are ignored.
func (x *Bus) Unsubscribe(sub Subscription) {
	x.mu.Lock()
	defer x.mu.Unlock()

	entries := x.handlers[sub.eventType]
	for i, e := range entries {
		if e.id == sub.id {
			x.handlers[sub.eventType] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to every handler registered for its type, in
// subscription order. It returns once all handlers have returned; it does not
// wait for any asynchronous work a handler started.
func (x *Bus) Publish(ctx context.Context, ev Event) {
	x.mu.RLock()
	entries := make([]entry, len(x.handlers[ev.EventType()]))
	copy(entries, x.handlers[ev.EventType()])
	x.mu.RUnlock()

	for _, e := range entries {
		e.fn(ctx, ev)
	}
}
