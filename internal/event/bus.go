package event

import (
	"runtime/debug"
	"sync"

	"github.com/zjrosen/gitpanes/internal/log"
)

// Handler handles one event.
type Handler func(Event)

// Channel is the part of the bus panels depend on.
type Channel interface {
	Emit(e Event)
	On(t Type, handler Handler) *Subscription
	Off(sub *Subscription)
}

var _ Channel = (*Bus)(nil)

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus is a synchronous publish/subscribe channel keyed by event type.
// It is safe for concurrent use.
type Bus struct {
	mu     sync.RWMutex
	subs   map[Type][]subscriber
	nextID uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Type][]subscriber)}
}

// Subscription is the handle returned by On. Releasing it removes the handler.
type Subscription struct {
	bus       *Bus
	eventType Type
	id        uint64
	once      sync.Once
}

// Type returns the event type the subscription listens to.
func (s *Subscription) Type() Type { return s.eventType }

// Unsubscribe removes the handler. Calling it again has no effect.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.bus.remove(s.eventType, s.id)
	})
}

// On registers handler for events of type t.
func (b *Bus) On(t Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[t] = append(b.subs[t], subscriber{id: id, handler: handler})

	return &Subscription{bus: b, eventType: t, id: id}
}

// OnAll registers handler for every event. Wildcard handlers run after the
// handlers subscribed to the specific type.
func (b *Bus) OnAll(handler Handler) *Subscription {
	return b.On(wildcard, handler)
}

// Off removes a subscription. It is equivalent to sub.Unsubscribe and exists
// for handlers whose lifetime is not tied to a panel mount.
func (b *Bus) Off(sub *Subscription) {
	sub.Unsubscribe()
}

func (b *Bus) remove(t Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[t]
	for i, s := range subs {
		if s.id == id {
			b.subs[t] = append(subs[:i:i], subs[i+1:]...)
			if len(b.subs[t]) == 0 {
				delete(b.subs, t)
			}
			return
		}
	}
}

// Emit delivers e to the handlers subscribed to e.Type when the call starts,
// then to wildcard handlers, each group in registration order.
func (b *Bus) Emit(e Event) {
	if !e.Type.Known() {
		log.Warn(log.CatEvent, "dropping event with unknown type", "type", string(e.Type), "source", e.Source)
		return
	}

	b.mu.RLock()
	specific := append([]subscriber(nil), b.subs[e.Type]...)
	all := append([]subscriber(nil), b.subs[wildcard]...)
	b.mu.RUnlock()

	log.Debug(log.CatEvent, "emit",
		"type", string(e.Type),
		"source", e.Source,
		"id", e.ID,
		"subscribers", len(specific))

	for _, s := range specific {
		b.safeCall(s.handler, e)
	}
	for _, s := range all {
		b.safeCall(s.handler, e)
	}
}

func (b *Bus) safeCall(handler Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Error(log.CatEvent, "event handler panicked",
				"type", string(e.Type),
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	handler(e)
}

// SubscriptionCount returns the number of live subscriptions for the given
// types, or for all types (wildcard included) when none are given.
func (b *Bus) SubscriptionCount(types ...Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(types) == 0 {
		n := 0
		for _, subs := range b.subs {
			n += len(subs)
		}
		return n
	}

	n := 0
	for _, t := range types {
		n += len(b.subs[t])
	}
	return n
}

// Clear removes every subscription.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = make(map[Type][]subscriber)
}
