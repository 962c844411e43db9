package game

import (
	"time"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for notifications published by the engine. Events carry
// no game state; subscribers query the engine after being notified.
const (
	EventTypeHandStarted   EventType = "hand_started"
	EventTypeTrickResolved EventType = "trick_resolved"
	EventTypeHandScored    EventType = "hand_scored"
	EventTypeMatchOver     EventType = "match_over"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a match
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

type event struct {
	kind      EventType
	timestamp time.Time
}

func (e event) EventType() EventType { return e.kind }
func (e event) Timestamp() time.Time { return e.timestamp }

// NewEvent creates an event of the given type stamped at now.
func NewEvent(kind EventType, now time.Time) GameEvent {
	return event{kind: kind, timestamp: now}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// SubscriberFunc adapts a function to an EventSubscriber.
type SubscriberFunc func(GameEvent)

// OnEvent calls f(event).
func (f SubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	// Subscribe registers subscriber and returns a function that removes it
	// again. The returned function is the only way to remove a SubscriberFunc.
	Subscribe(subscriber EventSubscriber) (unsubscribe func())
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

type subscription struct {
	id         uint64
	subscriber EventSubscriber
}

// SimpleEventBus is a basic in-memory event bus. Delivery is synchronous and
// in subscription order.
type SimpleEventBus struct {
	subscriptions []subscription
	nextID        uint64
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscriptions: make([]subscription, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) func() {
	bus.nextID++
	id := bus.nextID
	bus.subscriptions = append(bus.subscriptions, subscription{id: id, subscriber: subscriber})
	return func() {
		bus.remove(func(s subscription) bool { return s.id == id })
	}
}

// Unsubscribe removes a comparable subscriber, such as a pointer. Use the
// function returned by Subscribe for SubscriberFunc values.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	bus.remove(func(s subscription) bool { return sameSubscriber(s.subscriber, subscriber) })
}

func (bus *SimpleEventBus) remove(match func(subscription) bool) {
	for i, s := range bus.subscriptions {
		if match(s) {
			bus.subscriptions = append(bus.subscriptions[:i], bus.subscriptions[i+1:]...)
			return
		}
	}
}

func sameSubscriber(a, b EventSubscriber) bool {
	if _, ok := a.(SubscriberFunc); ok {
		return false
	}
	if _, ok := b.(SubscriberFunc); ok {
		return false
	}
	return a == b
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, s := range append([]subscription(nil), bus.subscriptions...) {
		s.subscriber.OnEvent(event)
	}
}
