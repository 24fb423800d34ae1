// internal/event/event.go
package event

import "reflect"

// EventType names a kind of gameplay event.
type EventType string

// Event is published by the simulation. Data carries one of the payload
// types from types.go, or nil.
type Event struct {
	Type EventType
	Tick uint64
	Data interface{}
}

// Listener receives events. Listeners observe only; they must not reach
// back into simulation state.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

// OnEvent calls f(event).
func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher fans events out to subscribers, synchronously and in
// subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

// Unsubscribe removes listener from one event type. Listeners whose
// dynamic type is not comparable, such as ListenerFunc, cannot be
// identified and stay subscribed.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if !identifiable(listener) {
		return
	}
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if identifiable(l) && l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

func identifiable(l Listener) bool {
	return l != nil && reflect.TypeOf(l).Comparable()
}

// Dispatch delivers event to its type's subscribers, then to catch-all ones.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.all {
		listener.OnEvent(event)
	}
}
