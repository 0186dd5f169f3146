package engine

import "time"

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, before systems update
	HandleEvent(world *World, event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// EventRouter dispatches due events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the frame loop, so handlers mutate state like any system
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - All due events are dispatched before systems update
type EventRouter struct {
	handlers map[EventType][]EventHandler
	queue    *EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchDue routes every event due at now in time order
// Returns the number of events dispatched
func (r *EventRouter) DispatchDue(world *World, now time.Duration) int {
	events := r.queue.PopDue(now)
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(world, ev)
		}
	}
	return len(events)
}
