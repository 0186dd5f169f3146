package engine

import (
	"sort"
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventPowerUpExpire ends the player's power-up
	//
	// Scheduled by World.ActivatePowerUp at activation time + power-up duration
	// Consumed by PowerUpSystem before systems run on the tick the deadline passes
	//
	// Payload: nil
	EventPowerUpExpire EventType = iota
)

// GameEvent is an event due at a point of match time
type GameEvent struct {
	Type    EventType
	At      time.Duration // Match time at which the event becomes due
	Payload any
}

// EventQueue holds events ordered by due time; equal times keep push order
// Push and PopDue run on the single frame-loop goroutine
type EventQueue struct {
	events []GameEvent
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push schedules an event
func (q *EventQueue) Push(ev GameEvent) {
	i := sort.Search(len(q.events), func(i int) bool {
		return q.events[i].At > ev.At
	})
	q.events = append(q.events, GameEvent{})
	copy(q.events[i+1:], q.events[i:])
	q.events[i] = ev
}

// PopDue removes and returns every event due at or before now
func (q *EventQueue) PopDue(now time.Duration) []GameEvent {
	n := sort.Search(len(q.events), func(i int) bool {
		return q.events[i].At > now
	})
	if n == 0 {
		return nil
	}
	due := make([]GameEvent, n)
	copy(due, q.events[:n])
	q.events = q.events[n:]
	return due
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return len(q.events)
}
