package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tide-fighter/constants"
)

// Clock supplies the current time; satisfied by engine time providers
type Clock interface {
	Now() time.Time
}

// Handler converts terminal key events into the live key set
// Events arrive on the event pump goroutine; Snapshot is called by the frame loop
type Handler struct {
	mu    sync.Mutex
	table *KeyTable
	clock Clock

	lastEvent [actionCount]time.Time // Time of the most recent event per action
	heldUntil [actionCount]time.Time // Hold window end per action
	presses   [actionCount]int       // Edge presses since the last snapshot
}

// NewHandler creates a handler with the given bindings; nil uses the defaults
func NewHandler(table *KeyTable, clock Clock) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{
		table: table,
		clock: clock,
	}
}

// HandleKey records a key event and returns the action it mapped to
func (h *Handler) HandleKey(ev *tcell.EventKey) Action {
	action := h.table.Lookup(ev)
	if action == ActionNone {
		return ActionNone
	}

	now := h.clock.Now()

	h.mu.Lock()
	defer h.mu.Unlock()

	switch action {
	case ActionUp, ActionDown:
		// Opposite direction releases the other immediately
		opposite := ActionDown
		if action == ActionDown {
			opposite = ActionUp
		}
		h.heldUntil[opposite] = time.Time{}

		window := constants.KeyInitialHold
		if now.Sub(h.lastEvent[action]) < constants.KeyInitialHold {
			window = constants.KeyRepeatHold
		}
		if until := now.Add(window); until.After(h.heldUntil[action]) {
			h.heldUntil[action] = until
		}
	default:
		h.presses[action]++
	}
	h.lastEvent[action] = now

	return action
}

// Snapshot returns the current key set and clears press counts
func (h *Handler) Snapshot() State {
	now := h.clock.Now()

	h.mu.Lock()
	defer h.mu.Unlock()

	var s State
	for a := Action(0); a < actionCount; a++ {
		s.held[a] = now.Before(h.heldUntil[a])
		s.presses[a] = h.presses[a]
		h.presses[a] = 0
	}
	return s
}
