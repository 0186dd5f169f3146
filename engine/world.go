package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/core"
	"github.com/lixenwraith/tide-fighter/input"
	"github.com/rs/zerolog"
)

// System is an interface that all systems must implement
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// World owns the match state and runs systems once per tick
// All mutation happens on the frame-loop goroutine; deferred work is scheduled as events
type World struct {
	State *GameState
	Input input.State // Snapshot for the current tick
	Audio AudioPlayer
	Log   zerolog.Logger
	Rand  *rand.Rand

	systems []System
	queue   *EventQueue
	router  *EventRouter

	now time.Duration // Match time, sum of all tick deltas
	err error         // First fatal error raised by a system
}

// NewWorld creates a world around a match state
// A nil audio player is replaced by a silent one
func NewWorld(state *GameState, rng *rand.Rand, audio AudioPlayer, logger zerolog.Logger) *World {
	if audio == nil {
		audio = SilentPlayer()
	}
	queue := NewEventQueue()
	return &World{
		State:   state,
		Audio:   audio,
		Log:     logger.With().Str("match", state.MatchID.String()).Logger(),
		Rand:    rng,
		systems: make([]System, 0),
		queue:   queue,
		router:  NewEventRouter(queue),
	}
}

// AddSystem adds a system keeping the list sorted by priority
// Systems that handle events are registered with the router
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}

	if h, ok := system.(EventHandler); ok {
		w.router.Register(h)
	}
}

// Systems returns the systems in execution order
func (w *World) Systems() []System {
	return w.systems
}

// Schedule enqueues an event delay after the current match time
func (w *World) Schedule(t EventType, delay time.Duration, payload any) {
	w.queue.Push(GameEvent{Type: t, At: w.now + delay, Payload: payload})
}

// Now returns the match time
func (w *World) Now() time.Duration {
	return w.now
}

// FrameScale converts a tick delta into reference frames
// Per-frame speeds are multiplied by this so motion is independent of the tick rate
func (w *World) FrameScale(dt time.Duration) float64 {
	return float64(dt) / float64(constants.ReferenceFrame)
}

// Fail records a fatal error; the first one wins and stops the match loop
func (w *World) Fail(err error) {
	if err != nil && w.err == nil {
		w.err = err
		w.Log.Error().Err(err).Msg("match failed")
	}
}

// Err returns the recorded fatal error
func (w *World) Err() error {
	return w.err
}

// Play triggers a sound effect
func (w *World) Play(sound core.SoundType) {
	w.Audio.Play(sound)
}

// Update runs one tick: due events first, then every system in priority order
// Nothing runs once the match is over or has failed
func (w *World) Update(in input.State, dt time.Duration) error {
	if w.err != nil {
		return w.err
	}
	if w.State.GameOver {
		return nil
	}

	w.Input = in
	w.now += dt
	w.router.DispatchDue(w, w.now)

	for _, s := range w.systems {
		s.Update(w, dt)
		if w.err != nil {
			return w.err
		}
	}
	return nil
}
