package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/input"
)

// FrameRenderer draws a completed tick
type FrameRenderer interface {
	Render(world *World, dt time.Duration) error
}

// ClockScheduler turns frame timestamps into ticks
// Each Tick computes the elapsed time since the previous one, updates the world,
// then draws. The first tick has zero elapsed time; stalls are capped at MaxFrameDelta
type ClockScheduler struct {
	world    *World
	renderer FrameRenderer
	clock    TimeSource

	last      time.Time
	started   bool
	tickCount uint64
}

// NewClockScheduler creates a scheduler for world
func NewClockScheduler(world *World, renderer FrameRenderer, clock TimeSource) *ClockScheduler {
	return &ClockScheduler{
		world:    world,
		renderer: renderer,
		clock:    clock,
	}
}

// Tick runs one update and draw at the current clock reading
// Returns false once the match is over; the final frame is still drawn
func (cs *ClockScheduler) Tick(in input.State) (bool, error) {
	if cs.world.State.GameOver {
		return false, nil
	}

	now := cs.clock.Now()
	var dt time.Duration
	if cs.started {
		dt = now.Sub(cs.last)
	}
	cs.started = true
	cs.last = now

	if dt < 0 {
		dt = 0
	}
	if dt > constants.MaxFrameDelta {
		dt = constants.MaxFrameDelta
	}

	if err := cs.world.Update(in, dt); err != nil {
		return false, fmt.Errorf("update tick %d: %w", cs.tickCount, err)
	}
	if err := cs.renderer.Render(cs.world, dt); err != nil {
		return false, fmt.Errorf("render tick %d: %w", cs.tickCount, err)
	}
	cs.tickCount++

	if cs.world.State.GameOver {
		cs.world.Log.Info().
			Int("score", cs.world.State.Score).
			Bool("won", cs.world.State.Won()).
			Int("kills", cs.world.State.Kills).
			Uint64("ticks", cs.tickCount).
			Msg("game over")
		return false, nil
	}
	return true, nil
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount
}
