package systems

import (
	"time"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/engine"
)

// MatchTimerSystem ends the match once the time limit has passed
type MatchTimerSystem struct{}

// NewMatchTimerSystem creates a new match timer system
func NewMatchTimerSystem() *MatchTimerSystem {
	return &MatchTimerSystem{}
}

// Priority returns the system's priority
func (s *MatchTimerSystem) Priority() int {
	return constants.PriorityMatchTimer
}

// Update advances the elapsed time and the match timer; the tick that finds the timer past the limit sets game over
func (s *MatchTimerSystem) Update(world *engine.World, dt time.Duration) {
	state := world.State
	state.Elapsed += dt
	engine.Accumulate(&state.MatchTimer, dt, state.MatchTimeLimit, func() {
		state.GameOver = true
	})
}
