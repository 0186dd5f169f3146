package systems

import (
	"time"

	"github.com/lixenwraith/tide-fighter/components"
	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/engine"
)

// ExplosionSystem drifts explosions with the scroll and prunes finished ones
type ExplosionSystem struct{}

// NewExplosionSystem creates a new explosion system
func NewExplosionSystem() *ExplosionSystem {
	return &ExplosionSystem{}
}

// Priority returns the system's priority
func (s *ExplosionSystem) Priority() int {
	return constants.PriorityExplosion
}

// Update removes explosions whose cycle completed on the last draw, then drifts the rest left
func (s *ExplosionSystem) Update(world *engine.World, dt time.Duration) {
	state := world.State
	state.Explosions = prune(state.Explosions, func(e *components.Explosion) bool { return e.Deleted })

	drift := state.GameSpeed * world.FrameScale(dt)
	for _, e := range state.Explosions {
		e.X -= drift
	}
}
