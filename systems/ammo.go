package systems

import (
	"time"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/engine"
)

// AmmoSystem regenerates one ammo unit per regeneration interval, up to the cap
type AmmoSystem struct{}

// NewAmmoSystem creates a new ammo system
func NewAmmoSystem() *AmmoSystem {
	return &AmmoSystem{}
}

// Priority returns the system's priority
func (s *AmmoSystem) Priority() int {
	return constants.PriorityAmmo
}

// Update advances the regeneration timer
func (s *AmmoSystem) Update(world *engine.World, dt time.Duration) {
	state := world.State
	engine.Accumulate(&state.AmmoTimer, dt, state.AmmoRegenInterval, func() {
		if state.Ammo < state.MaxAmmo {
			state.Ammo = min(state.Ammo+1, state.MaxAmmo)
		}
	})
}
