package systems

import (
	"time"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/engine"
)

// ShieldSystem keeps the shield on the player
// Activation happens on collision; the renderer ends it when its cycle completes
type ShieldSystem struct{}

// NewShieldSystem creates a new shield system
func NewShieldSystem() *ShieldSystem {
	return &ShieldSystem{}
}

// Priority returns the system's priority
func (s *ShieldSystem) Priority() int {
	return constants.PriorityShield
}

// Update binds the shield to the player's bounds
func (s *ShieldSystem) Update(world *engine.World, dt time.Duration) {
	world.State.Shield.Follow(world.State.Player)
}
