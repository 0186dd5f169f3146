package systems

import (
	"time"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/core"
	"github.com/lixenwraith/tide-fighter/engine"
)

// PowerUpSystem owns the powered-up state: per-frame ammo regeneration and scheduled expiry
type PowerUpSystem struct{}

// NewPowerUpSystem creates a new power-up system
func NewPowerUpSystem() *PowerUpSystem {
	return &PowerUpSystem{}
}

// Priority returns the system's priority
func (s *PowerUpSystem) Priority() int {
	return constants.PriorityPowerUp
}

// EventTypes returns the event types PowerUpSystem handles
func (s *PowerUpSystem) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventPowerUpExpire}
}

// HandleEvent ends the power-up and refills ammo
func (s *PowerUpSystem) HandleEvent(world *engine.World, event engine.GameEvent) {
	if event.Type != engine.EventPowerUpExpire {
		return
	}
	p := world.State.Player
	if !p.PoweredUp {
		return
	}
	p.PoweredUp = false
	world.State.Ammo = world.State.MaxAmmo
	world.Play(core.SoundPowerDown)
	world.Log.Debug().Msg("power-up expired")
}

// Update adds fractional ammo every frame while powered up
func (s *PowerUpSystem) Update(world *engine.World, dt time.Duration) {
	state := world.State
	if !state.Player.PoweredUp {
		return
	}
	regen := constants.PowerUpAmmoRegen * world.FrameScale(dt)
	state.Ammo = min(state.Ammo+regen, state.MaxAmmo)
}
