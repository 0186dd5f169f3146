package systems

import (
	"time"

	"github.com/lixenwraith/tide-fighter/components"
	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/core"
	"github.com/lixenwraith/tide-fighter/engine"
	"github.com/lixenwraith/tide-fighter/input"
)

// PlayerSystem applies the tick's input to the player: movement, firing and the debug and mute toggles
type PlayerSystem struct{}

// NewPlayerSystem creates a new player system
func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

// Priority returns the system's priority
func (s *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

// Update moves the player, clamps it to the field and fires one volley per fire press
func (s *PlayerSystem) Update(world *engine.World, dt time.Duration) {
	state := world.State
	p := state.Player

	// Held directions ramp the speed up to the cap; releasing stops at once
	scale := world.FrameScale(dt)
	switch {
	case world.Input.Held(input.ActionUp):
		p.SpeedY = max(p.SpeedY-constants.PlayerAcceleration*scale, -p.MaxSpeed)
	case world.Input.Held(input.ActionDown):
		p.SpeedY = min(p.SpeedY+constants.PlayerAcceleration*scale, p.MaxSpeed)
	default:
		p.SpeedY = 0
	}
	p.Y += p.SpeedY * scale
	p.Clamp(state.Height)

	for i := 0; i < world.Input.Presses(input.ActionFire); i++ {
		Shoot(world)
	}

	if world.Input.Presses(input.ActionToggleDebug)%2 == 1 {
		state.Debug = !state.Debug
	}
	if world.Input.Presses(input.ActionToggleMute)%2 == 1 {
		muted := world.Audio.ToggleMute()
		world.Log.Debug().Bool("muted", muted).Msg("audio toggled")
	}
}

// Shoot fires from the front muzzle, plus the rear muzzle while powered up
// Each projectile costs one whole ammo unit; a muzzle without ammo stays silent
func Shoot(world *engine.World) {
	state := world.State
	p := state.Player

	if state.Ammo < 1 {
		return
	}
	x, y := p.FrontMuzzle()
	state.Projectiles = append(state.Projectiles, components.NewProjectile(x, y, constants.ProjectileSpeed))
	state.Ammo--
	state.ShotsFired++
	world.Play(core.SoundShot)

	if !p.PoweredUp || state.Ammo < 1 {
		return
	}
	x, y = p.RearMuzzle()
	state.Projectiles = append(state.Projectiles, components.NewProjectile(x, y, -constants.ProjectileSpeed))
	state.Ammo--
	state.ShotsFired++
}
