package systems

import (
	"fmt"
	"time"

	"github.com/lixenwraith/tide-fighter/components"
	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/core"
	"github.com/lixenwraith/tide-fighter/engine"
)

// EnemySystem drifts enemies, resolves their collisions with the player and prunes them
type EnemySystem struct{}

// NewEnemySystem creates a new enemy system
func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

// Priority returns the system's priority
func (s *EnemySystem) Priority() int {
	return constants.PriorityEnemy
}

// Update moves every live enemy left, removing those past the left edge or touching the player
func (s *EnemySystem) Update(world *engine.World, dt time.Duration) {
	state := world.State
	scale := world.FrameScale(dt)

	for _, e := range state.Enemies {
		if e.Deleted {
			continue
		}
		e.X += (e.SpeedX - state.GameSpeed) * scale
		if e.X+e.Width < 0 {
			e.Deleted = true
			continue
		}
		if engine.Overlaps(e.Box, state.Player.Box) {
			if err := ram(world, e); err != nil {
				world.Fail(fmt.Errorf("%s collision with player: %w", e.Kind, err))
				return
			}
		}
	}

	state.Enemies = prune(state.Enemies, func(e *components.Enemy) bool { return e.Deleted })
}

// ram resolves an enemy touching the player
// The enemy is removed and its point value is taken from the score
func ram(world *engine.World, e *components.Enemy) error {
	state := world.State
	e.Deleted = true

	if e.Kind.Spec().OnTouch == components.EffectPowerUp {
		world.ActivatePowerUp()
	}

	state.Shield.Trigger()
	world.Play(core.SoundShield)

	state.Score -= e.Score
	world.Log.Debug().Stringer("kind", e.Kind).Int("score", state.Score).Msg("player rammed")

	return destroyEffects(world, e)
}
