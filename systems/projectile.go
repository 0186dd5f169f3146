package systems

import (
	"fmt"
	"time"

	"github.com/lixenwraith/tide-fighter/components"
	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/core"
	"github.com/lixenwraith/tide-fighter/engine"
)

// ProjectileSystem moves projectiles, resolves their hits on enemies and prunes spent ones
type ProjectileSystem struct{}

// NewProjectileSystem creates a new projectile system
func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

// Priority returns the system's priority
func (s *ProjectileSystem) Priority() int {
	return constants.PriorityProjectile
}

// Update advances every projectile then tests it against the live enemies
// A projectile stops at the first enemy it overlaps in collection order
func (s *ProjectileSystem) Update(world *engine.World, dt time.Duration) {
	state := world.State
	scale := world.FrameScale(dt)

	for _, p := range state.Projectiles {
		if p.Deleted {
			continue
		}
		p.X += p.SpeedX * scale
		if p.OutOfRange(state.Width) {
			p.Deleted = true
			continue
		}

		for _, e := range state.Enemies {
			if e.Deleted || !engine.Overlaps(p.Box, e.Box) {
				continue
			}
			p.Deleted = true
			if err := landHit(world, e); err != nil {
				world.Fail(fmt.Errorf("projectile hit on %s: %w", e.Kind, err))
				return
			}
			break
		}
	}

	state.Projectiles = prune(state.Projectiles, func(p *components.Projectile) bool { return p.Deleted })
}

// landHit applies one projectile hit to e and runs its death side effects
func landHit(world *engine.World, e *components.Enemy) error {
	state := world.State
	state.Hits++
	world.Play(core.SoundHit)

	died := e.Hit()
	if state.ScoreEveryHit {
		state.Score += e.Score
	}
	if !died {
		return nil
	}

	state.Kills++
	if !state.ScoreEveryHit {
		state.Score += e.Score
	}
	world.Log.Debug().Stringer("kind", e.Kind).Int("score", state.Score).Msg("enemy destroyed")

	if err := destroyEffects(world, e); err != nil {
		return err
	}

	switch e.Kind.Spec().OnDeath {
	case components.EffectReleases:
		return world.ReleaseDrones(e)
	case components.EffectPowerDrop:
		world.ActivatePowerUp()
	}
	return nil
}

// destroyEffects throws a particle burst from the enemy's center and centers an explosion on its position
func destroyEffects(world *engine.World, e *components.Enemy) error {
	cx, cy := e.Center()
	if err := world.SpawnBurst(cx, cy); err != nil {
		return err
	}
	return world.SpawnExplosion(e.X, e.Y)
}
