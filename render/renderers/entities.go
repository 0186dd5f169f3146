package renderers

import (
	"fmt"
	"time"

	"github.com/lixenwraith/tide-fighter/engine"
	"github.com/lixenwraith/tide-fighter/render"
)

// PlayerRenderer draws the player on the row of its power-up state
type PlayerRenderer struct{}

// NewPlayerRenderer creates a new player renderer
func NewPlayerRenderer() *PlayerRenderer {
	return &PlayerRenderer{}
}

// Render draws the player
func (r *PlayerRenderer) Render(world *engine.World, s render.Surface, dt time.Duration) error {
	p := world.State.Player
	if _, err := p.Anim.AnimateRow(s, p.Rect(), p.Row()); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	return nil
}

// ProjectileRenderer draws projectiles as solid bars
type ProjectileRenderer struct{}

// NewProjectileRenderer creates a new projectile renderer
func NewProjectileRenderer() *ProjectileRenderer {
	return &ProjectileRenderer{}
}

// Render draws every projectile
func (r *ProjectileRenderer) Render(world *engine.World, s render.Surface, dt time.Duration) error {
	for _, p := range world.State.Projectiles {
		s.FillRect(p.Rect(), render.RgbProjectile)
	}
	return nil
}

// EnemyRenderer draws enemies on the row picked at spawn
type EnemyRenderer struct{}

// NewEnemyRenderer creates a new enemy renderer
func NewEnemyRenderer() *EnemyRenderer {
	return &EnemyRenderer{}
}

// Render draws every enemy
func (r *EnemyRenderer) Render(world *engine.World, s render.Surface, dt time.Duration) error {
	for _, e := range world.State.Enemies {
		if _, err := e.Anim.Animate(s, e.Rect()); err != nil {
			return fmt.Errorf("enemy %s: %w", e.Kind, err)
		}
	}
	return nil
}

// ParticleRenderer draws each particle's fixed gear cell
type ParticleRenderer struct{}

// NewParticleRenderer creates a new particle renderer
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Render draws every particle
func (r *ParticleRenderer) Render(world *engine.World, s render.Surface, dt time.Duration) error {
	for _, p := range world.State.Particles {
		if err := p.Anim.DrawFrame(s, p.Rect(), p.FrameY, p.FrameX); err != nil {
			return fmt.Errorf("particle: %w", err)
		}
	}
	return nil
}
