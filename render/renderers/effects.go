package renderers

import (
	"fmt"
	"time"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/engine"
	"github.com/lixenwraith/tide-fighter/render"
)

// ShieldRenderer plays the shield's single cycle and switches it off at the end
type ShieldRenderer struct{}

// NewShieldRenderer creates a new shield renderer
func NewShieldRenderer() *ShieldRenderer {
	return &ShieldRenderer{}
}

// IsVisible returns true while the shield cycle is playing
func (r *ShieldRenderer) IsVisible(world *engine.World) bool {
	return world.State.Shield.Active
}

// Render draws the next shield frame
func (r *ShieldRenderer) Render(world *engine.World, s render.Surface, dt time.Duration) error {
	sh := world.State.Shield
	done, err := sh.Anim.AnimateOnce(s, sh.Rect())
	if err != nil {
		return fmt.Errorf("shield: %w", err)
	}
	if done {
		sh.Active = false
	}
	return nil
}

// ExplosionRenderer plays explosions by elapsed time and flags them when their cycle ends
// Flagged explosions are removed by the next update
type ExplosionRenderer struct{}

// NewExplosionRenderer creates a new explosion renderer
func NewExplosionRenderer() *ExplosionRenderer {
	return &ExplosionRenderer{}
}

// Render draws every explosion
func (r *ExplosionRenderer) Render(world *engine.World, s render.Surface, dt time.Duration) error {
	for _, e := range world.State.Explosions {
		if e.Complete {
			continue
		}
		done, err := e.Anim.AnimateTimed(s, e.Rect(), dt, constants.ExplosionFPS)
		if err != nil {
			return fmt.Errorf("explosion %s: %w", e.Kind, err)
		}
		if done {
			e.Complete = true
			e.Deleted = true
		}
	}
	return nil
}
