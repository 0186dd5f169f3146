package systems

import (
	"time"

	"github.com/lixenwraith/tide-fighter/components"
	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/engine"
)

// ParticleSystem moves particles under gravity, bounces each once and prunes the ones that left the field
type ParticleSystem struct{}

// NewParticleSystem creates a new particle system
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

// Priority returns the system's priority
func (s *ParticleSystem) Priority() int {
	return constants.PriorityParticle
}

// Update advances every particle and removes those below the field or past its right edge
func (s *ParticleSystem) Update(world *engine.World, dt time.Duration) {
	state := world.State
	scale := world.FrameScale(dt)

	for _, p := range state.Particles {
		p.SpeedY += p.Gravity * scale
		p.X += p.SpeedX * scale
		p.Y += p.SpeedY * scale

		if !p.Bounced && p.Y+p.Height > state.Height-p.BounceHeight {
			p.Bounced = true
			p.SpeedY *= constants.ParticleBounceDamping
		}
		if p.Y+p.Height > state.Height || p.X > state.Width {
			p.Deleted = true
		}
	}

	state.Particles = prune(state.Particles, func(p *components.Particle) bool { return p.Deleted })
}
