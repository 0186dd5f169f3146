package components

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/sprite"
)

// Particle is a gear thrown from a hit; it falls under gravity and bounces once
type Particle struct {
	Box
	SpeedX       float64
	SpeedY       float64
	Gravity      float64 // Added to SpeedY every reference frame
	FrameX       int     // Sheet column, fixed at spawn
	FrameY       int     // Sheet row, fixed at spawn
	BounceHeight float64 // Distance above the field bottom where the bounce happens
	Bounced      bool
	Deleted      bool
	Anim         *sprite.Animator
}

// NewParticle creates a particle centered on x,y with randomized motion and frame
func NewParticle(sheets Sheets, x, y float64, rng *rand.Rand) (*Particle, error) {
	sheet, err := sheets.Lookup(SheetGears)
	if err != nil {
		return nil, fmt.Errorf("particle: %w", err)
	}
	size := float64(constants.ParticleSize)
	return &Particle{
		Box: Box{
			X:      x - size/2,
			Y:      y - size/2,
			Width:  size,
			Height: size,
		},
		SpeedX:       rng.Float64()*6 - 3,
		SpeedY:       rng.Float64()*3 - 5,
		Gravity:      constants.ParticleGravity,
		FrameX:       rng.Intn(constants.ParticleSheetCells),
		FrameY:       rng.Intn(constants.ParticleSheetCells),
		BounceHeight: rng.Float64()*constants.ParticleBounceRange + constants.ParticleBounceMin,
		Anim:         sprite.NewAnimator(sheet, 0),
	}, nil
}
