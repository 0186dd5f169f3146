package components

import "github.com/lixenwraith/tide-fighter/constants"

// Projectile is a shot travelling horizontally; negative speed travels left
type Projectile struct {
	Box
	SpeedX  float64
	Deleted bool
}

// NewProjectile creates a projectile at x,y with the given horizontal speed
func NewProjectile(x, y, speedX float64) *Projectile {
	return &Projectile{
		Box: Box{
			X:      x,
			Y:      y,
			Width:  constants.ProjectileWidth,
			Height: constants.ProjectileHeight,
		},
		SpeedX: speedX,
	}
}

// OutOfRange reports whether the projectile left its travel range
// Forward shots stop at a fraction of the field width, rear shots at the left edge
func (p *Projectile) OutOfRange(fieldWidth float64) bool {
	if p.SpeedX >= 0 {
		return p.X > fieldWidth*constants.ProjectileRangeFraction
	}
	return p.X+p.Width < 0
}
