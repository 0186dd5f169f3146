package components

import (
	"fmt"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/sprite"
)

// ExplosionKind is the visual variant of an explosion; both behave identically
type ExplosionKind int

const (
	ExplosionSmoke ExplosionKind = iota
	ExplosionFire
)

// Sheet returns the sprite sheet name of the variant
func (k ExplosionKind) Sheet() string {
	if k == ExplosionFire {
		return SheetFire
	}
	return SheetSmoke
}

// String returns the variant name
func (k ExplosionKind) String() string {
	return k.Sheet()
}

// Explosion is a one-cycle animation centered on its spawn point
type Explosion struct {
	Box
	Kind     ExplosionKind
	Complete bool // Animation reached its last frame
	Deleted  bool
	Anim     *sprite.Animator
}

// NewExplosion creates an explosion of kind centered on x,y
func NewExplosion(kind ExplosionKind, sheets Sheets, x, y float64) (*Explosion, error) {
	sheet, err := sheets.Lookup(kind.Sheet())
	if err != nil {
		return nil, fmt.Errorf("explosion %s: %w", kind, err)
	}
	anim := sprite.NewAnimator(sheet, constants.ExplosionStagger)
	if err := anim.SetAnimation(0, constants.ExplosionFrames); err != nil {
		return nil, fmt.Errorf("explosion %s: %w", kind, err)
	}
	size := float64(constants.ExplosionSize)
	return &Explosion{
		Box:  Box{X: x - size/2, Y: y - size/2, Width: size, Height: size},
		Kind: kind,
		Anim: anim,
	}, nil
}
