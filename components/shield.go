package components

import (
	"fmt"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/sprite"
)

// Shield is the player's hit flash
// It plays one animation cycle when triggered and deactivates when the cycle completes
type Shield struct {
	Box
	Active bool
	Anim   *sprite.Animator
}

// NewShield creates an inactive shield
func NewShield(sheets Sheets) (*Shield, error) {
	sheet, err := sheets.Lookup(SheetShield)
	if err != nil {
		return nil, fmt.Errorf("shield: %w", err)
	}
	anim := sprite.NewAnimator(sheet, constants.ShieldStagger)
	if err := anim.SetAnimation(0, constants.ShieldFrames); err != nil {
		return nil, fmt.Errorf("shield: %w", err)
	}
	return &Shield{Anim: anim}, nil
}

// Follow binds the shield to the player's bounds
func (s *Shield) Follow(p *Player) {
	s.Box = p.Box
}

// Trigger starts a fresh cycle
func (s *Shield) Trigger() {
	s.Active = true
	s.Anim.Reset()
}
