package components

import (
	"fmt"
	"time"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/sprite"
)

// Player sprite rows
const (
	PlayerRowNormal  = 0
	PlayerRowPowered = 1
)

// Player is the single controllable character
// Y stays within [0, fieldHeight-Height] after every update
type Player struct {
	Box
	SpeedY       float64       // Current vertical speed, negative is up
	MaxSpeed     float64       // Speed cap while a direction is held
	PoweredUp    bool          // PoweredUp state of the power-up machine
	PowerUpUntil time.Duration // Match time at which the power-up expires
	Anim         *sprite.Animator
}

// NewPlayer creates the player at its start position
func NewPlayer(sheets Sheets) (*Player, error) {
	sheet, err := sheets.Lookup(SheetPlayer)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	return &Player{
		Box: Box{
			X:      constants.PlayerX,
			Y:      constants.PlayerStartY,
			Width:  constants.PlayerWidth,
			Height: constants.PlayerHeight,
		},
		MaxSpeed: constants.PlayerMaxSpeed,
		Anim:     sprite.NewAnimator(sheet, constants.PlayerStagger),
	}, nil
}

// Row returns the sprite row for the current power-up state
func (p *Player) Row() int {
	if p.PoweredUp {
		return PlayerRowPowered
	}
	return PlayerRowNormal
}

// PowerUpRemaining returns the time left in the power-up, zero when not powered up
func (p *Player) PowerUpRemaining(now time.Duration) time.Duration {
	if !p.PoweredUp || now >= p.PowerUpUntil {
		return 0
	}
	return p.PowerUpUntil - now
}

// FrontMuzzle returns the spawn point of forward shots
func (p *Player) FrontMuzzle() (float64, float64) {
	return p.X + constants.MuzzleFrontX, p.Y + constants.MuzzleFrontY
}

// RearMuzzle returns the spawn point of rear shots fired while powered up
func (p *Player) RearMuzzle() (float64, float64) {
	return p.X + constants.MuzzleRearX, p.Y + constants.MuzzleRearY
}

// Clamp keeps the player inside [0, fieldHeight-Height]
func (p *Player) Clamp(fieldHeight float64) {
	if p.Y > fieldHeight-p.Height {
		p.Y = fieldHeight - p.Height
	}
	if p.Y < 0 {
		p.Y = 0
	}
}
