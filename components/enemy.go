package components

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/sprite"
)

// EnemyKind is the variant tag of an enemy
type EnemyKind int

const (
	EnemyAngler1 EnemyKind = iota
	EnemyAngler2
	EnemyLuckyFish
	EnemyHiveWhale
	EnemyDrone
	EnemyBulbWhale
	EnemyMoonFish
	EnemyStalker
	EnemyRazorFin
	enemyKindCount
)

// EnemyEffect is the variant-specific behavior triggered by collisions
type EnemyEffect int

const (
	EffectNone      EnemyEffect = iota // No variant behavior
	EffectPowerUp                      // Touching the player grants a power-up
	EffectReleases                     // Death releases drones
	EffectPowerDrop                    // Death grants the player a power-up
)

// EnemySpec is the fixed data of one enemy variant
// Horizontal drift is -(SpeedMin + rand*SpeedRange) world units per reference frame
type EnemySpec struct {
	Name       string
	Sheet      string
	Width      float64
	Height     float64
	Lives      int
	Score      int
	Rows       int
	SpeedMin   float64
	SpeedRange float64
	OnTouch    EnemyEffect
	OnDeath    EnemyEffect
}

var enemySpecs = [enemyKindCount]EnemySpec{
	EnemyAngler1: {
		Name: "angler1", Sheet: "angler1",
		Width: 228, Height: 169, Lives: 5, Score: 5, Rows: 3,
		SpeedMin: 0.5, SpeedRange: 1.5,
	},
	EnemyAngler2: {
		Name: "angler2", Sheet: "angler2",
		Width: 213, Height: 165, Lives: 6, Score: 6, Rows: 2,
		SpeedMin: 0.5, SpeedRange: 1.5,
	},
	EnemyLuckyFish: {
		Name: "lucky", Sheet: "lucky",
		Width: 99, Height: 95, Lives: 5, Score: 15, Rows: 2,
		SpeedMin: 0.5, SpeedRange: 1.5,
		OnTouch: EffectPowerUp,
	},
	EnemyHiveWhale: {
		Name: "hivewhale", Sheet: "hivewhale",
		Width: 400, Height: 227, Lives: 20, Score: 20, Rows: 1,
		SpeedMin: 0.2, SpeedRange: 1.2,
		OnDeath: EffectReleases,
	},
	EnemyDrone: {
		Name: "drone", Sheet: "drone",
		Width: 115, Height: 95, Lives: 3, Score: 3, Rows: 2,
		SpeedMin: 0.5, SpeedRange: 4.2,
	},
	EnemyBulbWhale: {
		Name: "bulbwhale", Sheet: "bulbwhale",
		Width: 270, Height: 219, Lives: 20, Score: 20, Rows: 2,
		SpeedMin: 0.2, SpeedRange: 1.2,
	},
	EnemyMoonFish: {
		Name: "moonfish", Sheet: "moonfish",
		Width: 227, Height: 240, Lives: 10, Score: 10, Rows: 2,
		SpeedMin: 2, SpeedRange: 1.2,
		OnDeath: EffectPowerDrop,
	},
	EnemyStalker: {
		Name: "stalker", Sheet: "stalker",
		Width: 243, Height: 123, Lives: 5, Score: 5, Rows: 1,
		SpeedMin: 1, SpeedRange: 1,
	},
	EnemyRazorFin: {
		Name: "razorfin", Sheet: "razorfin",
		Width: 187, Height: 149, Lives: 7, Score: 7, Rows: 1,
		SpeedMin: 1, SpeedRange: 1,
	},
}

// Spec returns the fixed data of the variant
func (k EnemyKind) Spec() EnemySpec {
	return enemySpecs[k]
}

// String returns the variant name
func (k EnemyKind) String() string {
	if k < 0 || k >= enemyKindCount {
		return fmt.Sprintf("EnemyKind(%d)", int(k))
	}
	return enemySpecs[k].Name
}

// AllEnemyKinds returns every variant including death-spawned ones
func AllEnemyKinds() []EnemyKind {
	kinds := make([]EnemyKind, 0, enemyKindCount)
	for k := EnemyKind(0); k < enemyKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Enemy is one live enemy; Lives > 0 while not deleted
type Enemy struct {
	Box
	Kind    EnemyKind
	Lives   int
	Score   int
	SpeedX  float64 // Drift in world units per reference frame, negative is left
	Deleted bool
	Anim    *sprite.Animator
}

// NewEnemy creates an enemy of kind at x,y with a randomized drift and sprite row
func NewEnemy(kind EnemyKind, sheets Sheets, x, y float64, rng *rand.Rand) (*Enemy, error) {
	spec := kind.Spec()
	sheet, err := sheets.Lookup(spec.Sheet)
	if err != nil {
		return nil, fmt.Errorf("enemy %s: %w", kind, err)
	}

	anim := sprite.NewAnimator(sheet, constants.EnemyStagger)
	row := rng.Intn(spec.Rows)
	if err := anim.SetAnimation(row, sheet.FramesPerRow); err != nil {
		return nil, fmt.Errorf("enemy %s: %w", kind, err)
	}

	return &Enemy{
		Box:    Box{X: x, Y: y, Width: spec.Width, Height: spec.Height},
		Kind:   kind,
		Lives:  spec.Lives,
		Score:  spec.Score,
		SpeedX: -(spec.SpeedMin + rng.Float64()*spec.SpeedRange),
		Anim:   anim,
	}, nil
}

// Hit removes one life and reports whether the enemy died
// Death is reported once; hits on a dead enemy are ignored
func (e *Enemy) Hit() bool {
	if e.Deleted || e.Lives <= 0 {
		return false
	}
	e.Lives--
	if e.Lives == 0 {
		e.Deleted = true
		return true
	}
	return false
}
