package components

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/render"
)

// fullSheets returns a minimal sheet for every required name
func fullSheets() Sheets {
	sheets := make(Sheets)
	for _, name := range RequiredSheets() {
		sheets[name] = render.NewSheet(name, 2, 2, 3, 4, 4)
	}
	return sheets
}

func TestSheetsRequire(t *testing.T) {
	sheets := fullSheets()
	if err := sheets.Require(); err != nil {
		t.Fatalf("Expected complete sheet set to pass, got %v", err)
	}

	delete(sheets, SheetPlayer)
	delete(sheets, EnemyDrone.Spec().Sheet)
	err := sheets.Require()
	if !errors.Is(err, ErrMissingSheet) {
		t.Fatalf("Expected ErrMissingSheet, got %v", err)
	}
}

func TestConstructorsFailOnMissingSheet(t *testing.T) {
	empty := Sheets{}
	rng := rand.New(rand.NewSource(1))

	if _, err := NewPlayer(empty); !errors.Is(err, ErrMissingSheet) {
		t.Errorf("NewPlayer: expected ErrMissingSheet, got %v", err)
	}
	if _, err := NewEnemy(EnemyAngler1, empty, 0, 0, rng); !errors.Is(err, ErrMissingSheet) {
		t.Errorf("NewEnemy: expected ErrMissingSheet, got %v", err)
	}
	if _, err := NewParticle(empty, 0, 0, rng); !errors.Is(err, ErrMissingSheet) {
		t.Errorf("NewParticle: expected ErrMissingSheet, got %v", err)
	}
	if _, err := NewExplosion(ExplosionFire, empty, 0, 0); !errors.Is(err, ErrMissingSheet) {
		t.Errorf("NewExplosion: expected ErrMissingSheet, got %v", err)
	}
	if _, err := NewShield(empty); !errors.Is(err, ErrMissingSheet) {
		t.Errorf("NewShield: expected ErrMissingSheet, got %v", err)
	}
	if _, err := NewBackgroundLayers(empty, 800); !errors.Is(err, ErrMissingSheet) {
		t.Errorf("NewBackgroundLayers: expected ErrMissingSheet, got %v", err)
	}
}

func TestEnemySpecTable(t *testing.T) {
	tests := []struct {
		kind          EnemyKind
		width, height float64
		lives, score  int
	}{
		{EnemyAngler1, 228, 169, 5, 5},
		{EnemyAngler2, 213, 165, 6, 6},
		{EnemyLuckyFish, 99, 95, 5, 15},
		{EnemyHiveWhale, 400, 227, 20, 20},
		{EnemyDrone, 115, 95, 3, 3},
		{EnemyBulbWhale, 270, 219, 20, 20},
		{EnemyMoonFish, 227, 240, 10, 10},
		{EnemyStalker, 243, 123, 5, 5},
		{EnemyRazorFin, 187, 149, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			spec := tt.kind.Spec()
			if spec.Width != tt.width || spec.Height != tt.height {
				t.Errorf("Expected size %vx%v, got %vx%v", tt.width, tt.height, spec.Width, spec.Height)
			}
			if spec.Lives != tt.lives {
				t.Errorf("Expected %d lives, got %d", tt.lives, spec.Lives)
			}
			if spec.Score != tt.score {
				t.Errorf("Expected score %d, got %d", tt.score, spec.Score)
			}
		})
	}

	if got := len(AllEnemyKinds()); got != 9 {
		t.Errorf("Expected 9 enemy kinds, got %d", got)
	}
}

func TestEnemyEffects(t *testing.T) {
	if EnemyLuckyFish.Spec().OnTouch != EffectPowerUp {
		t.Errorf("Expected lucky fish to grant a power-up on touch")
	}
	if EnemyHiveWhale.Spec().OnDeath != EffectReleases {
		t.Errorf("Expected hive whale to release drones on death")
	}
	if EnemyMoonFish.Spec().OnDeath != EffectPowerDrop {
		t.Errorf("Expected moon fish to grant a power-up on death")
	}
	if EnemyAngler1.Spec().OnTouch != EffectNone || EnemyAngler1.Spec().OnDeath != EffectNone {
		t.Errorf("Expected angler to have no effects")
	}
}

// Drift is negative and inside the variant's range
func TestNewEnemyDrift(t *testing.T) {
	sheets := fullSheets()
	rng := rand.New(rand.NewSource(42))

	for _, kind := range AllEnemyKinds() {
		spec := kind.Spec()
		for i := 0; i < 50; i++ {
			e, err := NewEnemy(kind, sheets, 100, 100, rng)
			if err != nil {
				t.Fatalf("NewEnemy(%s) failed: %v", kind, err)
			}
			if e.SpeedX > -spec.SpeedMin || e.SpeedX < -(spec.SpeedMin+spec.SpeedRange) {
				t.Errorf("%s: drift %v outside [-%v, -%v]", kind, e.SpeedX, spec.SpeedMin+spec.SpeedRange, spec.SpeedMin)
			}
			if row := e.Anim.Row(); row < 0 || row >= spec.Rows {
				t.Errorf("%s: sprite row %d outside %d rows", kind, row, spec.Rows)
			}
		}
	}
}

func TestEnemyHit(t *testing.T) {
	e, err := NewEnemy(EnemyDrone, fullSheets(), 0, 0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}

	deaths := 0
	for i := 0; i < 5; i++ {
		if e.Hit() {
			deaths++
		}
	}
	if deaths != 1 {
		t.Errorf("Expected death to be reported once, got %d", deaths)
	}
	if e.Lives != 0 || !e.Deleted {
		t.Errorf("Expected dead enemy with 0 lives, got lives=%d deleted=%v", e.Lives, e.Deleted)
	}
}

func TestPlayerClamp(t *testing.T) {
	p, err := NewPlayer(fullSheets())
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}

	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"Above top", -50, 0},
		{"Inside", 300, 300},
		{"Below bottom", 900, 800 - constants.PlayerHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.Y = tt.y
			p.Clamp(800)
			if p.Y != tt.want {
				t.Errorf("Expected y %v, got %v", tt.want, p.Y)
			}
		})
	}
}

func TestPlayerPowerUpRemaining(t *testing.T) {
	p := &Player{}
	if got := p.PowerUpRemaining(time.Second); got != 0 {
		t.Errorf("Expected 0 remaining when not powered up, got %v", got)
	}

	p.PoweredUp = true
	p.PowerUpUntil = 10 * time.Second
	if got := p.PowerUpRemaining(4 * time.Second); got != 6*time.Second {
		t.Errorf("Expected 6s remaining, got %v", got)
	}
	if got := p.PowerUpRemaining(11 * time.Second); got != 0 {
		t.Errorf("Expected 0 remaining after expiry, got %v", got)
	}
	if p.Row() != PlayerRowPowered {
		t.Errorf("Expected powered sprite row")
	}
}

func TestPlayerMuzzles(t *testing.T) {
	p := &Player{Box: Box{X: 20, Y: 100}}
	if x, y := p.FrontMuzzle(); x != 100 || y != 130 {
		t.Errorf("Expected front muzzle (100,130), got (%v,%v)", x, y)
	}
	if x, y := p.RearMuzzle(); x != 20 || y != 275 {
		t.Errorf("Expected rear muzzle (20,275), got (%v,%v)", x, y)
	}
}

func TestProjectileOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		speed float64
		want  bool
	}{
		{"Forward inside", 1100, 3, false},
		{"Forward past range", 1201, 3, true},
		{"Rear inside", 5, -3, false},
		{"Rear past left edge", -11, -3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(tt.x, 0, tt.speed)
			if got := p.OutOfRange(1500); got != tt.want {
				t.Errorf("Expected out of range %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNewParticleRanges(t *testing.T) {
	sheets := fullSheets()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		p, err := NewParticle(sheets, 500, 400, rng)
		if err != nil {
			t.Fatalf("NewParticle failed: %v", err)
		}
		if p.SpeedX < -3 || p.SpeedX >= 3 {
			t.Errorf("SpeedX %v outside [-3,3)", p.SpeedX)
		}
		if p.SpeedY < -5 || p.SpeedY >= -2 {
			t.Errorf("SpeedY %v outside [-5,-2)", p.SpeedY)
		}
		if p.BounceHeight < 60 || p.BounceHeight >= 160 {
			t.Errorf("BounceHeight %v outside [60,160)", p.BounceHeight)
		}
		if p.FrameX < 0 || p.FrameX > 2 || p.FrameY < 0 || p.FrameY > 2 {
			t.Errorf("Frame (%d,%d) outside the 3x3 sheet", p.FrameX, p.FrameY)
		}
		if cx, cy := p.Center(); cx != 500 || cy != 400 {
			t.Errorf("Expected particle centered on (500,400), got (%v,%v)", cx, cy)
		}
	}
}

func TestNewExplosionCentered(t *testing.T) {
	e, err := NewExplosion(ExplosionSmoke, fullSheets(), 300, 200)
	if err != nil {
		t.Fatalf("NewExplosion failed: %v", err)
	}
	if e.X != 200 || e.Y != 100 {
		t.Errorf("Expected explosion at (200,100), got (%v,%v)", e.X, e.Y)
	}
	if ExplosionFire.Sheet() != SheetFire || ExplosionSmoke.Sheet() != SheetSmoke {
		t.Errorf("Expected explosion kinds to map to their sheets")
	}
}

func TestShieldFollowAndTrigger(t *testing.T) {
	s, err := NewShield(fullSheets())
	if err != nil {
		t.Fatalf("NewShield failed: %v", err)
	}
	p := &Player{Box: Box{X: 20, Y: 333, Width: 120, Height: 190}}

	s.Follow(p)
	if s.Box != p.Box {
		t.Errorf("Expected shield bounds %v, got %v", p.Box, s.Box)
	}
	s.Trigger()
	if !s.Active {
		t.Errorf("Expected shield active after trigger")
	}
}

func TestLayerSets(t *testing.T) {
	sheets := fullSheets()
	bg, err := NewBackgroundLayers(sheets, 800)
	if err != nil {
		t.Fatalf("NewBackgroundLayers failed: %v", err)
	}
	fg, err := NewForegroundLayers(sheets, 800)
	if err != nil {
		t.Fatalf("NewForegroundLayers failed: %v", err)
	}
	if len(bg) != 3 || len(fg) != 1 {
		t.Fatalf("Expected 3 background and 1 foreground layers, got %d and %d", len(bg), len(fg))
	}
	want := []float64{0.2, 0.4, 1.0}
	for i, l := range bg {
		if l.SpeedModifier != want[i] {
			t.Errorf("Layer %d: expected speed %v, got %v", i, want[i], l.SpeedModifier)
		}
		if l.Width != constants.LayerWidth || l.Height != 800 {
			t.Errorf("Layer %d: unexpected size %vx%v", i, l.Width, l.Height)
		}
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{X: 10, Y: 20, Width: 30, Height: 40}
	if !b.Contains(10, 20) || !b.Contains(40, 60) {
		t.Errorf("Expected edges to be contained")
	}
	if b.Contains(9, 20) || b.Contains(41, 30) {
		t.Errorf("Expected outside points to be excluded")
	}
}
