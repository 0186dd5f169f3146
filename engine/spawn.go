package engine

import (
	"github.com/lixenwraith/tide-fighter/components"
	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/core"
)

// PickEnemyKind maps one uniform [0,1) draw onto the weighted spawn table
// Bands: 20% angler, 10% moon fish, 10% stalker, 10% razorfin, 20% lucky fish,
// 10% hive whale, 10% bulb whale, 10% second angler
func PickEnemyKind(roll float64) components.EnemyKind {
	switch {
	case roll < 0.2:
		return components.EnemyAngler1
	case roll < 0.3:
		return components.EnemyMoonFish
	case roll < 0.4:
		return components.EnemyStalker
	case roll < 0.5:
		return components.EnemyRazorFin
	case roll < 0.7:
		return components.EnemyLuckyFish
	case roll < 0.8:
		return components.EnemyHiveWhale
	case roll < 0.9:
		return components.EnemyBulbWhale
	default:
		return components.EnemyAngler2
	}
}

// SpawnEnemy adds an enemy of kind at x,y
func (w *World) SpawnEnemy(kind components.EnemyKind, x, y float64) (*components.Enemy, error) {
	e, err := components.NewEnemy(kind, w.State.Sheets, x, y, w.Rand)
	if err != nil {
		return nil, err
	}
	w.State.Enemies = append(w.State.Enemies, e)
	return e, nil
}

// SpawnWeightedEnemy adds one enemy of a weighted-random kind at the right edge
func (w *World) SpawnWeightedEnemy() (*components.Enemy, error) {
	kind := PickEnemyKind(w.Rand.Float64())
	spec := kind.Spec()
	y := w.Rand.Float64() * (w.State.Height*constants.EnemySpawnHeightFraction - spec.Height)
	e, err := w.SpawnEnemy(kind, w.State.Width, y)
	if err != nil {
		return nil, err
	}
	w.Log.Debug().Stringer("kind", kind).Float64("y", y).Msg("enemy spawned")
	return e, nil
}

// ReleaseDrones spawns the hive's drones at random offsets inside its bounds
func (w *World) ReleaseDrones(hive *components.Enemy) error {
	for i := 0; i < constants.HiveDroneCount; i++ {
		x := hive.X + w.Rand.Float64()*hive.Width*constants.HiveDroneSpread
		y := hive.Y + w.Rand.Float64()*hive.Height*constants.HiveDroneSpread
		if _, err := w.SpawnEnemy(components.EnemyDrone, x, y); err != nil {
			return err
		}
	}
	return nil
}

// SpawnBurst throws a fixed number of particles from x,y
func (w *World) SpawnBurst(x, y float64) error {
	for i := 0; i < constants.ParticleBurstCount; i++ {
		p, err := components.NewParticle(w.State.Sheets, x, y, w.Rand)
		if err != nil {
			return err
		}
		w.State.Particles = append(w.State.Particles, p)
	}
	return nil
}

// SpawnExplosion adds a smoke or fire explosion centered on x,y with equal odds
func (w *World) SpawnExplosion(x, y float64) error {
	kind := components.ExplosionSmoke
	if w.Rand.Float64() >= 0.5 {
		kind = components.ExplosionFire
	}
	e, err := components.NewExplosion(kind, w.State.Sheets, x, y)
	if err != nil {
		return err
	}
	w.State.Explosions = append(w.State.Explosions, e)
	w.Play(core.SoundExplosion)
	return nil
}

// ActivatePowerUp enters the powered-up state and schedules its expiry
// Activation while already powered up is a no-op and does not extend the duration
func (w *World) ActivatePowerUp() {
	p := w.State.Player
	if p.PoweredUp {
		return
	}
	p.PoweredUp = true
	p.PowerUpUntil = w.now + w.State.PowerUpDuration
	w.Schedule(EventPowerUpExpire, w.State.PowerUpDuration, nil)
	w.Play(core.SoundPowerUp)
	w.Log.Debug().Dur("duration", w.State.PowerUpDuration).Msg("power-up started")
}
