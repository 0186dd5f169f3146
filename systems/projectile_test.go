package systems

import (
	"testing"

	"github.com/lixenwraith/tide-fighter/components"
	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/core"
	"github.com/lixenwraith/tide-fighter/engine"
)

func spawnAt(t *testing.T, w *engine.World, kind components.EnemyKind, x, y float64) *components.Enemy {
	t.Helper()
	e, err := w.SpawnEnemy(kind, x, y)
	if err != nil {
		t.Fatalf("SpawnEnemy failed: %v", err)
	}
	return e
}

func TestProjectileMovesAndLeavesRange(t *testing.T) {
	w, _ := engine.NewTestWorld(1)
	s := NewProjectileSystem()
	limit := w.State.Width * constants.ProjectileRangeFraction

	fwd := components.NewProjectile(limit-1, 10, constants.ProjectileSpeed)
	rear := components.NewProjectile(-constants.ProjectileWidth+1, 10, -constants.ProjectileSpeed)
	kept := components.NewProjectile(100, 10, constants.ProjectileSpeed)
	w.State.Projectiles = append(w.State.Projectiles, fwd, rear, kept)

	s.Update(w, constants.ReferenceFrame)

	if len(w.State.Projectiles) != 1 || w.State.Projectiles[0] != kept {
		t.Fatalf("Expected only the in-range projectile, got %d", len(w.State.Projectiles))
	}
	if kept.X != 100+constants.ProjectileSpeed {
		t.Errorf("Expected X %v, got %v", 100+constants.ProjectileSpeed, kept.X)
	}
}

func TestProjectileHitScoresAndStops(t *testing.T) {
	w, audio := engine.NewTestWorld(1)
	s := NewProjectileSystem()
	e := spawnAt(t, w, components.EnemyAngler1, 600, 300)
	w.State.Projectiles = append(w.State.Projectiles, components.NewProjectile(610, 310, constants.ProjectileSpeed))

	s.Update(w, 0)

	if len(w.State.Projectiles) != 0 {
		t.Errorf("Expected projectile removed on hit, got %d", len(w.State.Projectiles))
	}
	if e.Lives != e.Kind.Spec().Lives-1 {
		t.Errorf("Expected %d lives, got %d", e.Kind.Spec().Lives-1, e.Lives)
	}
	if w.State.Score != e.Score {
		t.Errorf("Expected score %d, got %d", e.Score, w.State.Score)
	}
	if w.State.Hits != 1 || w.State.Kills != 0 {
		t.Errorf("Expected 1 hit and 0 kills, got %d and %d", w.State.Hits, w.State.Kills)
	}
	if audio.Count(core.SoundHit) != 1 {
		t.Errorf("Expected 1 hit sound, got %d", audio.Count(core.SoundHit))
	}
}

// N landed hits kill an N-life enemy and score N times its value
func TestProjectileHitsUntilDeath(t *testing.T) {
	w, _ := engine.NewTestWorld(1)
	s := NewProjectileSystem()
	e := spawnAt(t, w, components.EnemyStalker, 600, 300)
	lives := e.Lives

	for i := 0; i < lives; i++ {
		w.State.Projectiles = append(w.State.Projectiles, components.NewProjectile(610, 310, constants.ProjectileSpeed))
		s.Update(w, 0)
	}

	if !e.Deleted {
		t.Fatal("Expected enemy deleted after its last life")
	}
	if w.State.Score != lives*e.Score {
		t.Errorf("Expected score %d, got %d", lives*e.Score, w.State.Score)
	}
	if w.State.Kills != 1 {
		t.Errorf("Expected 1 kill, got %d", w.State.Kills)
	}
	if len(w.State.Explosions) != 1 {
		t.Errorf("Expected 1 explosion, got %d", len(w.State.Explosions))
	}
	if len(w.State.Particles) != constants.ParticleBurstCount {
		t.Errorf("Expected %d particles, got %d", constants.ParticleBurstCount, len(w.State.Particles))
	}
}

func TestProjectileScoresOnlyKillsWhenConfigured(t *testing.T) {
	w, _ := engine.NewTestWorld(1)
	w.State.ScoreEveryHit = false
	s := NewProjectileSystem()
	e := spawnAt(t, w, components.EnemyAngler1, 600, 300)
	e.Lives = 2

	w.State.Projectiles = append(w.State.Projectiles, components.NewProjectile(610, 310, constants.ProjectileSpeed))
	s.Update(w, 0)
	if w.State.Score != 0 {
		t.Errorf("Expected no score for a non-lethal hit, got %d", w.State.Score)
	}

	w.State.Projectiles = append(w.State.Projectiles, components.NewProjectile(610, 310, constants.ProjectileSpeed))
	s.Update(w, 0)
	if w.State.Score != e.Score {
		t.Errorf("Expected score %d after the kill, got %d", e.Score, w.State.Score)
	}
}

// A projectile damages only the first overlapping enemy in collection order
func TestProjectileDamagesOneEnemy(t *testing.T) {
	w, _ := engine.NewTestWorld(1)
	s := NewProjectileSystem()
	first := spawnAt(t, w, components.EnemyAngler1, 600, 300)
	second := spawnAt(t, w, components.EnemyAngler1, 600, 300)
	w.State.Projectiles = append(w.State.Projectiles, components.NewProjectile(610, 310, constants.ProjectileSpeed))

	s.Update(w, 0)

	if first.Lives != first.Kind.Spec().Lives-1 {
		t.Errorf("Expected first enemy hit, got %d lives", first.Lives)
	}
	if second.Lives != second.Kind.Spec().Lives {
		t.Errorf("Expected second enemy untouched, got %d lives", second.Lives)
	}
}

// A dead enemy absorbs no further projectiles in the same tick
func TestProjectileSkipsDeadEnemy(t *testing.T) {
	w, _ := engine.NewTestWorld(1)
	s := NewProjectileSystem()
	e := spawnAt(t, w, components.EnemyAngler1, 600, 300)
	e.Lives = 1

	a := components.NewProjectile(610, 310, constants.ProjectileSpeed)
	b := components.NewProjectile(620, 320, constants.ProjectileSpeed)
	w.State.Projectiles = append(w.State.Projectiles, a, b)

	s.Update(w, 0)

	if !a.Deleted {
		t.Error("Expected first projectile spent")
	}
	if b.Deleted {
		t.Error("Expected second projectile to pass the dead enemy")
	}
	if w.State.Kills != 1 {
		t.Errorf("Expected 1 kill, got %d", w.State.Kills)
	}
}

func TestHiveDeathReleasesDrones(t *testing.T) {
	w, _ := engine.NewTestWorld(7)
	s := NewProjectileSystem()
	hive := spawnAt(t, w, components.EnemyHiveWhale, 500, 200)
	hive.Lives = 1
	w.State.Projectiles = append(w.State.Projectiles, components.NewProjectile(510, 210, constants.ProjectileSpeed))

	s.Update(w, 0)

	drones := 0
	for _, e := range w.State.Enemies {
		if e.Kind != components.EnemyDrone {
			continue
		}
		drones++
		if !hive.Contains(e.X, e.Y) {
			t.Errorf("Expected drone inside the hive bounds, got %v,%v", e.X, e.Y)
		}
	}
	if drones != constants.HiveDroneCount {
		t.Errorf("Expected %d drones, got %d", constants.HiveDroneCount, drones)
	}
	if len(w.State.Explosions) != 1 {
		t.Errorf("Expected 1 explosion, got %d", len(w.State.Explosions))
	}
	if len(w.State.Particles) != constants.ParticleBurstCount {
		t.Errorf("Expected %d particles, got %d", constants.ParticleBurstCount, len(w.State.Particles))
	}
}

func TestMoonDeathPowersUp(t *testing.T) {
	w, audio := engine.NewTestWorld(1)
	s := NewProjectileSystem()
	moon := spawnAt(t, w, components.EnemyMoonFish, 600, 300)
	moon.Lives = 1
	w.State.Projectiles = append(w.State.Projectiles, components.NewProjectile(610, 310, constants.ProjectileSpeed))

	s.Update(w, 0)

	if !w.State.Player.PoweredUp {
		t.Error("Expected power-up after moon fish death")
	}
	if audio.Count(core.SoundPowerUp) != 1 {
		t.Errorf("Expected 1 power-up sound, got %d", audio.Count(core.SoundPowerUp))
	}
}

// The burst leaves from the enemy's center; the explosion is centered on its top-left corner
func TestDeathEffectPlacement(t *testing.T) {
	w, _ := engine.NewTestWorld(1)
	s := NewProjectileSystem()
	e := spawnAt(t, w, components.EnemyRazorFin, 600, 300)
	e.Lives = 1
	w.State.Projectiles = append(w.State.Projectiles, components.NewProjectile(610, 310, constants.ProjectileSpeed))

	s.Update(w, 0)

	cx, cy := w.State.Explosions[0].Center()
	if cx != e.X || cy != e.Y {
		t.Errorf("Expected explosion centered at %v,%v, got %v,%v", e.X, e.Y, cx, cy)
	}

	ex, ey := e.Center()
	for i, p := range w.State.Particles {
		if px, py := p.Center(); px != ex || py != ey {
			t.Errorf("Particle %d: expected origin %v,%v, got %v,%v", i, ex, ey, px, py)
		}
	}
}
