// @focus: #constants { gameplay }
package constants

import "time"

// Ammo
const (
	// StartAmmo is the ammo count at match start
	StartAmmo = 20

	// MaxAmmo caps both timed and power-up regeneration
	MaxAmmo = 50

	// AmmoRegenInterval is the threshold of the ammo regeneration timer
	AmmoRegenInterval = 500 * time.Millisecond
)

// Enemy Spawning
const (
	// EnemySpawnInterval is the threshold of the enemy spawn timer
	EnemySpawnInterval = 1000 * time.Millisecond

	// EnemySpawnHeightFraction limits spawn y to this fraction of the field height
	EnemySpawnHeightFraction = 0.9

	// HiveDroneCount is the number of drones released when a hive dies
	HiveDroneCount = 3

	// HiveDroneSpread is the fraction of the hive's size used for drone offsets
	HiveDroneSpread = 0.5
)

// Match
const (
	// MatchTimeLimit is the threshold of the match timer
	MatchTimeLimit = 30000 * time.Millisecond

	// WinningScore is the score needed for a win at game over
	WinningScore = 200

	// GameSpeed is the global scroll speed in world units per reference frame
	GameSpeed = 1.0
)

// Power-Up
const (
	// PowerUpDuration is how long the powered-up state lasts
	PowerUpDuration = 10 * time.Second

	// PowerUpAmmoRegen is the fractional ammo added per reference frame while powered up
	PowerUpAmmoRegen = 0.1
)

// Effects
const (
	// ParticleBurstCount is the number of particles in each burst
	ParticleBurstCount = 5

	// ExplosionFPS is the elapsed-time animation rate of explosions
	ExplosionFPS = 15
)
