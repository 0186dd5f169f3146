// @focus: #constants { entities }
package constants

// --- Player ---
const (
	PlayerX        = 20
	PlayerStartY   = 100
	PlayerWidth    = 120
	PlayerHeight   = 190
	PlayerMaxSpeed = 3.0

	// PlayerAcceleration is added to the vertical speed each reference frame a direction is held
	PlayerAcceleration = 1.0

	// PlayerStagger is the number of ticks each player frame is held
	PlayerStagger = 6
)

// Firing points relative to the player's top-left corner
const (
	MuzzleFrontX = 80
	MuzzleFrontY = 30
	MuzzleRearX  = 0
	MuzzleRearY  = 175
)

// --- Projectile ---
const (
	ProjectileWidth  = 10
	ProjectileHeight = 3
	ProjectileSpeed  = 3.0

	// ProjectileRangeFraction is the share of the field width a forward shot travels
	ProjectileRangeFraction = 0.8
)

// --- Particle ---
const (
	ParticleSize       = 50
	ParticleSheetCells = 3
	ParticleGravity    = 0.1

	// ParticleBounceDamping is applied to vertical speed on the single bounce
	ParticleBounceDamping = -0.5

	ParticleBounceMin   = 60.0
	ParticleBounceRange = 100.0
)

// --- Explosion ---
const (
	ExplosionSize    = 200
	ExplosionFrames  = 8
	ExplosionStagger = 3
)

// --- Shield ---
const (
	ShieldFrames  = 20
	ShieldStagger = 5
)

// --- Layer ---
const (
	LayerWidth = 1768

	BackgroundCloudSpeed  = 0.2
	BackgroundCitySpeed   = 0.4
	BackgroundGroundSpeed = 1.0
	ForegroundGearSpeed   = 1.2
)

// --- Enemy ---
const (
	// EnemyStagger is the number of ticks each enemy swim frame is held
	EnemyStagger = 5
)

// --- Sprite ---
const (
	// DefaultStagger is the number of ticks each frame is held when an entity sets none
	DefaultStagger = 5
)
