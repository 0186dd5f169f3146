package constants

// System Execution Priorities (lower runs first)
// Order follows the per-tick update sequence of the match
const (
	PriorityLayer      = 10
	PriorityPlayer     = 20
	PriorityPowerUp    = 25
	PriorityProjectile = 30
	PriorityParticle   = 40
	PriorityAmmo       = 50
	PriorityEnemy      = 60
	PrioritySpawn      = 70
	PriorityMatchTimer = 80
	PriorityShield     = 90
	PriorityExplosion  = 100
)
