package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityPlayer
	PriorityForeground
	PriorityProjectile
	PriorityEnemy
	PriorityParticle
	PriorityShield
	PriorityExplosion
	PriorityDebug
	PriorityUI
)
