package systems

import "github.com/lixenwraith/tide-fighter/engine"

// All returns one instance of every match system
// Order is irrelevant; the world sorts them by priority
func All() []engine.System {
	return []engine.System{
		NewLayerSystem(),
		NewPlayerSystem(),
		NewPowerUpSystem(),
		NewProjectileSystem(),
		NewParticleSystem(),
		NewAmmoSystem(),
		NewEnemySystem(),
		NewSpawnSystem(),
		NewMatchTimerSystem(),
		NewShieldSystem(),
		NewExplosionSystem(),
	}
}

// Register adds every match system to world
func Register(world *engine.World) {
	for _, s := range All() {
		world.AddSystem(s)
	}
}
