package systems

import (
	"fmt"
	"time"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/engine"
)

// SpawnSystem adds one weighted-random enemy at the right edge every spawn interval
type SpawnSystem struct{}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update advances the spawn timer
func (s *SpawnSystem) Update(world *engine.World, dt time.Duration) {
	state := world.State
	engine.Accumulate(&state.EnemyTimer, dt, state.EnemyInterval, func() {
		if _, err := world.SpawnWeightedEnemy(); err != nil {
			world.Fail(fmt.Errorf("spawn enemy: %w", err))
		}
	})
}
