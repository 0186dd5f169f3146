package systems

import (
	"time"

	"github.com/lixenwraith/tide-fighter/components"
	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/engine"
)

// LayerSystem scrolls the parallax layers
type LayerSystem struct{}

// NewLayerSystem creates a new layer system
func NewLayerSystem() *LayerSystem {
	return &LayerSystem{}
}

// Priority returns the system's priority
func (s *LayerSystem) Priority() int {
	return constants.PriorityLayer
}

// Update moves every layer left by its share of the game speed, wrapping after one full width
func (s *LayerSystem) Update(world *engine.World, dt time.Duration) {
	scale := world.FrameScale(dt)
	speed := world.State.GameSpeed
	scroll(world.State.Background, speed, scale)
	scroll(world.State.Foreground, speed, scale)
}

func scroll(layers []*components.Layer, speed, scale float64) {
	for _, l := range layers {
		if l.X < -l.Width {
			l.X = 0
		}
		l.X -= speed * l.SpeedModifier * scale
	}
}
