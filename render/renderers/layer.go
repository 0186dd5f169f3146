package renderers

import (
	"fmt"
	"time"

	"github.com/lixenwraith/tide-fighter/components"
	"github.com/lixenwraith/tide-fighter/engine"
	"github.com/lixenwraith/tide-fighter/render"
)

// LayerRenderer draws either the background or the foreground parallax strips
// Each strip is drawn twice, the copy butting onto its right edge
type LayerRenderer struct {
	foreground bool
}

// NewLayerRenderer creates a renderer for the foreground strips when foreground is set, else the background
func NewLayerRenderer(foreground bool) *LayerRenderer {
	return &LayerRenderer{foreground: foreground}
}

// Render draws the strips back to front
func (r *LayerRenderer) Render(world *engine.World, s render.Surface, dt time.Duration) error {
	layers := world.State.Background
	if r.foreground {
		layers = world.State.Foreground
	}
	for _, l := range layers {
		if err := drawLayer(s, l); err != nil {
			return err
		}
	}
	return nil
}

func drawLayer(s render.Surface, l *components.Layer) error {
	dst := l.Rect()
	if err := l.Anim.DrawFrame(s, dst, 0, 0); err != nil {
		return fmt.Errorf("layer %s: %w", l.Anim.Sheet().Name, err)
	}
	dst.X += l.Width
	if err := l.Anim.DrawFrame(s, dst, 0, 0); err != nil {
		return fmt.Errorf("layer %s: %w", l.Anim.Sheet().Name, err)
	}
	return nil
}
