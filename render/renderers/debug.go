package renderers

import (
	"strconv"
	"time"

	"github.com/lixenwraith/tide-fighter/components"
	"github.com/lixenwraith/tide-fighter/engine"
	"github.com/lixenwraith/tide-fighter/render"
)

// debugLine is the outline thickness in world units
const debugLine = 2

// DebugRenderer outlines collision boxes and prints enemy lives
type DebugRenderer struct{}

// NewDebugRenderer creates a new debug renderer
func NewDebugRenderer() *DebugRenderer {
	return &DebugRenderer{}
}

// IsVisible returns true while the debug overlay is toggled on
func (r *DebugRenderer) IsVisible(world *engine.World) bool {
	return world.State.Debug
}

// Render outlines the player and every enemy
func (r *DebugRenderer) Render(world *engine.World, s render.Surface, dt time.Duration) error {
	outline(s, world.State.Player.Box)
	for _, e := range world.State.Enemies {
		outline(s, e.Box)
		cx, cy := e.Center()
		s.DrawText(strconv.Itoa(e.Lives), cx, cy, render.Font{Size: render.FontSmall, Align: render.AlignCenter}, render.RgbDebugLives)
	}
	return nil
}

func outline(s render.Surface, b components.Box) {
	s.FillRect(render.Rect{X: b.X, Y: b.Y, W: b.Width, H: debugLine}, render.RgbDebugBox)
	s.FillRect(render.Rect{X: b.X, Y: b.Y + b.Height - debugLine, W: b.Width, H: debugLine}, render.RgbDebugBox)
	s.FillRect(render.Rect{X: b.X, Y: b.Y, W: debugLine, H: b.Height}, render.RgbDebugBox)
	s.FillRect(render.Rect{X: b.X + b.Width - debugLine, Y: b.Y, W: debugLine, H: b.Height}, render.RgbDebugBox)
}
