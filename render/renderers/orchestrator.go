package renderers

import (
	"time"

	"github.com/lixenwraith/tide-fighter/engine"
	"github.com/lixenwraith/tide-fighter/render"
)

// Renderer draws one slice of the scene
type Renderer interface {
	Render(world *engine.World, s render.Surface, dt time.Duration) error
}

// VisibilityToggle is implemented by renderers that are drawn only in some states
type VisibilityToggle interface {
	IsVisible(world *engine.World) bool
}

type rendererEntry struct {
	renderer Renderer
	priority render.RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	surface   render.Surface
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator drawing onto s
func NewOrchestrator(s render.Surface) *Orchestrator {
	return &Orchestrator{
		surface:   s,
		renderers: make([]rendererEntry, 0, 16),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority render.RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	// Insertion sort: find position and insert
	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Len returns the number of registered renderers
func (o *Orchestrator) Len() int {
	return len(o.renderers)
}

// Render executes the pipeline: clear, draw back to front, present
// The first renderer error aborts the frame
func (o *Orchestrator) Render(world *engine.World, dt time.Duration) error {
	o.surface.Clear()

	for _, entry := range o.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(world) {
			continue
		}
		if err := entry.renderer.Render(world, o.surface, dt); err != nil {
			return err
		}
	}

	if f, ok := o.surface.(render.Flusher); ok {
		f.Show()
	}
	return nil
}

// NewScene creates an orchestrator with every scene renderer registered in draw order
func NewScene(s render.Surface) *Orchestrator {
	o := NewOrchestrator(s)
	o.Register(NewLayerRenderer(false), render.PriorityBackground)
	o.Register(NewPlayerRenderer(), render.PriorityPlayer)
	o.Register(NewLayerRenderer(true), render.PriorityForeground)
	o.Register(NewProjectileRenderer(), render.PriorityProjectile)
	o.Register(NewEnemyRenderer(), render.PriorityEnemy)
	o.Register(NewParticleRenderer(), render.PriorityParticle)
	o.Register(NewShieldRenderer(), render.PriorityShield)
	o.Register(NewExplosionRenderer(), render.PriorityExplosion)
	o.Register(NewDebugRenderer(), render.PriorityDebug)
	o.Register(NewHUDRenderer(), render.PriorityUI)
	return o
}

// Compile-time check
var _ engine.FrameRenderer = (*Orchestrator)(nil)
