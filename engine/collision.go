package engine

import "github.com/lixenwraith/tide-fighter/components"

// Overlaps is the axis-aligned bounding-box test shared by every collision rule
// Touching edges do not overlap
func Overlaps(a, b components.Box) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}
