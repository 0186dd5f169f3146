package components

import "github.com/lixenwraith/tide-fighter/render"

// Box is the position and size of an entity in world units
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Rect returns the box as a render rectangle
func (b Box) Rect() render.Rect {
	return render.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Center returns the midpoint of the box
func (b Box) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Contains reports whether the point lies inside the box, edges inclusive
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}
