package render

import "github.com/gdamore/tcell/v2"

// Rect is an axis-aligned rectangle; units depend on the consumer
// (world units for destinations, sheet cells for sprite sources)
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// FontSize selects text emphasis; terminals have no point sizes so sizes map to attributes
type FontSize int

const (
	FontSmall FontSize = iota
	FontMedium
	FontLarge
)

// Align is the horizontal anchor of drawn text relative to x
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font describes how text is drawn
type Font struct {
	Size  FontSize
	Align Align
}

// Surface is the drawing capability the game needs from a platform
type Surface interface {
	// Clear wipes the surface to its background
	Clear()
	// FillRect paints a solid rectangle in world units
	FillRect(r Rect, color tcell.Color)
	// DrawImage copies the src region of a sheet (sheet cells) onto dst (world units)
	DrawImage(sheet *Sheet, src, dst Rect)
	// DrawText writes text anchored at x,y in world units
	DrawText(text string, x, y float64, font Font, color tcell.Color)
}

// Flusher is implemented by surfaces that buffer output until presented
type Flusher interface {
	Show()
}
