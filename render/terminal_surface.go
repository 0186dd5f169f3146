package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TerminalSurface draws world-unit geometry onto a tcell screen
// The world rectangle is stretched over the whole screen; each cell covers worldW/cols x worldH/rows units
type TerminalSurface struct {
	screen     tcell.Screen
	worldW     float64
	worldH     float64
	background tcell.Style
}

// NewTerminalSurface creates a surface mapping a worldW x worldH field onto screen
func NewTerminalSurface(screen tcell.Screen, worldW, worldH float64) *TerminalSurface {
	return &TerminalSurface{
		screen:     screen,
		worldW:     worldW,
		worldH:     worldH,
		background: tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText),
	}
}

// scale returns cells per world unit on each axis
func (t *TerminalSurface) scale() (float64, float64) {
	cols, rows := t.screen.Size()
	return float64(cols) / t.worldW, float64(rows) / t.worldH
}

// cellSpan converts a world interval to a half-open cell interval, at least one cell wide
func cellSpan(pos, size, scale float64) (int, int) {
	start := int(math.Floor(pos * scale))
	end := int(math.Ceil((pos + size) * scale))
	if end <= start {
		end = start + 1
	}
	return start, end
}

// Clear fills the screen with the background style
func (t *TerminalSurface) Clear() {
	t.screen.Fill(' ', t.background)
}

// FillRect paints the cells covered by r with a solid background color
func (t *TerminalSurface) FillRect(r Rect, color tcell.Color) {
	sx, sy := t.scale()
	cols, rows := t.screen.Size()
	x0, x1 := cellSpan(r.X, r.W, sx)
	y0, y1 := cellSpan(r.Y, r.H, sy)

	style := t.background.Background(color)
	for y := max(y0, 0); y < min(y1, rows); y++ {
		for x := max(x0, 0); x < min(x1, cols); x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawImage samples src from sheet with nearest-neighbour lookup for every cell of dst
// Transparent sheet cells are skipped; cells without a background keep the existing one
func (t *TerminalSurface) DrawImage(sheet *Sheet, src, dst Rect) {
	if sheet == nil || dst.W <= 0 || dst.H <= 0 {
		return
	}
	sx, sy := t.scale()
	cols, rows := t.screen.Size()
	x0, x1 := cellSpan(dst.X, dst.W, sx)
	y0, y1 := cellSpan(dst.Y, dst.H, sy)

	for cy := max(y0, 0); cy < min(y1, rows); cy++ {
		// World-space center of the cell, normalized into dst
		v := ((float64(cy)+0.5)/sy - dst.Y) / dst.H
		srcY := int(math.Floor(src.Y + clamp01(v)*src.H))
		srcY = min(srcY, int(src.Bottom())-1)

		for cx := max(x0, 0); cx < min(x1, cols); cx++ {
			u := ((float64(cx)+0.5)/sx - dst.X) / dst.W
			srcX := int(math.Floor(src.X + clamp01(u)*src.W))
			srcX = min(srcX, int(src.Right())-1)

			cell := sheet.At(srcX, srcY)
			if cell.Transparent() {
				continue
			}
			t.screen.SetContent(cx, cy, cell.Rune, nil, t.underlay(cx, cy, cell.Style))
		}
	}
}

// DrawText writes text starting at the cell containing x,y
func (t *TerminalSurface) DrawText(text string, x, y float64, font Font, color tcell.Color) {
	sx, sy := t.scale()
	cols, rows := t.screen.Size()
	cx := int(math.Floor(x * sx))
	cy := int(math.Floor(y * sy))
	if cy < 0 || cy >= rows {
		return
	}

	width := runewidth.StringWidth(text)
	switch font.Align {
	case AlignCenter:
		cx -= width / 2
	case AlignRight:
		cx -= width
	}

	style := tcell.StyleDefault.Foreground(color)
	switch font.Size {
	case FontMedium:
		style = style.Bold(true)
	case FontLarge:
		style = style.Bold(true).Underline(true)
	}

	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if cx >= 0 && cx+w <= cols {
			t.screen.SetContent(cx, cy, r, nil, t.underlay(cx, cy, style))
		}
		cx += w
	}
}

// Show presents buffered changes
func (t *TerminalSurface) Show() {
	t.screen.Show()
}

// underlay keeps the existing cell background when style has none
func (t *TerminalSurface) underlay(x, y int, style tcell.Style) tcell.Style {
	_, bg, _ := style.Decompose()
	if bg != tcell.ColorDefault {
		return style
	}
	_, _, existing, _ := t.screen.GetContent(x, y)
	_, existingBg, _ := existing.Decompose()
	if existingBg == tcell.ColorDefault {
		existingBg = RgbBackground
	}
	return style.Background(existingBg)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(v, 0.999999))
}
