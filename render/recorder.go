package render

import "github.com/gdamore/tcell/v2"

// DrawOp identifies a recorded surface call
type DrawOp int

const (
	OpClear DrawOp = iota
	OpFillRect
	OpDrawImage
	OpDrawText
)

// DrawCall is one recorded surface call
type DrawCall struct {
	Op    DrawOp
	Sheet *Sheet
	Src   Rect
	Dst   Rect
	Text  string
	Font  Font
	Color tcell.Color
}

// Recorder is a Surface that keeps every call in order, for tests
type Recorder struct {
	Calls []DrawCall
}

// Clear records a clear
func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, DrawCall{Op: OpClear})
}

// FillRect records a filled rectangle
func (r *Recorder) FillRect(rect Rect, color tcell.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpFillRect, Dst: rect, Color: color})
}

// DrawImage records a sheet blit
func (r *Recorder) DrawImage(sheet *Sheet, src, dst Rect) {
	r.Calls = append(r.Calls, DrawCall{Op: OpDrawImage, Sheet: sheet, Src: src, Dst: dst})
}

// DrawText records a text draw
func (r *Recorder) DrawText(text string, x, y float64, font Font, color tcell.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpDrawText, Text: text, Dst: Rect{X: x, Y: y}, Font: font, Color: color})
}

// Images returns the recorded blits of the named sheet
func (r *Recorder) Images(name string) []DrawCall {
	var out []DrawCall
	for _, c := range r.Calls {
		if c.Op == OpDrawImage && c.Sheet != nil && c.Sheet.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns every recorded string in draw order
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == OpDrawText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Reset drops recorded calls
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
