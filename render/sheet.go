package render

import "github.com/gdamore/tcell/v2"

// Cell is a single glyph of a sprite sheet. Rune 0 is transparent
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Transparent reports whether the cell lets the destination show through
func (c Cell) Transparent() bool {
	return c.Rune == 0
}

// Sheet is a grid of equally sized animation frames laid out in rows
// Row r, frame f occupies cells [f*FrameWidth, (f+1)*FrameWidth) x [r*FrameHeight, (r+1)*FrameHeight)
type Sheet struct {
	Name        string
	FrameWidth  int
	FrameHeight int
	Rows        int
	Columns     int

	// FramesPerRow is the frame count shared by every row, 0 when rows differ
	FramesPerRow int

	cells [][]Cell
}

// NewSheet allocates a transparent sheet of rows x columns frames
func NewSheet(name string, frameWidth, frameHeight, rows, columns, framesPerRow int) *Sheet {
	s := &Sheet{
		Name:         name,
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
		Rows:         rows,
		Columns:      columns,
		FramesPerRow: framesPerRow,
	}
	s.cells = make([][]Cell, frameHeight*rows)
	for y := range s.cells {
		s.cells[y] = make([]Cell, frameWidth*columns)
	}
	return s
}

// Width returns the sheet width in cells
func (s *Sheet) Width() int {
	return s.FrameWidth * s.Columns
}

// Height returns the sheet height in cells
func (s *Sheet) Height() int {
	return s.FrameHeight * s.Rows
}

// Set writes a cell; out-of-range writes are ignored
func (s *Sheet) Set(x, y int, c Cell) {
	if y < 0 || y >= len(s.cells) || x < 0 || x >= len(s.cells[y]) {
		return
	}
	s.cells[y][x] = c
}

// At reads a cell; out-of-range reads are transparent
func (s *Sheet) At(x, y int) Cell {
	if y < 0 || y >= len(s.cells) || x < 0 || x >= len(s.cells[y]) {
		return Cell{}
	}
	return s.cells[y][x]
}

// FrameRect returns the source rectangle of a frame in sheet cells
func (s *Sheet) FrameRect(row, frame int) Rect {
	return Rect{
		X: float64(frame * s.FrameWidth),
		Y: float64(row * s.FrameHeight),
		W: float64(s.FrameWidth),
		H: float64(s.FrameHeight),
	}
}
