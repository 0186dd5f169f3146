package sprite

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/render"
)

var (
	// ErrAnimationNotSet is returned when drawing before SetAnimation
	ErrAnimationNotSet = errors.New("animation not set")
	// ErrInvalidRow is returned for a row outside the sheet's declared rows
	ErrInvalidRow = errors.New("animation row out of range")
	// ErrFramesNotSet is returned when a whole-row draw needs frame metadata the sheet lacks
	ErrFramesNotSet = errors.New("sheet frame count not set")
)

// Animator selects frames from a shared sheet and draws them
// Two frame-selection policies are supported:
//   - stagger count: frame = floor(ticks / stagger) mod frames, one tick per draw call
//   - elapsed time: the frame advances once the accumulated time exceeds 1000/fps ms
//
// Every Animate* call reports whether this call reached the last frame of the cycle
type Animator struct {
	sheet   *render.Sheet
	stagger int

	row    int
	frames int
	set    bool

	ticks int           // Draw calls under the stagger policy
	frame int           // Current frame under the elapsed-time policy
	timer time.Duration // Time accumulated toward the next frame
	last  int           // Frame drawn by the previous call, -1 after reset
}

// NewAnimator creates an animator over sheet; stagger <= 0 uses the default
func NewAnimator(sheet *render.Sheet, stagger int) *Animator {
	if stagger <= 0 {
		stagger = constants.DefaultStagger
	}
	return &Animator{
		sheet:   sheet,
		stagger: stagger,
		last:    -1,
	}
}

// Sheet returns the sheet the animator draws from
func (a *Animator) Sheet() *render.Sheet {
	return a.sheet
}

// SetAnimation selects the active row and its frame count
// Counters are not reset; the next frame continues from the shared tick count
func (a *Animator) SetAnimation(row, frames int) error {
	if row < 0 || row >= a.sheet.Rows {
		return fmt.Errorf("%w: row %d of %d in %q", ErrInvalidRow, row, a.sheet.Rows, a.sheet.Name)
	}
	if frames <= 0 {
		return fmt.Errorf("%w: row %d in %q", ErrFramesNotSet, row, a.sheet.Name)
	}
	a.row = row
	a.frames = frames
	a.set = true
	return nil
}

// Row returns the active row
func (a *Animator) Row() int {
	return a.row
}

// Frame returns the frame drawn by the most recent call, -1 if none since the last reset
func (a *Animator) Frame() int {
	return a.last
}

// Reset restarts the cycle from frame zero
func (a *Animator) Reset() {
	a.ticks = 0
	a.frame = 0
	a.timer = 0
	a.last = -1
}

// Animate draws the active row under the stagger policy
func (a *Animator) Animate(s render.Surface, dst render.Rect) (bool, error) {
	if !a.set {
		return false, fmt.Errorf("%q: %w", a.sheet.Name, ErrAnimationNotSet)
	}
	return a.stepStagger(s, a.row, a.frames, dst), nil
}

// AnimateRow draws any row of the sheet under the stagger policy using the sheet's shared frame count
func (a *Animator) AnimateRow(s render.Surface, dst render.Rect, row int) (bool, error) {
	frames, err := a.rowFrames(row)
	if err != nil {
		return false, err
	}
	return a.stepStagger(s, row, frames, dst), nil
}

// AnimateTimed draws the active row under the elapsed-time policy
func (a *Animator) AnimateTimed(s render.Surface, dst render.Rect, dt time.Duration, fps int) (bool, error) {
	if !a.set {
		return false, fmt.Errorf("%q: %w", a.sheet.Name, ErrAnimationNotSet)
	}
	return a.stepTimed(s, a.row, a.frames, dst, dt, fps), nil
}

// AnimateRowTimed draws any row under the elapsed-time policy using the sheet's shared frame count
func (a *Animator) AnimateRowTimed(s render.Surface, dst render.Rect, row int, dt time.Duration, fps int) (bool, error) {
	frames, err := a.rowFrames(row)
	if err != nil {
		return false, err
	}
	return a.stepTimed(s, row, frames, dst, dt, fps), nil
}

// AnimateOnce is Animate followed by a reset when the cycle completes
func (a *Animator) AnimateOnce(s render.Surface, dst render.Rect) (bool, error) {
	done, err := a.Animate(s, dst)
	if done {
		a.Reset()
	}
	return done, err
}

// AnimateRowOnce is AnimateRow followed by a reset when the cycle completes
func (a *Animator) AnimateRowOnce(s render.Surface, dst render.Rect, row int) (bool, error) {
	done, err := a.AnimateRow(s, dst, row)
	if done {
		a.Reset()
	}
	return done, err
}

// DrawFrame draws a fixed frame without touching any counter
func (a *Animator) DrawFrame(s render.Surface, dst render.Rect, row, frame int) error {
	if row < 0 || row >= a.sheet.Rows {
		return fmt.Errorf("%w: row %d of %d in %q", ErrInvalidRow, row, a.sheet.Rows, a.sheet.Name)
	}
	s.DrawImage(a.sheet, a.sheet.FrameRect(row, frame), dst)
	return nil
}

func (a *Animator) rowFrames(row int) (int, error) {
	if row < 0 || row >= a.sheet.Rows {
		return 0, fmt.Errorf("%w: row %d of %d in %q", ErrInvalidRow, row, a.sheet.Rows, a.sheet.Name)
	}
	if a.sheet.FramesPerRow <= 0 {
		return 0, fmt.Errorf("%q: %w", a.sheet.Name, ErrFramesNotSet)
	}
	return a.sheet.FramesPerRow, nil
}

func (a *Animator) stepStagger(s render.Surface, row, frames int, dst render.Rect) bool {
	frame := (a.ticks / a.stagger) % frames
	a.ticks++
	return a.draw(s, row, frame, frames, dst)
}

func (a *Animator) stepTimed(s render.Surface, row, frames int, dst render.Rect, dt time.Duration, fps int) bool {
	if fps <= 0 {
		fps = 1
	}
	interval := time.Second / time.Duration(fps)
	if a.timer > interval {
		a.frame = (a.frame + 1) % frames
		a.timer = 0
	} else {
		a.timer += dt
	}
	// A row switch may leave the frame past the new row's end
	a.frame %= frames
	return a.draw(s, row, a.frame, frames, dst)
}

// draw renders the frame and reports whether the last frame was reached on this call
func (a *Animator) draw(s render.Surface, row, frame, frames int, dst render.Rect) bool {
	s.DrawImage(a.sheet, a.sheet.FrameRect(row, frame), dst)
	complete := frame == frames-1 && (frames == 1 || a.last != frame)
	a.last = frame
	return complete
}
