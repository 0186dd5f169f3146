package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ReferenceFrame is the frame length that per-frame speeds are tuned for
	// Motion is scaled by dt/ReferenceFrame so slower terminals keep the same pace
	ReferenceFrame = time.Second / 60

	// MaxFrameDelta caps a single frame's elapsed time after a stall (suspend, resize storm)
	MaxFrameDelta = 250 * time.Millisecond
)

// World Dimensions (world units, independent of terminal size)
const (
	// WorldWidth is the logical width of the play field
	WorldWidth = 1500

	// WorldHeight is the logical height of the play field
	WorldHeight = 800
)

// Key Hold Windows
// Terminals report key presses and auto-repeats but no releases, so a direction
// counts as held until its window lapses without a new event
const (
	// KeyInitialHold covers the gap between a fresh press and the first auto-repeat
	KeyInitialHold = 300 * time.Millisecond

	// KeyRepeatHold is extended on every auto-repeat event
	KeyRepeatHold = 100 * time.Millisecond
)
