package engine

import (
	"math/rand"

	"github.com/lixenwraith/tide-fighter/components"
	"github.com/lixenwraith/tide-fighter/config"
	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/core"
	"github.com/lixenwraith/tide-fighter/render"
	"github.com/rs/zerolog"
)

// TestSheets returns a blank sheet for every required name
// Explosion and shield sheets get their full frame counts so cycles complete as in a real match
func TestSheets() components.Sheets {
	sheets := make(components.Sheets)
	for _, name := range components.RequiredSheets() {
		sheets[name] = render.NewSheet(name, 2, 2, 3, 4, 4)
	}
	sheets[components.SheetSmoke] = render.NewSheet(components.SheetSmoke, 2, 2, 1, constants.ExplosionFrames, constants.ExplosionFrames)
	sheets[components.SheetFire] = render.NewSheet(components.SheetFire, 2, 2, 1, constants.ExplosionFrames, constants.ExplosionFrames)
	sheets[components.SheetShield] = render.NewSheet(components.SheetShield, 2, 2, 1, constants.ShieldFrames, constants.ShieldFrames)
	return sheets
}

// RecordingPlayer is an AudioPlayer that counts plays, for tests
type RecordingPlayer struct {
	Played []core.SoundType
	muted  bool
}

// Play records the sound
func (r *RecordingPlayer) Play(s core.SoundType) bool {
	r.Played = append(r.Played, s)
	return !r.muted
}

// ToggleMute flips the mute flag
func (r *RecordingPlayer) ToggleMute() bool {
	r.muted = !r.muted
	return r.muted
}

// IsMuted reports the mute flag
func (r *RecordingPlayer) IsMuted() bool {
	return r.muted
}

// Count returns how many times s was played
func (r *RecordingPlayer) Count(s core.SoundType) int {
	n := 0
	for _, p := range r.Played {
		if p == s {
			n++
		}
	}
	return n
}

// NewTestWorld creates a world over the default match with blank sheets and a seeded random source
// Panics on construction failure, which only a broken default configuration can cause
func NewTestWorld(seed int64) (*World, *RecordingPlayer) {
	state, err := NewGameState(config.Default(), TestSheets(), constants.WorldWidth, constants.WorldHeight)
	if err != nil {
		panic(err)
	}
	audio := &RecordingPlayer{}
	return NewWorld(state, rand.New(rand.NewSource(seed)), audio, zerolog.Nop()), audio
}
