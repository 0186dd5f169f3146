package engine

import "github.com/lixenwraith/tide-fighter/core"

// AudioPlayer defines the minimal audio interface used by game systems
// Play is fire-and-forget and restarts a sound that is already playing
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// silentPlayer is used when no audio device is available
type silentPlayer struct{}

func (silentPlayer) Play(core.SoundType) bool { return false }
func (silentPlayer) ToggleMute() bool         { return true }
func (silentPlayer) IsMuted() bool            { return true }

// SilentPlayer returns an AudioPlayer that plays nothing
func SilentPlayer() AudioPlayer {
	return silentPlayer{}
}
