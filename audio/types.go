package audio

import (
	"errors"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/core"
)

// AudioConfig holds the audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[core.SoundType]float64
}

// DefaultAudioConfig returns the default audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.MasterVolume,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundShot:      0.4,
			core.SoundHit:       0.5,
			core.SoundExplosion: 0.9,
			core.SoundShield:    0.7,
			core.SoundPowerUp:   0.8,
			core.SoundPowerDown: 0.8,
		},
	}
}

// ErrAudioDisabled is returned by Initialize when the configuration turns audio off
var ErrAudioDisabled = errors.New("audio disabled")
