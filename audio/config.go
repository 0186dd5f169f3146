package audio

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lixenwraith/tide-fighter/core"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "TIDE_FIGHTER_AUDIO_ENABLED"
	EnvMasterVolume = "TIDE_FIGHTER_MASTER_VOLUME"
	EnvSFXVolumes   = "TIDE_FIGHTER_SFX_VOLUMES"
	EnvSampleRate   = "TIDE_FIGHTER_SAMPLE_RATE"
)

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values are skipped and reported together; the returned config is always usable
func LoadAudioConfig() (*AudioConfig, error) {
	cfg := DefaultAudioConfig()
	var bad []string

	// Check if audio is enabled
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		} else {
			bad = append(bad, EnvAudioEnabled)
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		} else {
			bad = append(bad, EnvMasterVolume)
		}
	}

	// Load effect volumes from a YAML (or JSON) map keyed by sound name
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := yaml.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if s, ok := core.ParseSoundType(name); ok {
					cfg.EffectVolumes[s] = clampVolume(v)
				}
			}
		} else {
			bad = append(bad, EnvSFXVolumes)
		}
	}

	// Load sample rate
	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		} else {
			bad = append(bad, EnvSampleRate)
		}
	}

	if len(bad) > 0 {
		return cfg, fmt.Errorf("ignored malformed audio settings: %v", bad)
	}
	return cfg, nil
}

func clampVolume(v float64) float64 {
	return max(0, min(v, 1))
}
