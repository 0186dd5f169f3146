package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/core"
	"github.com/lixenwraith/tide-fighter/engine"
)

// SoundManager plays the game's sound effects through the speaker
// Without an initialized speaker every call is a silent no-op
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	playing     [core.SoundTypeCount]*beep.Ctrl // Latest instance of each effect
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager; a nil config uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker
// Returns ErrAudioDisabled when the configuration turns audio off
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.playing = [core.SoundTypeCount]*beep.Ctrl{}
	sm.initialized = false
}

// Play starts a sound effect, cutting off the previous instance of the same effect
// Reports whether anything was started
func (sm *SoundManager) Play(sound core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || sound < 0 || sound >= core.SoundTypeCount {
		return false
	}
	streamer := GetSoundEffect(sound, sm.cfg)
	if streamer == nil {
		return false
	}

	ctrl := &beep.Ctrl{Streamer: streamer}
	speaker.Lock()
	if prev := sm.playing[sound]; prev != nil {
		prev.Paused = true
		prev.Streamer = nil
	}
	sm.mixer.Add(ctrl)
	speaker.Unlock()

	sm.playing[sound] = ctrl
	return true
}

// ToggleMute flips muting and returns the new state; muting silences sounds already playing
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
		sm.playing = [core.SoundTypeCount]*beep.Ctrl{}
	}
	return sm.muted
}

// IsMuted reports whether sound is muted
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Duration returns the length of a sound effect, zero for unknown types
func Duration(sound core.SoundType, cfg *AudioConfig) time.Duration {
	s := GetSoundEffect(sound, cfg)
	if s == nil {
		return 0
	}
	rate := beep.SampleRate(cfg.SampleRate)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return rate.D(total)
}

// Compile-time check
var _ engine.AudioPlayer = (*SoundManager)(nil)
