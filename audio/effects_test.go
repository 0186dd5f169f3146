package audio

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/core"
)

func TestEverySoundHasAnEffect(t *testing.T) {
	cfg := DefaultAudioConfig()
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		if GetSoundEffect(s, cfg) == nil {
			t.Errorf("Expected an effect for %s", s)
			continue
		}
		d := Duration(s, cfg)
		if d <= 0 || d > time.Second {
			t.Errorf("%s: expected a short effect, got %v", s, d)
		}
	}
	if GetSoundEffect(core.SoundTypeCount, cfg) != nil {
		t.Error("Expected nil for an unknown sound")
	}
}

func TestEffectDurations(t *testing.T) {
	cfg := DefaultAudioConfig()

	if d := Duration(core.SoundShot, cfg); d != constants.ShotSoundDuration {
		t.Errorf("Expected shot %v, got %v", constants.ShotSoundDuration, d)
	}
	want := 3 * constants.PowerSoundNoteDuration
	if d := Duration(core.SoundPowerUp, cfg); d != want {
		t.Errorf("Expected power-up %v, got %v", want, d)
	}
	if d := Duration(core.SoundPowerDown, cfg); d != want {
		t.Errorf("Expected power-down %v, got %v", want, d)
	}
}

func TestEffectAmplitudeBounded(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 1
	buf := make([][2]float64, 512)

	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		st := GetSoundEffect(s, cfg)
		peak := 0.0
		for {
			n, ok := st.Stream(buf)
			for _, smp := range buf[:n] {
				peak = math.Max(peak, math.Abs(smp[0]))
			}
			if !ok || n == 0 {
				break
			}
		}
		if peak == 0 || peak > 1.5 {
			t.Errorf("%s: expected audible bounded peak, got %v", s, peak)
		}
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.EffectVolumes[core.SoundShot] = 0
	buf := make([][2]float64, 256)

	n, _ := GetSoundEffect(core.SoundShot, cfg).Stream(buf)
	for _, smp := range buf[:n] {
		if smp[0] != 0 || smp[1] != 0 {
			t.Fatalf("Expected silence, got %v", smp)
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := 1000
	cfg.SampleRate = rate

	// A constant square wave exposes the envelope directly
	env := NewEnvelope(NewSweep(0, 0, 100*time.Millisecond, WaveSquare, 1000), 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, 1000)
	buf := make([][2]float64, 200)
	n, _ := env.Stream(buf)

	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Expected full sustain, got %v", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("Expected release to fall, got %v then %v", buf[90][0], buf[99][0])
	}
}
