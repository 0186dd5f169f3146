package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is an oscillator whose frequency glides linearly from start to end over its duration
type sweep struct {
	start    float64
	end      float64
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
	phase    float64
	position int
	length   int
}

// NewSweep creates an oscillator gliding from start to end Hz; equal frequencies give a plain tone
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		start:  start,
		end:    end,
		wave:   wave,
		rate:   rate,
		rng:    rand.New(rand.NewSource(int64(start*1000 + end))),
		length: rate.N(duration),
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.length)
		freq := o.start + (o.end-o.start)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope shapes a stream with a linear attack and a linear release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with attack and release ramps over a sound of the given duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		streamer: s,
		attack:   min(rate.N(attack), total),
		release:  min(rate.N(release), total),
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf so zero volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a shaped sweep
func tone(start, end float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(start, end, duration, wave, rate), duration, attack, release, rate)
}

// CreateShotSound generates a short falling zap for each shot
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return tone(1400, 600, WaveSquare, constants.ShotSoundDuration, constants.ShotSoundAttack, constants.ShotSoundRelease, rate)
}

// CreateHitSound generates a dull knock for a landed hit
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	body := tone(220, 140, WaveSine, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)
	click := tone(0, 0, WaveNoise, constants.HitSoundDuration/4, 0, constants.HitSoundDuration/4, rate)
	return beep.Mix(newVolume(body, 0.8), newVolume(click, 0.3))
}

// CreateExplosionSound generates a noise burst over a falling rumble
func CreateExplosionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noise := tone(0, 0, WaveNoise, constants.ExplosionSoundDuration, constants.ExplosionSoundAttack, constants.ExplosionSoundRelease, rate)
	rumble := tone(90, 40, WaveSine, constants.ExplosionSoundDuration, constants.ExplosionSoundAttack, constants.ExplosionSoundRelease, rate)
	return beep.Mix(newVolume(noise, 0.5), newVolume(rumble, 0.7))
}

// CreateShieldSound generates a shimmering rising hum for the shield flash
func CreateShieldSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	low := tone(330, 660, WaveSine, constants.ShieldSoundDuration, constants.ShieldSoundAttack, constants.ShieldSoundRelease, rate)
	high := tone(495, 990, WaveSine, constants.ShieldSoundDuration, constants.ShieldSoundAttack, constants.ShieldSoundRelease, rate)
	return beep.Mix(newVolume(low, 0.6), newVolume(high, 0.3))
}

// arpeggio plays notes back to back as short square tones
func arpeggio(rate beep.SampleRate, notes ...float64) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		parts[i] = tone(f, f, WaveSquare, constants.PowerSoundNoteDuration, constants.PowerSoundAttack, constants.PowerSoundRelease, rate)
	}
	return beep.Seq(parts...)
}

// CreatePowerUpSound generates a rising three-note arpeggio (C5 E5 G5)
func CreatePowerUpSound(cfg *AudioConfig) beep.Streamer {
	return arpeggio(beep.SampleRate(cfg.SampleRate), 523.25, 659.25, 783.99)
}

// CreatePowerDownSound generates the falling mirror of the power-up arpeggio
func CreatePowerDownSound(cfg *AudioConfig) beep.Streamer {
	return arpeggio(beep.SampleRate(cfg.SampleRate), 783.99, 659.25, 523.25)
}

// GetSoundEffect returns the sound effect streamer for the given type at its configured volume
// Returns nil for unknown types
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	var s beep.Streamer
	switch soundType {
	case core.SoundShot:
		s = CreateShotSound(cfg)
	case core.SoundHit:
		s = CreateHitSound(cfg)
	case core.SoundExplosion:
		s = CreateExplosionSound(cfg)
	case core.SoundShield:
		s = CreateShieldSound(cfg)
	case core.SoundPowerUp:
		s = CreatePowerUpSound(cfg)
	case core.SoundPowerDown:
		s = CreatePowerDownSound(cfg)
	default:
		return nil
	}
	return newVolume(s, cfg.EffectVolumes[soundType]*cfg.MasterVolume)
}
