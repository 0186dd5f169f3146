package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MasterVolume scales every effect (0.0-1.0)
	MasterVolume = 0.6
)

// Shot Sound Timing
const (
	ShotSoundDuration = 60 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 40 * time.Millisecond
)

// Hit Sound Timing
const (
	HitSoundDuration = 80 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 30 * time.Millisecond
)

// Explosion Sound Timing
const (
	ExplosionSoundDuration = 450 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 350 * time.Millisecond
)

// Shield Sound Timing
const (
	ShieldSoundDuration = 300 * time.Millisecond
	ShieldSoundAttack   = 20 * time.Millisecond
	ShieldSoundRelease  = 150 * time.Millisecond
)

// Power Sound Timing (power-up rises, power-down falls)
const (
	PowerSoundNoteDuration = 90 * time.Millisecond
	PowerSoundAttack       = 5 * time.Millisecond
	PowerSoundRelease      = 40 * time.Millisecond
)
