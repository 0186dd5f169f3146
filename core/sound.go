package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot      SoundType = iota // Projectile fired
	SoundHit                        // Projectile landed on an enemy
	SoundExplosion                  // Explosion spawned
	SoundShield                     // Shield triggered by a collision
	SoundPowerUp                    // Power-up started
	SoundPowerDown                  // Power-up expired
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundShot:      "shot",
	SoundHit:       "hit",
	SoundExplosion: "explosion",
	SoundShield:    "shield",
	SoundPowerUp:   "powerup",
	SoundPowerDown: "powerdown",
}

// String returns the sound name used in logs
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType looks up a sound by name
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
