package engine

import "time"

// Accumulate applies the shared spawner rule to one timer
// If the timer already exceeds threshold, fire runs and the timer resets to zero;
// otherwise dt is added. Reports whether fire ran
func Accumulate(timer *time.Duration, dt, threshold time.Duration, fire func()) bool {
	if *timer > threshold {
		*timer = 0
		if fire != nil {
			fire()
		}
		return true
	}
	*timer += dt
	return false
}
