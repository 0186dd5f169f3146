package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/tide-fighter/engine"
	"github.com/lixenwraith/tide-fighter/input"
)

func TestAmmoRegeneratesToCap(t *testing.T) {
	w, _ := engine.NewTestWorld(1)
	s := NewAmmoSystem()
	w.State.Ammo = w.State.MaxAmmo - 1

	w.State.AmmoTimer = w.State.AmmoRegenInterval + 1
	s.Update(w, 16*time.Millisecond)
	if w.State.Ammo != w.State.MaxAmmo {
		t.Errorf("Expected ammo %v, got %v", w.State.MaxAmmo, w.State.Ammo)
	}
	if w.State.AmmoTimer != 0 {
		t.Errorf("Expected timer reset, got %v", w.State.AmmoTimer)
	}

	w.State.AmmoTimer = w.State.AmmoRegenInterval + 1
	s.Update(w, 16*time.Millisecond)
	if w.State.Ammo != w.State.MaxAmmo {
		t.Errorf("Expected ammo capped at %v, got %v", w.State.MaxAmmo, w.State.Ammo)
	}
}

// Ammo starts at 20 and with no firing reaches 50 once 30 regenerations have fired
func TestAmmoReachesCapWithoutFiring(t *testing.T) {
	w, _ := engine.NewTestWorld(1)
	w.AddSystem(NewAmmoSystem())
	dt := 16 * time.Millisecond

	ticks := 0
	for w.State.Ammo < w.State.MaxAmmo && ticks < 10000 {
		if err := w.Update(input.State{}, dt); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		ticks++
	}

	if w.State.Ammo != w.State.MaxAmmo {
		t.Fatalf("Expected ammo %v, got %v", w.State.MaxAmmo, w.State.Ammo)
	}
	// Each regeneration takes 32 accumulating ticks plus the firing tick
	if ticks != 30*33 {
		t.Errorf("Expected %d ticks, got %d", 30*33, ticks)
	}
}

func TestSpawnAtRightEdge(t *testing.T) {
	w, _ := engine.NewTestWorld(3)
	s := NewSpawnSystem()

	s.Update(w, 16*time.Millisecond)
	if len(w.State.Enemies) != 0 {
		t.Fatalf("Expected no spawn before the interval, got %d", len(w.State.Enemies))
	}

	w.State.EnemyTimer = w.State.EnemyInterval + 1
	s.Update(w, 16*time.Millisecond)

	if len(w.State.Enemies) != 1 {
		t.Fatalf("Expected 1 enemy, got %d", len(w.State.Enemies))
	}
	e := w.State.Enemies[0]
	if e.X != w.State.Width {
		t.Errorf("Expected spawn at X %v, got %v", w.State.Width, e.X)
	}
	if e.Y < 0 || e.Y+e.Height > w.State.Height {
		t.Errorf("Expected spawn inside the field, got Y %v", e.Y)
	}
}

// With 16ms frames the match ends on the first tick whose timer already exceeds 30000ms
func TestMatchTimerEndsMatch(t *testing.T) {
	w, _ := engine.NewTestWorld(1)
	w.AddSystem(NewMatchTimerSystem())
	dt := 16 * time.Millisecond

	ticks := 0
	for !w.State.GameOver && ticks < 5000 {
		if err := w.Update(input.State{}, dt); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		ticks++
	}

	if ticks != 1877 {
		t.Errorf("Expected game over on tick 1877, got %d", ticks)
	}
	if want := 1877 * dt; w.State.Elapsed != want {
		t.Errorf("Expected elapsed %v kept after game over, got %v", want, w.State.Elapsed)
	}

	before := w.State.MatchTimer
	if err := w.Update(input.State{}, dt); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if w.State.MatchTimer != before {
		t.Error("Expected no updates after game over")
	}
}
