package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/engine"
	"github.com/lixenwraith/tide-fighter/input"
)

func TestRegisterOrdersSystems(t *testing.T) {
	w, _ := engine.NewTestWorld(1)
	Register(w)

	systems := w.Systems()
	if len(systems) != len(All()) {
		t.Fatalf("Expected %d systems, got %d", len(All()), len(systems))
	}
	for i := 1; i < len(systems); i++ {
		if systems[i-1].Priority() > systems[i].Priority() {
			t.Errorf("Expected ascending priorities, got %d before %d", systems[i-1].Priority(), systems[i].Priority())
		}
	}
	if systems[0].Priority() != constants.PriorityLayer {
		t.Errorf("Expected layers first, got priority %d", systems[0].Priority())
	}
}

// A full match with constant firing keeps every invariant and ends on time
func TestFullMatchInvariants(t *testing.T) {
	w, _ := engine.NewTestWorld(42)
	Register(w)
	dt := 16 * time.Millisecond

	ticks := 0
	for !w.State.GameOver && ticks < 5000 {
		in := input.State{}.WithPresses(input.ActionFire, 1)
		if ticks%200 < 100 {
			in = in.WithHeld(input.ActionDown)
		} else {
			in = in.WithHeld(input.ActionUp)
		}
		if err := w.Update(in, dt); err != nil {
			t.Fatalf("Update failed on tick %d: %v", ticks, err)
		}
		ticks++

		s := w.State
		p := s.Player
		if p.Y < 0 || p.Y > s.Height-p.Height {
			t.Fatalf("Tick %d: player Y %v out of field", ticks, p.Y)
		}
		if s.Ammo < 0 || s.Ammo > s.MaxAmmo {
			t.Fatalf("Tick %d: ammo %v out of range", ticks, s.Ammo)
		}
		for _, e := range s.Enemies {
			if e.Deleted || e.Lives <= 0 {
				t.Fatalf("Tick %d: dead enemy survived pruning", ticks)
			}
		}
		for _, pr := range s.Projectiles {
			if pr.Deleted {
				t.Fatalf("Tick %d: spent projectile survived pruning", ticks)
			}
		}
		for _, pa := range s.Particles {
			if pa.Deleted {
				t.Fatalf("Tick %d: dead particle survived pruning", ticks)
			}
		}
	}

	if ticks != 1877 {
		t.Errorf("Expected game over on tick 1877, got %d", ticks)
	}
	if w.State.ShotsFired == 0 {
		t.Error("Expected shots fired during the match")
	}
	if w.State.Hits > w.State.ShotsFired {
		t.Errorf("Expected hits %d not to exceed shots %d", w.State.Hits, w.State.ShotsFired)
	}
}
