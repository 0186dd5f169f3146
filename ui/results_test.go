package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/engine"
	"github.com/lixenwraith/tide-fighter/input"
	"github.com/lixenwraith/tide-fighter/systems"
)

func TestSummaryText(t *testing.T) {
	s := Summary{
		Score:        1250,
		WinningScore: 200,
		Won:          true,
		Kills:        12,
		Hits:         30,
		ShotsFired:   40,
		Elapsed:      30 * time.Second,
	}
	text := s.Text()

	for _, want := range []string{constants.WinTitle, "Score: 1,250 / 200", "Kills: 12", "Hits: 30 of 40 shots (75%)", "Time: 30.0s"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in summary, got %q", want, text)
		}
	}
}

func TestSummaryLoss(t *testing.T) {
	s := Summary{Score: -10, WinningScore: 200}
	text := s.Text()

	if !strings.Contains(text, constants.LoseTitle) {
		t.Errorf("Expected lose title, got %q", text)
	}
	if s.Accuracy() != 0 {
		t.Errorf("Expected zero accuracy without shots, got %v", s.Accuracy())
	}
}

func TestNewSummaryFromState(t *testing.T) {
	w, _ := engine.NewTestWorld(1)
	w.State.Score = 205
	w.State.Kills = 3
	w.State.Hits = 7
	w.State.ShotsFired = 9
	w.State.Elapsed = 1500 * time.Millisecond

	s := NewSummary(w.State)
	if !s.Won {
		t.Error("Expected a win at 205 points")
	}
	if s.Kills != 3 || s.Hits != 7 || s.ShotsFired != 9 {
		t.Errorf("Expected 3/7/9, got %d/%d/%d", s.Kills, s.Hits, s.ShotsFired)
	}
	if s.Elapsed != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s elapsed, got %v", s.Elapsed)
	}
}

// A match that runs out its timer reports the full time played
func TestSummaryAfterFullMatch(t *testing.T) {
	w, _ := engine.NewTestWorld(5)
	systems.Register(w)
	dt := 16 * time.Millisecond

	for ticks := 0; !w.State.GameOver; ticks++ {
		if ticks > 5000 {
			t.Fatal("Expected the match to end on its timer")
		}
		if err := w.Update(input.State{}, dt); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}

	s := NewSummary(w.State)
	if s.Elapsed < w.State.MatchTimeLimit {
		t.Errorf("Expected at least %v elapsed in the summary, got %v", w.State.MatchTimeLimit, s.Elapsed)
	}
	if s.Elapsed != w.Now() {
		t.Errorf("Expected elapsed %v to match the world clock, got %v", w.Now(), s.Elapsed)
	}
	if !strings.Contains(s.Text(), "Time: 30.0s") {
		t.Errorf("Expected 30.0s in the summary, got %q", s.Text())
	}
}

func TestShowResultsDismiss(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")

	done := make(chan error, 1)
	go func() {
		done <- ShowResults(screen, Summary{Score: 10, WinningScore: 200})
	}()

	// Give the application time to initialize the screen before injecting
	time.Sleep(100 * time.Millisecond)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean exit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected results dialog to close on Escape")
	}
}
