package engine

import (
	"testing"
	"time"
)

func TestManualClockSteps(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)

	if !clock.Now().Equal(start) {
		t.Errorf("Expected %v, got %v", start, clock.Now())
	}
	if got := clock.Step(time.Second); !got.Equal(start.Add(time.Second)) {
		t.Errorf("Expected step to return the new reading, got %v", got)
	}
	if got := clock.Now().Sub(start); got != time.Second {
		t.Errorf("Expected 1s elapsed, got %v", got)
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	var clock TimeSource = SystemClock{}
	a := clock.Now()
	b := clock.Now()
	if b.Sub(a) < 0 {
		t.Errorf("Expected non-decreasing readings, got %v", b.Sub(a))
	}
}
