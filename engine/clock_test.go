package engine

import (
	"testing"
	"time"
)

// TestManualClock verifies the manual clock only moves on Advance
func TestManualClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Errorf("Expected %v, got %v", start, c.Now())
	}

	c.Advance(90 * time.Second)
	if want := start.Add(90 * time.Second); !c.Now().Equal(want) {
		t.Errorf("Expected %v after Advance, got %v", want, c.Now())
	}
}

// TestSystemClockMonotonic verifies the system clock follows real elapsed time
func TestSystemClockMonotonic(t *testing.T) {
	var c SystemClock
	t1 := c.Now()
	time.Sleep(5 * time.Millisecond)
	if d := c.Now().Sub(t1); d < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms, got %v", d)
	}
}
