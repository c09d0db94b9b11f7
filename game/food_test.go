package game

import (
	"testing"
)

// TestPlaceFoodScanFallback verifies the deterministic scan once rejection sampling is exhausted
func TestPlaceFoodScanFallback(t *testing.T) {
	cfg := Config{
		Cols:          4,
		Rows:          2,
		CellSize:      1,
		Start:         Point{X: 3, Y: 0},
		InitialLength: 4,
		MaxLength:     7,
		FoodReward:    10,
		FoodAttempts:  0,
	}

	s, err := NewState(cfg, fixedRand(0))
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}

	// Row 0 is all snake; the scan from cell 0 lands on the first cell of row 1
	if want := (Point{X: 0, Y: 1}); s.Food() != want {
		t.Errorf("Expected food at %v, got %v", want, s.Food())
	}
}

// TestPlaceFoodRejectsOccupied verifies sampling skips cells covered by the body
func TestPlaceFoodRejectsOccupied(t *testing.T) {
	cfg := DefaultConfig()

	// fixedRand(15+11*30) always draws the head cell, forcing the scan
	s, err := NewState(cfg, fixedRand(cfg.Start.X+cfg.Start.Y*cfg.Cols))
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}

	if s.Food() != (Point{X: 16, Y: 11}) {
		t.Errorf("Expected scan to pick the cell after the head, got %v", s.Food())
	}
	assertFoodValid(t, s)
}

// TestPlaceFoodNearFull verifies placement still succeeds with one free cell
func TestPlaceFoodNearFull(t *testing.T) {
	cfg := Config{
		Cols:          3,
		Rows:          1,
		CellSize:      1,
		Start:         Point{X: 1, Y: 0},
		InitialLength: 2,
		MaxLength:     2,
		FoodReward:    10,
		FoodAttempts:  3,
	}

	s, err := NewState(cfg, NewRand(7))
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}

	if s.Food() != (Point{X: 2, Y: 0}) {
		t.Errorf("Expected only free cell (2,0), got %v", s.Food())
	}
}

// TestPlaceFoodManual verifies PlaceFood refuses body and out-of-bounds cells
func TestPlaceFoodManual(t *testing.T) {
	s := newTestState(t, DefaultConfig())
	before := s.Food()

	if s.PlaceFood(s.Head()) {
		t.Error("Expected placement on head to be refused")
	}
	if s.PlaceFood(Point{X: -1, Y: 0}) {
		t.Error("Expected placement outside playfield to be refused")
	}
	if s.Food() != before {
		t.Errorf("Expected food to stay at %v, got %v", before, s.Food())
	}
}
