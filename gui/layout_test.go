package gui

import (
	"testing"

	"github.com/lixenwraith/snake/game"
)

// TestSegmentRect verifies 16x16 squares centred on the cell pixel
func TestSegmentRect(t *testing.T) {
	cfg := game.DefaultConfig()

	got := SegmentRect(cfg, cfg.Start)
	want := Rect{X: 312, Y: 232, W: 16, H: 16}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	corner := SegmentRect(cfg, game.Point{X: cfg.Cols - 1, Y: cfg.Rows - 1})
	if corner.X+corner.W > 620 || corner.Y+corner.H > 460 {
		t.Errorf("Expected last cell inside the playfield, got %+v", corner)
	}
}

// TestBorderRect verifies the 10px inset outline of the 640x480 window
func TestBorderRect(t *testing.T) {
	want := Rect{X: 10, Y: 10, W: 620, H: 460}
	if got := BorderRect(); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

// TestCenteredX verifies text is centred on the 640px window
func TestCenteredX(t *testing.T) {
	if x := CenteredX(100); x != 270 {
		t.Errorf("Expected 270, got %d", x)
	}
}
