package game

import (
	"errors"
	"testing"
)

// TestDefaultConfigValid verifies the default playfield passes validation
func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}
}

// TestConfigValidate verifies each rejected geometry wraps ErrInvalidConfig
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Zero columns", func(c *Config) { c.Cols = 0 }},
		{"Negative rows", func(c *Config) { c.Rows = -1 }},
		{"Zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"Empty snake", func(c *Config) { c.InitialLength = 0 }},
		{"Max below initial", func(c *Config) { c.MaxLength = c.InitialLength - 1 }},
		{"Max fills playfield", func(c *Config) { c.MaxLength = c.Cells() }},
		{"Negative reward", func(c *Config) { c.FoodReward = -10 }},
		{"Negative attempts", func(c *Config) { c.FoodAttempts = -1 }},
		{"Start outside", func(c *Config) { c.Start = Point{X: c.Cols, Y: 0} }},
		{"Tail outside", func(c *Config) { c.Start = Point{X: 2, Y: 5} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}

			if _, err := NewState(cfg, fixedRand(0)); err == nil {
				t.Error("Expected NewState to reject invalid config")
			}
		})
	}
}

// TestConfigPixelMapping verifies cell to pixel mapping matches the 640x480 window layout
func TestConfigPixelMapping(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		cell         Point
		wantX, wantY int
	}{
		{Point{X: 0, Y: 0}, 20, 20},
		{Point{X: 15, Y: 11}, 320, 240},
		{Point{X: 29, Y: 21}, 600, 440},
	}

	for _, tt := range tests {
		x, y := cfg.Pixel(tt.cell)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("Cell %v: expected (%d,%d), got (%d,%d)", tt.cell, tt.wantX, tt.wantY, x, y)
		}
	}

	if cfg.Contains(Point{X: cfg.Cols, Y: 0}) || cfg.Contains(Point{X: 0, Y: -1}) {
		t.Error("Expected upper bound exclusive and lower bound inclusive")
	}
}
