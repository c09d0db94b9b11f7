package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func setFlag(t *testing.T, name, value string) {
	t.Helper()
	if err := flag.Set(name, value); err != nil {
		t.Fatalf("flag.Set(%s): %v", name, err)
	}
}

// TestLoadConfigFlagsOverrideFile verifies flags win over the config file
func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "tick_rate = 12\n[audio]\nenabled = true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	setFlag(t, "config", path)
	setFlag(t, "tick-rate", "20")
	setFlag(t, "mute", "true")
	setFlag(t, "seed", "99")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.TickRate != 20 {
		t.Errorf("Expected tick rate 20, got %d", cfg.TickRate)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected -mute to disable audio")
	}
	if cfg.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", cfg.Seed)
	}
}

// TestLoadConfigExplicitMissingFile verifies an explicitly named config must exist
func TestLoadConfigExplicitMissingFile(t *testing.T) {
	setFlag(t, "config", filepath.Join(t.TempDir(), "missing.toml"))
	setFlag(t, "tick-rate", "0")

	if _, err := loadConfig(); err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}
