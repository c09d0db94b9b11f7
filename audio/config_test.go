package audio

import (
	"testing"
)

// TestDefaultConfig verifies default configuration
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	eat, ok := cfg.Tone(SoundEat)
	if !ok || eat.Frequency != 800 || eat.Duration.Milliseconds() != 100 {
		t.Errorf("Expected 800 Hz / 100 ms eat tone, got %+v", eat)
	}
	if _, ok := cfg.Tone(SoundType(-1)); ok {
		t.Error("Expected unknown sound type to be rejected")
	}
}

// TestLoadConfigDefaults verifies loading with no env vars
func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "")
	t.Setenv(EnvMasterVolume, "")
	t.Setenv(EnvSampleRate, "")

	cfg := LoadConfig(nil)
	def := DefaultConfig()

	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

// TestLoadConfigOverrides verifies env vars override the given config
func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "80")
	t.Setenv(EnvSampleRate, "48000")

	cfg := LoadConfig(DefaultConfig())

	if cfg.Enabled {
		t.Error("Expected Enabled=false")
	}
	if cfg.MasterVolume != 0.8 {
		t.Errorf("Expected master volume 0.8, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
}

// TestLoadConfigInvalidValues verifies malformed env values are ignored or clamped
func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name       string
		volume     string
		rate       string
		wantVolume float64
		wantRate   int
	}{
		{"Non-numeric", "loud", "fast", 0.5, 44100},
		{"Volume above range", "150", "44100", 1.0, 44100},
		{"Volume below range", "-10", "0", 0.0, 44100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAudioEnabled, "maybe")
			t.Setenv(EnvMasterVolume, tt.volume)
			t.Setenv(EnvSampleRate, tt.rate)

			cfg := LoadConfig(nil)

			if !cfg.Enabled {
				t.Error("Expected invalid bool to leave Enabled=true")
			}
			if cfg.MasterVolume != tt.wantVolume {
				t.Errorf("Expected volume %f, got %f", tt.wantVolume, cfg.MasterVolume)
			}
			if cfg.SampleRate != tt.wantRate {
				t.Errorf("Expected rate %d, got %d", tt.wantRate, cfg.SampleRate)
			}
		})
	}
}
