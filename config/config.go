package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/input"
)

const (
	MinTickRate = 1
	MaxTickRate = 60

	appDirName     = "snake"
	configFileName = "config.toml"
)

// ErrInvalidTickRate is returned for tick rates outside [MinTickRate, MaxTickRate]
var ErrInvalidTickRate = errors.New("invalid tick rate")

// Config is the resolved runtime configuration handed to the frontends
type Config struct {
	Game     game.Config
	TickRate int
	Audio    *audio.Config
	Keys     *input.KeyTable
	Seed     uint64
	Debug    bool
}

// file mirrors the TOML layout; pointers distinguish "absent" from zero
type file struct {
	TickRate *int              `toml:"tick_rate"`
	Audio    audioSection      `toml:"audio"`
	Keys     map[string]string `toml:"keys"`
}

type audioSection struct {
	Enabled    *bool `toml:"enabled"`
	Volume     *int  `toml:"volume"` // 0-100
	SampleRate *int  `toml:"sample_rate"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game:     game.DefaultConfig(),
		TickRate: constants.TickRate,
		Audio:    audio.DefaultConfig(),
		Keys:     input.DefaultKeyTable(),
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDirName, configFileName)
}

// Load builds a Config from defaults, the TOML file at path, then audio env overrides.
// A missing file is only an error when required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.apply(data); err != nil {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	audio.LoadConfig(cfg.Audio)
	return cfg, nil
}

// Parse applies TOML data on top of the defaults without consulting the environment
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.apply(data); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(data []byte) error {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if f.TickRate != nil {
		if err := c.SetTickRate(*f.TickRate); err != nil {
			return err
		}
	}

	if f.Audio.Enabled != nil {
		c.Audio.Enabled = *f.Audio.Enabled
	}
	if f.Audio.Volume != nil {
		c.Audio.SetVolumePercent(*f.Audio.Volume)
	}
	if f.Audio.SampleRate != nil {
		if *f.Audio.SampleRate <= 0 {
			return fmt.Errorf("audio sample_rate %d must be positive", *f.Audio.SampleRate)
		}
		c.Audio.SampleRate = *f.Audio.SampleRate
	}

	if len(f.Keys) > 0 {
		override, err := input.ParseKeyBindings(f.Keys)
		if err != nil {
			return fmt.Errorf("keys: %w", err)
		}
		c.Keys = input.MergeKeyTable(c.Keys, override)
	}

	return nil
}

// SetTickRate validates and sets the ticks per second
func (c *Config) SetTickRate(rate int) error {
	if rate < MinTickRate || rate > MaxTickRate {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidTickRate, rate, MinTickRate, MaxTickRate)
	}
	c.TickRate = rate
	return nil
}
