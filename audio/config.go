package audio

import (
	"os"
	"strconv"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/snake/constants"
)

// Environment overrides, applied after the config file
const (
	EnvAudioEnabled = "SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "SNAKE_MASTER_VOLUME"
	EnvSampleRate   = "SNAKE_SAMPLE_RATE"
)

// ToneSpec describes one synthesized effect
type ToneSpec struct {
	Frequency float64
	Duration  time.Duration
	Attack    time.Duration
	Release   time.Duration
}

// Config holds audio settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	Tones        [soundTypeCount]ToneSpec
}

// DefaultConfig returns the 800 Hz eat beep and a low crash tone at half volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		Tones: [soundTypeCount]ToneSpec{
			SoundEat: {
				Frequency: constants.EatToneFrequency,
				Duration:  constants.EatToneDuration,
				Attack:    constants.EatToneAttack,
				Release:   constants.EatToneRelease,
			},
			SoundCrash: {
				Frequency: constants.CrashToneFrequency,
				Duration:  constants.CrashToneDuration,
				Attack:    constants.CrashToneAttack,
				Release:   constants.CrashToneRelease,
			},
		},
	}
}

// Rate returns the sample rate as a beep.SampleRate
func (c *Config) Rate() beep.SampleRate {
	return beep.SampleRate(c.SampleRate)
}

// Tone returns the spec for st and whether st is known
func (c *Config) Tone(st SoundType) (ToneSpec, bool) {
	if st < 0 || st >= soundTypeCount {
		return ToneSpec{}, false
	}
	return c.Tones[st], true
}

// SetVolumePercent sets the master volume from a 0-100 value, clamping out-of-range input
func (c *Config) SetVolumePercent(percent int) {
	c.MasterVolume = float64(percent) / 100.0
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}
}

// LoadConfig applies environment variable overrides to cfg (defaults when nil)
func LoadConfig(cfg *Config) *Config {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.SetVolumePercent(val)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
