package constants

import "time"

// Audio Defaults
const (
	// DefaultSampleRate is the speaker and synthesis rate in Hz
	DefaultSampleRate = 44100

	// DefaultMasterVolume is applied to every effect (0.0-1.0)
	DefaultMasterVolume = 0.5

	// SpeakerBufferDuration is the speaker buffer length passed to speaker.Init
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Eat Sound Timing
const (
	EatToneFrequency = 800.0
	EatToneDuration  = 100 * time.Millisecond
	EatToneAttack    = 5 * time.Millisecond
	EatToneRelease   = 20 * time.Millisecond
)

// Crash Sound Timing
const (
	CrashToneFrequency = 120.0
	CrashToneDuration  = 250 * time.Millisecond
	CrashToneAttack    = 5 * time.Millisecond
	CrashToneRelease   = 150 * time.Millisecond
)

// PCMAmplitude scales unit samples to signed 16-bit PCM
const PCMAmplitude = 32767
