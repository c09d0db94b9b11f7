package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/snake/constants"
)

// SoundManager plays game effects through the system speaker.
// Every method is safe on an uninitialized manager and then does nothing.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	cache       *toneCache
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager; nil cfg uses defaults
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		cache: newToneCache(cfg),
		mixer: &beep.Mixer{},
	}
}

// Initialize synthesizes the effects and opens the speaker.
// A disabled config initializes nothing and returns ErrNotConfigured.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrNotConfigured
	}

	if err := sm.cache.preload(); err != nil {
		return err
	}

	rate := sm.cfg.Rate()
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker ready at %d Hz, volume %.2f", sm.cfg.SampleRate, sm.cfg.MasterVolume)
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayEat plays the short food beep
func (sm *SoundManager) PlayEat() {
	sm.play(SoundEat)
}

// PlayCrash plays the collision tone
func (sm *SoundManager) PlayCrash() {
	sm.play(SoundCrash)
}

func (sm *SoundManager) play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer, err := sm.effect(st)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// effect builds the shaped, volume-scaled streamer for st
func (sm *SoundManager) effect(st SoundType) (beep.Streamer, error) {
	pcm, err := sm.cache.get(st)
	if err != nil {
		return nil, err
	}
	spec, _ := sm.cfg.Tone(st)
	return shape(pcm, spec, sm.cfg.Rate(), sm.cfg.MasterVolume), nil
}
