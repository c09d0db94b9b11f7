package audio

import (
	"fmt"
	"sync"
)

// toneCache stores synthesized PCM per sound type
type toneCache struct {
	mu    sync.RWMutex
	cfg   *Config
	store [soundTypeCount]PCM
	ready [soundTypeCount]bool
}

func newToneCache(cfg *Config) *toneCache {
	return &toneCache{cfg: cfg}
}

// get returns cached PCM or synthesizes on demand
func (c *toneCache) get(st SoundType) (PCM, error) {
	spec, ok := c.cfg.Tone(st)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSound, st)
	}

	c.mu.RLock()
	if c.ready[st] {
		pcm := c.store[st]
		c.mu.RUnlock()
		return pcm, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready[st] {
		return c.store[st], nil
	}

	pcm, err := Synthesize(spec.Frequency, spec.Duration, c.cfg.Rate())
	if err != nil {
		return nil, fmt.Errorf("synthesize %s: %w", st, err)
	}
	c.store[st] = pcm
	c.ready[st] = true
	return pcm, nil
}

// preload synthesizes every effect so the first play does not stall the game loop
func (c *toneCache) preload() error {
	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, err := c.get(st); err != nil {
			return err
		}
	}
	return nil
}
