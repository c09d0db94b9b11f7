package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat   SoundType = iota // Food eaten
	SoundCrash                  // Wall or self collision
	soundTypeCount
)

func (st SoundType) String() string {
	switch st {
	case SoundEat:
		return "eat"
	case SoundCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrInvalidTone   = errors.New("invalid tone parameters")
	ErrUnknownSound  = errors.New("unknown sound type")
	ErrNotConfigured = errors.New("audio not configured")
)
