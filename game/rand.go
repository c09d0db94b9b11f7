package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the randomness a State draws food cells from
type Rand interface {
	Intn(n int) int
}

// NewRand returns a PCG-backed generator; seed 0 seeds from the clock
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
