package random

import (
	"math/rand"
	"time"
)

// Source provides uniform random values in [0, 1). It is injected wherever
// randomness is needed so tests can substitute a deterministic source.
type Source interface {
	Float64() float64
}

// NewTimeSource returns a Source seeded from the wall clock.
func NewTimeSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededSource returns a Source with a fixed seed for reproducible spins.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
