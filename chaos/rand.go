package chaos

import (
	"math/rand/v2"
	"time"
)

// Rand is the source of randomness used by mutations. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a value in [0, n). n must be > 0.
	IntN(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// NewRand returns a PCG-backed Rand seeded from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewTimeRand returns a Rand seeded from the wall clock.
func NewTimeRand() *rand.Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}
