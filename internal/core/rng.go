package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Uint8In returns a uniform uint8 in the closed range [lo, hi].
func (r *RNG) Uint8In(lo, hi uint8) uint8 {
	if hi <= lo {
		return lo
	}
	return lo + uint8(r.r.IntN(int(hi-lo)+1))
}
