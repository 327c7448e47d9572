package engine

import (
	"math/rand/v2"
	"time"
)

// Rand is the seeded random service every system draws from
// A fixed seed replays an identical session
type Rand struct {
	seed uint64
	rng  *rand.Rand
}

// NewRand seeds from the clock when seed is zero
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Rand{seed: seed, rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Seed returns the effective seed
func (r *Rand) Seed() uint64 { return r.seed }

// Float64 returns a value in [0, 1)
func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}

// Between returns an integer in [min, max] inclusive
func (r *Rand) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.IntN(max-min+1)
}

// IntN returns an integer in [0, n)
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// Duration returns a whole-millisecond duration in [min, max]
func (r *Rand) Duration(min, max time.Duration) time.Duration {
	ms := r.Between(int(min/time.Millisecond), int(max/time.Millisecond))
	return time.Duration(ms) * time.Millisecond
}
