package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// SortedInts returns n ascending integers starting near zero. Consecutive
// values differ by a random gap in [0, maxGap], so maxGap = 0 yields all
// duplicates and small gaps yield runs of duplicates.
func (r *RNG) SortedInts(n, maxGap int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := make([]int, n)
	v := -r.rand.Intn(n + 1)
	for i := range s {
		if i > 0 && maxGap > 0 {
			v += r.rand.Intn(maxGap + 1)
		}
		s[i] = v
	}
	return s
}

// SortedFloats returns n ascending values in [0, 1).
func (r *RNG) SortedFloats(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := make([]float64, n)
	for i := range s {
		s[i] = r.rand.Float64()
	}
	slices.Sort(s)
	return s
}
