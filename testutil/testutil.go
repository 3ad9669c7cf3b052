package testutil

import (
	"math/rand"
	"sync"
)

// RNG encapsulates a seeded random number generator.
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

// Int63 returns a non-negative pseudo-random int64.
func (r *RNG) Int63() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63()
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Capacities generates n pseudo-random sub-array capacities in
// [0, maxCapacity].
func (r *RNG) Capacities(n, maxCapacity int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(maxCapacity + 1)
	}
	return out
}

// Values generates n pseudo-random int64 values in [0, bound).
func (r *RNG) Values(n int, bound int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int64, n)
	for i := range out {
		out[i] = r.rand.Int63n(bound)
	}
	return out
}
