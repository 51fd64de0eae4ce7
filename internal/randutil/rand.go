// Package randutil centralises RNG construction so that every component
// drawing randomness can be made deterministic from a single int64 seed.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper derives the two 64-bit seeds required by rand/v2 so that all
// call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewFromTime returns a *rand.Rand seeded from the current time, for callers
// that did not ask for reproducibility.
func NewFromTime() *rand.Rand {
	return New(time.Now().UnixNano())
}

// SampleIndices returns k distinct indices drawn uniformly from [0, n) via a
// partial Fisher-Yates shuffle. If k >= n every index is returned. Used to
// cap oversized candidate sets without biasing the survivors.
func SampleIndices(rng *rand.Rand, n, k int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if k >= n {
		return indices
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		indices[i], indices[j] = indices[j], indices[i]
	}
	return indices[:k]
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
