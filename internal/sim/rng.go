package sim

import "math/rand"

// RNG is the random source used for spawn positions, motion styles and timing jitter.
// *rand.Rand satisfies it; tests can inject scripted sources.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// NewRNG returns a deterministic source for the given seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandRange returns a uniform float in [min, max). A degenerate range yields min.
func RandRange(r RNG, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.Float64()*(max-min)
}

// RandIntRange returns a uniform int in [min, max].
func RandIntRange(r RNG, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}
