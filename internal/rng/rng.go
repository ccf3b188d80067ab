package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// New returns a generator for the seed
// A seed of zero returns a crypto/rand backed generator. Any other seed returns
// a generator with a repeatable sequence, which is useful for replaying a deal.
func New(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return rand.New(rand.NewSource(seed)) // nolint:gosec
}
