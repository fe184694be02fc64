package survival

import "math/rand"

// Rand is the single source of randomness of a session: spawn heights,
// obstacle kinds, rotation speeds and platform interval jitter all draw from
// it. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
