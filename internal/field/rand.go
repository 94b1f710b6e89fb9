package field

import "math/rand/v2"

// NewRand returns a deterministic source. Equal seeds give equal layouts.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomRand returns a source seeded from the runtime's entropy.
func NewRandomRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// RandFor picks NewRand for a non-zero seed and NewRandomRand otherwise.
func RandFor(seed uint64) *rand.Rand {
	if seed == 0 {
		return NewRandomRand()
	}
	return NewRand(seed)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
