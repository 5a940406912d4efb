package birds

import "math/rand"

// Rand is the uniform random source used for gap placement.
type Rand interface {
	// Uniform returns a value in the closed range [lo, hi].
	Uniform(lo, hi float64) float64
}

// unitSteps is the resolution of the unit interval used by seededRand.
const unitSteps = 1 << 53

type seededRand struct {
	rng *rand.Rand
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) Rand {
	return seededRand{rng: rand.New(rand.NewSource(seed))}
}

func (s seededRand) Uniform(lo, hi float64) float64 {
	// Int63n(n+1)/n covers both ends of the range.
	u := float64(s.rng.Int63n(unitSteps+1)) / unitSteps
	return lo + u*(hi-lo)
}
