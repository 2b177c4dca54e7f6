package core

import "math/rand"

// Rand is the randomness source the game consumes.
type Rand interface {
	// IntRange returns a value in [min, max], both ends inclusive.
	IntRange(min, max int) int
}

type seededRand struct {
	r *rand.Rand
}

// NewRand returns a deterministic Rand for the given seed.
func NewRand(seed int64) Rand {
	return &seededRand{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}
