// Package rng provides the random sources game simulations draw from.
//
// All randomness flows through the Source interface so that callers can
// swap the backing generator: a seeded generator for reproducible runs,
// or a scripted sequence for tests that need control over every draw.
package rng

import "math/rand"

// Source draws uniformly distributed integers from a finite set.
// Implementations are not required to be safe for concurrent use.
type Source interface {
	// IntN returns a uniform random int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// seededSource adapts math/rand to the Source interface.
type seededSource struct {
	r *rand.Rand
}

func (s *seededSource) IntN(n int) int { return s.r.Intn(n) }

// NewSeeded returns a deterministic Source: the same seed always
// produces the same draw sequence.
func NewSeeded(seed int64) Source {
	return &seededSource{r: rand.New(rand.NewSource(seed))}
}
