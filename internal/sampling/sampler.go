// Package sampling wraps a seeded pseudo-random source with the categorical
// and parametric draws the synthesizer needs. All draws consume the single
// underlying stream in call order, so reproducibility depends on callers
// keeping their draw order fixed.
package sampling

import (
	"math"
	"math/rand"

	"github.com/healthcare-billing-synth/internal/domain"
)

// Source is a deterministic draw source. It is not safe for concurrent use;
// the generation pipeline is single-threaded by contract.
type Source struct {
	rng *rand.Rand
}

// New creates a Source seeded with the given value. Two Sources with the
// same seed produce identical draw sequences.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Pick draws one name with probability proportional to its weight. Weights
// that have drifted away from summing to 1.0 are normalized rather than
// rejected; an empty domain is a configuration error.
func (s *Source) Pick(names []string, weights []float64) (string, error) {
	if len(names) == 0 || len(names) != len(weights) {
		return "", domain.NewConfigurationError("sampler", "empty or mismatched category domain")
	}
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return "", domain.NewConfigurationError("sampler", "weights sum to zero")
	}
	r := s.rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return names[i], nil
		}
	}
	// Floating-point tail: r landed on the accumulated rounding slack.
	return names[len(names)-1], nil
}

// Normal draws from a normal distribution with the given mean and standard
// deviation.
func (s *Source) Normal(mean, sd float64) float64 {
	return s.rng.NormFloat64()*sd + mean
}

// NormalClampedInt draws from a normal distribution, truncates toward zero
// and clamps the result into [lo, hi].
func (s *Source) NormalClampedInt(mean, sd float64, lo, hi int) int {
	v := int(s.Normal(mean, sd))
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Uniform draws a float64 uniformly from [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// IntRange draws an int uniformly from [lo, hi] inclusive.
func (s *Source) IntRange(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// Int64Range draws an int64 uniformly from [lo, hi] inclusive.
func (s *Source) Int64Range(lo, hi int64) int64 {
	return lo + s.rng.Int63n(hi-lo+1)
}

// Float64 draws uniformly from [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Perm returns a pseudo-random permutation of [0, n).
func (s *Source) Perm(n int) []int {
	return s.rng.Perm(n)
}

// Round2 rounds a monetary value to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
