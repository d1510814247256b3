// Package mix scores track pairs: vector similarity over HAMMS vectors and
// DJ mix compatibility over raw tempo, key and energy.
package mix

import "github.com/FmBlueSystem/MAPOfice-sub001/core/domain"

// Weights holds the tunable constants of the scoring engine. The defaults
// are documented heuristics, not invariants; callers may override any of
// them (see the config package for file/env overrides).
type Weights struct {
	// Dimension weights in domain.DimensionNames order. Tempo and key
	// carry the most weight for mixing decisions.
	Dimension [domain.Dimensions]float64

	// Blend between inverted weighted-Euclidean distance and weighted
	// cosine similarity. The two should sum to 1.
	EuclideanBlend float64
	CosineBlend    float64

	// Composite mix-compatibility weights. The three should sum to 1.
	TempoWeight    float64
	HarmonicWeight float64
	EnergyWeight   float64

	// TempoTolerance is the minimum min/max tempo ratio considered
	// mixable without a tempo trick.
	TempoTolerance float64

	// EnergyTolerance is the largest energy delta still considered
	// compatible. The blend transition band accepts half of it.
	EnergyTolerance float64
}

// DefaultWeights returns the documented default scoring constants.
func DefaultWeights() Weights {
	return Weights{
		Dimension: [domain.Dimensions]float64{
			1.3, // bpm
			1.3, // key
			1.1, // energy
			0.9, // danceability
			0.8, // valence
			0.6, // acousticness
			0.5, // instrumentalness
			1.0, // rhythmic_pattern
			0.7, // spectral_centroid
			0.9, // tempo_stability
			0.8, // harmonic_complexity
			0.6, // dynamic_range
		},
		EuclideanBlend:  0.6,
		CosineBlend:     0.4,
		TempoWeight:     0.4,
		HarmonicWeight:  0.4,
		EnergyWeight:    0.2,
		TempoTolerance:  0.92,
		EnergyTolerance: 0.3,
	}
}
