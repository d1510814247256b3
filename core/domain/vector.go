package domain

import "math"

// Dimensions is the number of scalars in a HAMMS vector.
const Dimensions = 12

// DimensionNames lists the twelve dimensions in encoding order. The order is
// part of the contract: encoders, weights and persisted vectors all use it.
var DimensionNames = [Dimensions]string{
	"bpm",
	"key",
	"energy",
	"danceability",
	"valence",
	"acousticness",
	"instrumentalness",
	"rhythmic_pattern",
	"spectral_centroid",
	"tempo_stability",
	"harmonic_complexity",
	"dynamic_range",
}

// HAMMSVector is the 12-dimensional normalized feature encoding of a track,
// immutable once built. Confidence is in [0,1] and degrades as required
// inputs were missing; it is forced to 0 when validation failed and the
// caller received the degenerate zero-filled vector instead.
type HAMMSVector struct {
	Values     [Dimensions]float64
	Confidence float64
}

// Validate checks the vector invariants: every entry finite and in [0,1],
// confidence finite and in [0,1]. It returns a *VectorValidationError
// describing the first violation, or nil.
func (v HAMMSVector) Validate() error {
	for i, val := range v.Values {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return &VectorValidationError{Dimension: DimensionNames[i], Value: val, Reason: "not finite"}
		}
		if val < 0 || val > 1 {
			return &VectorValidationError{Dimension: DimensionNames[i], Value: val, Reason: "outside [0,1]"}
		}
	}
	if math.IsNaN(v.Confidence) || v.Confidence < 0 || v.Confidence > 1 {
		return &VectorValidationError{Dimension: "confidence", Value: v.Confidence, Reason: "outside [0,1]"}
	}
	return nil
}

// Dimension returns the value stored under the named dimension and whether
// the name is one of the twelve.
func (v HAMMSVector) Dimension(name string) (float64, bool) {
	for i, n := range DimensionNames {
		if n == name {
			return v.Values[i], true
		}
	}
	return 0, false
}
