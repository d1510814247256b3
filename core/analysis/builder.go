package analysis

import (
	"github.com/FmBlueSystem/MAPOfice-sub001/core/camelot"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
)

// Confidence starts at a base value and loses a fixed penalty per missing
// required input. Tempo weighs heavier than key because every downstream
// compatibility check leans on it.
const (
	confidenceBase         = 0.8
	confidenceTempoPenalty = 0.3
	confidenceKeyPenalty   = 0.2
)

// BuildVector runs the twelve encoders in dimension order, gates the result
// and computes confidence. Identical input always yields a bit-identical
// vector.
//
// When the quality gate fails the caller still receives a zero-filled
// 12-length vector with confidence 0, alongside a *VectorValidationError,
// so pipelines can log the failure without crashing.
func BuildVector(f domain.TrackFeatures) (domain.HAMMSVector, error) {
	var v domain.HAMMSVector
	for i, encode := range encoders {
		v.Values[i] = encode(f)
	}
	v.Confidence = confidence(f)

	if err := v.Validate(); err != nil {
		return domain.HAMMSVector{}, err
	}
	return v, nil
}

func confidence(f domain.TrackFeatures) float64 {
	c := confidenceBase
	if !f.HasTempo() {
		c -= confidenceTempoPenalty
	}
	if !hasParseableKey(f) {
		c -= confidenceKeyPenalty
	}
	if c < 0 {
		c = 0
	}
	return c
}

func hasParseableKey(f domain.TrackFeatures) bool {
	if !f.HasKey() {
		return false
	}
	_, err := camelot.Parse(f.Key)
	return err == nil
}
