package analysis

import (
	"math"

	"github.com/FmBlueSystem/MAPOfice-sub001/core/camelot"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
)

// Neutral defaults used when an input is absent. Every encoder is total: it
// returns a finite value in [0,1] for any input and never panics.
const (
	neutralTempo  = 0.5
	neutralKey    = 0.5
	neutralEnergy = 0.5
)

// Tempo range covered by the bpm dimension: 60 maps to 0, 200 maps to 1.
const (
	tempoFloor = 60.0
	tempoSpan  = 140.0
)

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// EncodeTempo maps beats-per-minute linearly onto [0,1].
func EncodeTempo(f domain.TrackFeatures) float64 {
	if !f.HasTempo() {
		return neutralTempo
	}
	return clip01((f.BPM - tempoFloor) / tempoSpan)
}

// EncodeKey maps the 24-point harmonic wheel onto [0,1]: minor keys occupy
// the lower half of the range, major keys the upper half, each position
// spaced 1/24 apart.
func EncodeKey(f domain.TrackFeatures) float64 {
	if !f.HasKey() {
		return neutralKey
	}
	k, err := camelot.Parse(f.Key)
	if err != nil {
		return neutralKey
	}
	v := float64(k.Number-1) / 24.0
	if k.Mode == camelot.ModeMajor {
		v += 0.5
	}
	return clip01(v)
}

// EncodeEnergy passes the supplied energy through, clipped to [0,1].
// A NaN energy counts as absent.
func EncodeEnergy(f domain.TrackFeatures) float64 {
	e := f.EnergyOr(neutralEnergy)
	if math.IsNaN(e) {
		e = neutralEnergy
	}
	return clip01(e)
}

// tempoAffinity peaks at club tempo (120 bpm) and falls off linearly,
// returning the neutral midpoint when tempo is unknown.
func tempoAffinity(f domain.TrackFeatures) float64 {
	if !f.HasTempo() {
		return 0.5
	}
	return clip01(1 - math.Abs(f.BPM-120)/80)
}

// EncodeDanceability blends the genre base with tempo affinity and energy.
func EncodeDanceability(f domain.TrackFeatures) float64 {
	base := ProfileFor(f.Genre).Danceability
	return clip01(base + 0.2*(tempoAffinity(f)-0.5) + 0.1*(EncodeEnergy(f)-0.5))
}

// EncodeValence nudges the genre base toward the track's energy.
func EncodeValence(f domain.TrackFeatures) float64 {
	base := ProfileFor(f.Genre).Valence
	return clip01(base + 0.15*(EncodeEnergy(f)-0.5))
}

// EncodeAcousticness lowers the genre base as energy rises.
func EncodeAcousticness(f domain.TrackFeatures) float64 {
	base := ProfileFor(f.Genre).Acousticness
	return clip01(base - 0.1*(EncodeEnergy(f)-0.5))
}

// EncodeInstrumentalness is driven by genre alone.
func EncodeInstrumentalness(f domain.TrackFeatures) float64 {
	return clip01(ProfileFor(f.Genre).Instrumentalness)
}

// EncodeRhythmicPattern raises the genre base slightly with energy.
func EncodeRhythmicPattern(f domain.TrackFeatures) float64 {
	base := ProfileFor(f.Genre).RhythmicPattern
	return clip01(base + 0.1*(EncodeEnergy(f)-0.5))
}

// EncodeSpectralCentroid shifts the genre base with normalized tempo:
// faster material tends brighter.
func EncodeSpectralCentroid(f domain.TrackFeatures) float64 {
	base := ProfileFor(f.Genre).SpectralCentroid
	if !f.HasTempo() {
		return clip01(base)
	}
	return clip01(base + 0.2*(EncodeTempo(f)-0.5))
}

// EncodeTempoStability is driven by genre alone.
func EncodeTempoStability(f domain.TrackFeatures) float64 {
	return clip01(ProfileFor(f.Genre).TempoStability)
}

// EncodeHarmonicComplexity is driven by genre alone.
func EncodeHarmonicComplexity(f domain.TrackFeatures) float64 {
	return clip01(ProfileFor(f.Genre).HarmonicComplexity)
}

// EncodeDynamicRange lowers the genre base as energy rises, reflecting the
// heavier compression of high-energy masters.
func EncodeDynamicRange(f domain.TrackFeatures) float64 {
	base := ProfileFor(f.Genre).DynamicRange
	return clip01(base - 0.15*(EncodeEnergy(f)-0.5))
}

// Encoder computes one normalized dimension from raw track features.
type Encoder func(domain.TrackFeatures) float64

// encoders lists the twelve dimension encoders in domain.DimensionNames
// order. The builder relies on this ordering.
var encoders = [domain.Dimensions]Encoder{
	EncodeTempo,
	EncodeKey,
	EncodeEnergy,
	EncodeDanceability,
	EncodeValence,
	EncodeAcousticness,
	EncodeInstrumentalness,
	EncodeRhythmicPattern,
	EncodeSpectralCentroid,
	EncodeTempoStability,
	EncodeHarmonicComplexity,
	EncodeDynamicRange,
}
