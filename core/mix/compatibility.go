package mix

import (
	"math"

	"github.com/FmBlueSystem/MAPOfice-sub001/core/camelot"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
)

// Compatibility scores how well b follows a in a DJ set: a composite of
// tempo ratio, harmonic wheel distance and energy delta, plus the
// transition classification for the pair.
func Compatibility(a, b domain.TrackFeatures, w Weights) domain.CompatibilityScore {
	ratio := tempoRatio(a, b)
	dist := camelot.DistanceLabels(a.Key, b.Key)
	delta := math.Abs(a.EnergyOr(0.5) - b.EnergyOr(0.5))

	score := w.TempoWeight*tempoComponent(ratio, w.TempoTolerance) +
		w.HarmonicWeight*harmonicComponent(dist) +
		w.EnergyWeight*energyComponent(delta)

	return domain.CompatibilityScore{
		TempoCompatible:  ratio > w.TempoTolerance,
		HarmonicDistance: dist,
		EnergyDelta:      delta,
		EnergyCompatible: delta <= w.EnergyTolerance,
		Score:            clamp01(score),
		Transition:       classify(ratio, dist, delta, w),
	}
}

// TempoScore grades the tempo match of two tracks in [0,1]: 0 at or below
// the tolerance boundary, 1 for identical tempos, 0 when either tempo is
// unknown.
func TempoScore(a, b domain.TrackFeatures, tolerance float64) float64 {
	return tempoComponent(tempoRatio(a, b), tolerance)
}

// tempoRatio is min/max of the two tempos, or 0 when either is unknown.
func tempoRatio(a, b domain.TrackFeatures) float64 {
	if !a.HasTempo() || !b.HasTempo() {
		return 0
	}
	lo, hi := a.BPM, b.BPM
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo / hi
}

// tempoComponent rescales the ratio so the tolerance boundary maps to 0 and
// a perfect match to 1.
func tempoComponent(ratio, tolerance float64) float64 {
	if tolerance >= 1 {
		return 0
	}
	return clamp01((ratio - tolerance) / (1 - tolerance))
}

func harmonicComponent(dist int) float64 {
	switch dist {
	case camelot.DistancePerfect:
		return 1.0
	case camelot.DistanceAdjacent:
		return 0.8
	case camelot.DistanceNear:
		return 0.4
	default:
		return 0.0
	}
}

func energyComponent(delta float64) float64 {
	return clamp01(1 - delta)
}

// Transition bands, checked in order; the first match wins. The blend band
// accepts half the configured energy tolerance: a seamless overlap needs a
// tighter level match than plain compatibility.
const (
	blendTempoRatio    = 0.97 // a couple of bpm apart at club tempo
	workableTempoRatio = 0.85 // still reachable with pitch play
)

func classify(ratio float64, dist int, delta float64, w Weights) domain.TransitionType {
	switch {
	case ratio > blendTempoRatio && dist <= camelot.DistanceAdjacent && delta <= w.EnergyTolerance/2:
		return domain.TransitionBlend
	case ratio > w.TempoTolerance && dist <= camelot.DistanceAdjacent:
		return domain.TransitionHarmonicMix
	case ratio > workableTempoRatio:
		return domain.TransitionTempo
	default:
		return domain.TransitionCreative
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
