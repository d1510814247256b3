package mix

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FmBlueSystem/MAPOfice-sub001/core/camelot"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
)

func TestCompatibility_CloseTemposSameKey(t *testing.T) {
	w := DefaultWeights()
	a := domain.TrackFeatures{BPM: 128, Key: "8A"}
	b := domain.TrackFeatures{BPM: 130, Key: "8A"}

	got := Compatibility(a, b, w)
	assert.True(t, got.TempoCompatible, "128/130 ratio is above the 0.92 tolerance")
	assert.Equal(t, 0, got.HarmonicDistance)
	assert.Equal(t, domain.TransitionBlend, got.Transition)
	assert.Greater(t, got.Score, 0.8)
}

func TestCompatibility_Symmetry(t *testing.T) {
	w := DefaultWeights()
	a := domain.TrackFeatures{BPM: 128, Key: "8A", Energy: domain.Float(0.8)}
	b := domain.TrackFeatures{BPM: 122, Key: "9A", Energy: domain.Float(0.6)}

	ab := Compatibility(a, b, w)
	ba := Compatibility(b, a, w)
	assert.Equal(t, ab.Score, ba.Score)
	assert.Equal(t, ab.HarmonicDistance, ba.HarmonicDistance)
	assert.Equal(t, ab.EnergyDelta, ba.EnergyDelta)
}

func TestCompatibility_Classification(t *testing.T) {
	w := DefaultWeights()

	tests := []struct {
		name string
		a, b domain.TrackFeatures
		want domain.TransitionType
	}{
		{
			"tight tempo adjacent key small energy",
			domain.TrackFeatures{BPM: 128, Key: "8A", Energy: domain.Float(0.7)},
			domain.TrackFeatures{BPM: 127, Key: "9A", Energy: domain.Float(0.75)},
			domain.TransitionBlend,
		},
		{
			"compatible key but looser tempo",
			domain.TrackFeatures{BPM: 128, Key: "8A", Energy: domain.Float(0.7)},
			domain.TrackFeatures{BPM: 122, Key: "8B", Energy: domain.Float(0.5)},
			domain.TransitionHarmonicMix,
		},
		{
			"tight tempo but large energy jump",
			domain.TrackFeatures{BPM: 128, Key: "8A", Energy: domain.Float(0.9)},
			domain.TrackFeatures{BPM: 128, Key: "8A", Energy: domain.Float(0.2)},
			domain.TransitionHarmonicMix,
		},
		{
			"workable tempo, clashing key",
			domain.TrackFeatures{BPM: 128, Key: "8A"},
			domain.TrackFeatures{BPM: 118, Key: "2B"},
			domain.TransitionTempo,
		},
		{
			"everything apart",
			domain.TrackFeatures{BPM: 174, Key: "8A"},
			domain.TrackFeatures{BPM: 85, Key: "2B"},
			domain.TransitionCreative,
		},
		{
			"missing tempos",
			domain.TrackFeatures{Key: "8A"},
			domain.TrackFeatures{Key: "8A"},
			domain.TransitionCreative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compatibility(tt.a, tt.b, w)
			assert.Equal(t, tt.want, got.Transition)
		})
	}
}

func TestCompatibility_MissingInputs(t *testing.T) {
	w := DefaultWeights()

	got := Compatibility(domain.TrackFeatures{}, domain.TrackFeatures{}, w)
	assert.False(t, got.TempoCompatible)
	assert.Equal(t, camelot.DistanceIncompatible, got.HarmonicDistance)
	assert.Equal(t, 0.0, got.EnergyDelta, "absent energies default to the same neutral value")
	assert.GreaterOrEqual(t, got.Score, 0.0)
	assert.LessOrEqual(t, got.Score, 1.0)
}

func TestCompatibility_EnergyDelta(t *testing.T) {
	w := DefaultWeights()
	a := domain.TrackFeatures{BPM: 128, Key: "8A", Energy: domain.Float(0.9)}
	b := domain.TrackFeatures{BPM: 128, Key: "8A", Energy: domain.Float(0.5)}

	got := Compatibility(a, b, w)
	assert.InDelta(t, 0.4, got.EnergyDelta, 1e-9)
}

func TestCompatibility_EnergyTolerance(t *testing.T) {
	// Energies 0.9/0.5 sit exactly 0.1 past the default 0.3 bound.
	a := domain.TrackFeatures{BPM: 128, Key: "8A", Energy: domain.Float(0.9)}
	b := domain.TrackFeatures{BPM: 128, Key: "8A", Energy: domain.Float(0.5)}

	strict := DefaultWeights()
	strict.EnergyTolerance = 0
	got := Compatibility(a, b, strict)
	assert.False(t, got.EnergyCompatible)
	assert.Equal(t, domain.TransitionHarmonicMix, got.Transition)

	loose := DefaultWeights()
	loose.EnergyTolerance = 1
	got = Compatibility(a, b, loose)
	assert.True(t, got.EnergyCompatible)
	assert.Equal(t, domain.TransitionBlend, got.Transition,
		"a wide tolerance widens the blend band")
}

func TestCompatibility_EnergyCompatibleBoundary(t *testing.T) {
	// Exactly representable energies keep the delta precise at the bound.
	w := DefaultWeights()
	w.EnergyTolerance = 0.25
	a := domain.TrackFeatures{BPM: 128, Key: "8A", Energy: domain.Float(0.75)}

	atBound := Compatibility(a, domain.TrackFeatures{BPM: 128, Key: "8A", Energy: domain.Float(0.5)}, w)
	assert.True(t, atBound.EnergyCompatible, "delta equal to the tolerance is inclusive")

	pastBound := Compatibility(a, domain.TrackFeatures{BPM: 128, Key: "8A", Energy: domain.Float(0.25)}, w)
	assert.False(t, pastBound.EnergyCompatible)
}

func TestTempoScore(t *testing.T) {
	tol := DefaultWeights().TempoTolerance

	same := TempoScore(domain.TrackFeatures{BPM: 128}, domain.TrackFeatures{BPM: 128}, tol)
	assert.Equal(t, 1.0, same)

	near := TempoScore(domain.TrackFeatures{BPM: 128}, domain.TrackFeatures{BPM: 130}, tol)
	assert.Greater(t, near, 0.5)

	far := TempoScore(domain.TrackFeatures{BPM: 128}, domain.TrackFeatures{BPM: 80}, tol)
	assert.Equal(t, 0.0, far)

	missing := TempoScore(domain.TrackFeatures{}, domain.TrackFeatures{BPM: 128}, tol)
	assert.Equal(t, 0.0, missing)
}
