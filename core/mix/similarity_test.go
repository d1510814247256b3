package mix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FmBlueSystem/MAPOfice-sub001/core/analysis"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
)

func vectorFor(t *testing.T, f domain.TrackFeatures) domain.HAMMSVector {
	t.Helper()
	v, err := analysis.BuildVector(f)
	require.NoError(t, err)
	return v
}

func TestSimilarity_Identity(t *testing.T) {
	w := DefaultWeights()

	vectors := []domain.HAMMSVector{
		{}, // zero vector
		vectorFor(t, domain.TrackFeatures{BPM: 128, Key: "8A", Genre: "techno", Energy: domain.Float(0.8)}),
		vectorFor(t, domain.TrackFeatures{Genre: "jazz"}),
	}
	for _, v := range vectors {
		assert.Equal(t, 1.0, Similarity(v, v, w), "similarity(v, v) must be exactly 1")
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	w := DefaultWeights()
	a := vectorFor(t, domain.TrackFeatures{BPM: 128, Key: "8A", Genre: "techno", Energy: domain.Float(0.8)})
	b := vectorFor(t, domain.TrackFeatures{BPM: 90, Key: "3B", Genre: "jazz", Energy: domain.Float(0.3)})

	assert.Equal(t, Similarity(a, b, w), Similarity(b, a, w))
}

func TestSimilarity_Range(t *testing.T) {
	w := DefaultWeights()
	var lo, hi domain.HAMMSVector
	for i := range hi.Values {
		hi.Values[i] = 1
	}

	s := Similarity(lo, hi, w)
	assert.GreaterOrEqual(t, s, 0.0)
	assert.LessOrEqual(t, s, 1.0)
}

func TestSimilarity_OrderedByCloseness(t *testing.T) {
	w := DefaultWeights()
	anchor := vectorFor(t, domain.TrackFeatures{BPM: 128, Key: "8A", Genre: "techno", Energy: domain.Float(0.8)})
	near := vectorFor(t, domain.TrackFeatures{BPM: 126, Key: "8A", Genre: "techno", Energy: domain.Float(0.75)})
	far := vectorFor(t, domain.TrackFeatures{BPM: 70, Key: "3B", Genre: "classical", Energy: domain.Float(0.1)})

	assert.Greater(t, Similarity(anchor, near, w), Similarity(anchor, far, w))
}
