package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
)

func TestVectors(t *testing.T) {
	c, err := NewVectors(8)
	require.NoError(t, err)

	f := domain.TrackFeatures{Title: "one", Artist: "a", BPM: 128, Key: "8A"}
	_, ok := c.Get(f)
	assert.False(t, ok)

	v := domain.HAMMSVector{Confidence: 0.8}
	v.Values[0] = 0.4857142857142857
	c.Add(f, v)

	got, ok := c.Get(f)
	require.True(t, ok)
	assert.Equal(t, v, got)
	assert.Equal(t, 1, c.Len())
}

func TestVectors_Eviction(t *testing.T) {
	c, err := NewVectors(2)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		f := domain.TrackFeatures{Title: fmt.Sprintf("t%d", i), BPM: 128}
		c.Add(f, domain.HAMMSVector{Confidence: float64(i)})
	}

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get(domain.TrackFeatures{Title: "t0", BPM: 128})
	assert.False(t, ok, "oldest entry is evicted first")
	_, ok = c.Get(domain.TrackFeatures{Title: "t2", BPM: 128})
	assert.True(t, ok)
}

func TestVectors_DefaultSize(t *testing.T) {
	c, err := NewVectors(0)
	require.NoError(t, err)
	c.Add(domain.TrackFeatures{Title: "one"}, domain.HAMMSVector{})
	assert.Equal(t, 1, c.Len())
}

func TestKey(t *testing.T) {
	base := domain.TrackFeatures{Title: "one", Artist: "a", BPM: 128, Key: "8A", Energy: domain.Float(0.5)}

	assert.Equal(t, Key(base), Key(base), "hash is stable")

	variants := []domain.TrackFeatures{
		{Title: "two", Artist: "a", BPM: 128, Key: "8A", Energy: domain.Float(0.5)},
		{Title: "one", Artist: "b", BPM: 128, Key: "8A", Energy: domain.Float(0.5)},
		{Title: "one", Artist: "a", BPM: 129, Key: "8A", Energy: domain.Float(0.5)},
		{Title: "one", Artist: "a", BPM: 128, Key: "9A", Energy: domain.Float(0.5)},
		{Title: "one", Artist: "a", BPM: 128, Key: "8A", Energy: domain.Float(0.6)},
		{Title: "one", Artist: "a", BPM: 128, Key: "8A"},
	}
	for _, v := range variants {
		assert.NotEqual(t, Key(base), Key(v), "%+v must hash differently", v)
	}
}

func TestKey_FieldBoundaries(t *testing.T) {
	// The separator keeps adjacent fields from running together.
	a := domain.TrackFeatures{Title: "ab", Artist: "c"}
	b := domain.TrackFeatures{Title: "a", Artist: "bc"}
	assert.NotEqual(t, Key(a), Key(b))
}
