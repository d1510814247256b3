package camelot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want int
	}{
		{"same key", Key{8, ModeMinor}, Key{8, ModeMinor}, DistancePerfect},
		{"relative major minor", Key{8, ModeMinor}, Key{8, ModeMajor}, DistanceAdjacent},
		{"adjacent up same mode", Key{8, ModeMinor}, Key{9, ModeMinor}, DistanceAdjacent},
		{"adjacent down same mode", Key{8, ModeMajor}, Key{7, ModeMajor}, DistanceAdjacent},
		{"wrap 12 to 1", Key{12, ModeMinor}, Key{1, ModeMinor}, DistanceAdjacent},
		{"wrap 1 to 12", Key{1, ModeMajor}, Key{12, ModeMajor}, DistanceAdjacent},
		{"two steps same mode", Key{8, ModeMinor}, Key{10, ModeMinor}, DistanceNear},
		{"two steps wrapped", Key{1, ModeMinor}, Key{11, ModeMinor}, DistanceNear},
		{"adjacent cross mode", Key{8, ModeMinor}, Key{9, ModeMajor}, DistanceIncompatible},
		{"far same mode", Key{8, ModeMinor}, Key{2, ModeMinor}, DistanceIncompatible},
		{"invalid key", Key{}, Key{8, ModeMinor}, DistanceIncompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestDistance_IdentityAcrossWheel(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for _, m := range []Mode{ModeMinor, ModeMajor} {
			k := Key{n, m}
			assert.Equal(t, DistancePerfect, Distance(k, k))
		}
	}
}

func TestDistanceLabels(t *testing.T) {
	assert.Equal(t, DistancePerfect, DistanceLabels("8A", "Am"))
	assert.Equal(t, DistanceAdjacent, DistanceLabels("8A", "8B"))
	assert.Equal(t, DistanceIncompatible, DistanceLabels("8A", "garbage"))
	assert.Equal(t, DistanceIncompatible, DistanceLabels("", "8A"))
}

func TestCompatible(t *testing.T) {
	got := Compatible(Key{1, ModeMinor})
	want := []Key{
		{1, ModeMinor},
		{1, ModeMajor},
		{12, ModeMinor},
		{2, ModeMinor},
		{11, ModeMinor},
		{3, ModeMinor},
	}
	assert.Equal(t, want, got)

	for _, k := range got {
		assert.LessOrEqual(t, Distance(Key{1, ModeMinor}, k), DistanceNear)
	}

	assert.Nil(t, Compatible(Key{}))
}
