package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/mix"
)

func entriesFor(tracks ...domain.TrackFeatures) []domain.PlaylistEntry {
	out := make([]domain.PlaylistEntry, len(tracks))
	for i, t := range tracks {
		out[i] = domain.PlaylistEntry{Track: t}
	}
	return out
}

func TestAnnotate(t *testing.T) {
	w := mix.DefaultWeights()
	entries := entriesFor(
		track("t1", "a1", 128, "8A", 0.5),
		track("t2", "a2", 129, "8A", 0.55),
		track("t3", "a3", 100, "3B", 0.2),
	)

	got := Annotate(entries, w)

	require.Len(t, got, len(entries), "length preserved")
	for i := range got {
		assert.Equal(t, entries[i].Track.Title, got[i].Track.Title, "order preserved")
	}

	require.NotNil(t, got[0].Transition)
	require.NotNil(t, got[1].Transition)
	assert.Nil(t, got[2].Transition, "last entry has no outgoing transition")

	assert.Equal(t, domain.TransitionBlend, got[0].Transition.Type)
	assert.Equal(t, 32.0, got[0].Transition.OverlapSeconds)
	assert.Greater(t, got[0].Transition.Score, got[1].Transition.Score)
}

func TestAnnotate_DoesNotMutateInput(t *testing.T) {
	w := mix.DefaultWeights()
	entries := entriesFor(
		track("t1", "a1", 128, "8A", 0.5),
		track("t2", "a2", 129, "8A", 0.55),
	)

	_ = Annotate(entries, w)
	assert.Nil(t, entries[0].Transition, "input slice must stay untouched")
}

func TestAnnotate_Degenerate(t *testing.T) {
	w := mix.DefaultWeights()

	assert.Empty(t, Annotate(nil, w))

	single := Annotate(entriesFor(track("only", "a1", 128, "8A", 0.5)), w)
	require.Len(t, single, 1)
	assert.Nil(t, single[0].Transition)
}
