package planner

import (
	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/mix"
)

// Suggested crossfade tiers per transition type, in seconds. A blend earns a
// long overlap; a creative transition is closer to a cut.
var overlapSeconds = map[domain.TransitionType]float64{
	domain.TransitionBlend:       32,
	domain.TransitionHarmonicMix: 16,
	domain.TransitionTempo:       8,
	domain.TransitionCreative:    4,
}

// Annotate attaches a transition descriptor to every entry but the last,
// describing how to mix it into its successor. It is a pure function of the
// final ordering: the input slice is not modified and never reordered.
func Annotate(entries []domain.PlaylistEntry, weights mix.Weights) []domain.PlaylistEntry {
	out := make([]domain.PlaylistEntry, len(entries))
	copy(out, entries)

	for i := 0; i < len(out)-1; i++ {
		compat := mix.Compatibility(out[i].Track, out[i+1].Track, weights)
		out[i].Transition = &domain.TransitionDescriptor{
			Type:           compat.Transition,
			OverlapSeconds: overlapSeconds[compat.Transition],
			Score:          compat.Score,
		}
	}
	if len(out) > 0 {
		out[len(out)-1].Transition = nil
	}
	return out
}
