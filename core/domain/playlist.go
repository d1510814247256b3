package domain

// TransitionType classifies how one track should be mixed into the next.
type TransitionType string

const (
	// TransitionBlend is a long overlapping mix for near-identical tracks.
	TransitionBlend TransitionType = "blend"
	// TransitionHarmonicMix rides a compatible key through a medium overlap.
	TransitionHarmonicMix TransitionType = "harmonic_mix"
	// TransitionTempo bridges a workable tempo gap with a short overlap.
	TransitionTempo TransitionType = "tempo_transition"
	// TransitionCreative is everything else: quick cut, FX, or a drop swap.
	TransitionCreative TransitionType = "creative"
)

// CompatibilityScore is the composite DJ mix-compatibility verdict for an
// ordered track pair. Score is in [0,1].
type CompatibilityScore struct {
	TempoCompatible  bool
	HarmonicDistance int
	EnergyDelta      float64
	EnergyCompatible bool
	Score            float64
	Transition       TransitionType
}

// TransitionDescriptor annotates a playlist entry with how to sequence it
// into the next one. OverlapSeconds is a suggested crossfade tier.
type TransitionDescriptor struct {
	Type           TransitionType
	OverlapSeconds float64
	Score          float64
}

// PlaylistEntry is one positioned track in a planned playlist. Transition
// describes the relation to the next entry; the final entry carries nil.
type PlaylistEntry struct {
	Track      TrackFeatures
	Vector     HAMMSVector
	Transition *TransitionDescriptor
}

// Playlist is an ordered, optionally annotated track sequence. Requested
// holds the length the caller asked for; Exhausted is set when the candidate
// pool ran out first; a shortfall is reported here, never as an error.
type Playlist struct {
	ID        string
	Name      string
	Entries   []PlaylistEntry
	Requested int
	Exhausted bool
}

// Shortfall returns how many positions could not be filled.
func (p Playlist) Shortfall() int {
	if n := p.Requested - len(p.Entries); n > 0 {
		return n
	}
	return 0
}
