package camelot

// Distance grades, lower is smoother. Anything not covered by a documented
// mixing move gets DistanceIncompatible.
const (
	DistancePerfect      = 0  // same key
	DistanceAdjacent     = 1  // +-1 position same mode, or relative major/minor
	DistanceNear         = 2  // +-2 positions same mode
	DistanceIncompatible = 10 // everything else, including invalid keys
)

// Distance returns the harmonic distance between two wheel positions.
// It is symmetric and Distance(k, k) == 0 for any valid k. Invalid keys
// always yield DistanceIncompatible.
func Distance(a, b Key) int {
	if !a.Valid() || !b.Valid() {
		return DistanceIncompatible
	}

	if a.Number == b.Number {
		if a.Mode == b.Mode {
			return DistancePerfect
		}
		// Relative major/minor shares every note.
		return DistanceAdjacent
	}

	if a.Mode != b.Mode {
		return DistanceIncompatible
	}

	diff := a.Number - b.Number
	if diff < 0 {
		diff = -diff
	}
	// Ring of 12: 12 and 1 are adjacent.
	if circular := 12 - diff; circular < diff {
		diff = circular
	}

	switch diff {
	case 1:
		return DistanceAdjacent
	case 2:
		return DistanceNear
	default:
		return DistanceIncompatible
	}
}

// DistanceLabels computes the distance between two raw key labels, treating
// unparseable labels as incompatible.
func DistanceLabels(a, b string) int {
	ka, errA := Parse(a)
	kb, errB := Parse(b)
	if errA != nil || errB != nil {
		return DistanceIncompatible
	}
	return Distance(ka, kb)
}

// Compatible returns the keys mixable from k without clashing, ordered by
// distance: the key itself, its relative, then the ring neighbors.
func Compatible(k Key) []Key {
	if !k.Valid() {
		return nil
	}
	return []Key{
		k,
		k.Relative(),
		k.Neighbor(-1),
		k.Neighbor(1),
		k.Neighbor(-2),
		k.Neighbor(2),
	}
}
