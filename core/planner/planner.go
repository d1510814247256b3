// Package planner builds ordered playlists: a greedy sequential selector
// that follows a target energy curve while maximizing pairwise transition
// quality, and an optimizer that annotates the finished order.
package planner

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/FmBlueSystem/MAPOfice-sub001/core/analysis"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/curve"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/mix"
)

// Weights blends the candidate scoring terms. Defaults follow the
// documented 40/25/20/10/5 split; they are tunable, not invariants.
type Weights struct {
	Compatibility float64
	EnergyTarget  float64
	Tempo         float64
	Diversity     float64
	Constraint    float64
}

// DefaultWeights returns the documented planner blend.
func DefaultWeights() Weights {
	return Weights{
		Compatibility: 0.40,
		EnergyTarget:  0.25,
		Tempo:         0.20,
		Diversity:     0.10,
		Constraint:    0.05,
	}
}

// Request carries the playlist parameters supplied by the caller.
type Request struct {
	// Seeds are zero, one or two tracks fixed at the head of the playlist.
	Seeds []domain.TrackFeatures

	// Length is the desired playlist length including seeds.
	Length int

	// Shape selects a built-in energy curve; Profile, when set, overrides
	// it with a staged trajectory.
	Shape   curve.Shape
	Profile []curve.Segment

	// Exclude marks candidates the caller would rather avoid. Excluded
	// tracks are penalized, not removed; the planner may still pick one
	// when nothing better remains.
	Exclude func(domain.TrackFeatures) bool

	// TempoTolerance overrides the scoring tolerance when positive.
	TempoTolerance float64
}

// Planner selects track sequences. The zero value is not usable; construct
// with New.
type Planner struct {
	mixWeights mix.Weights
	weights    Weights
	logger     zerolog.Logger
}

// New returns a Planner using the given scoring constants.
func New(mixWeights mix.Weights, weights Weights, logger zerolog.Logger) *Planner {
	return &Planner{mixWeights: mixWeights, weights: weights, logger: logger}
}

// Plan builds an ordered playlist from the request and candidate pool.
//
// It seeds the output, then greedily fills each curve position with the
// highest-scoring unused candidate, breaking ties by candidate order. An
// exhausted pool is not an error: the partial playlist is returned with
// Exhausted set. Malformed parameters fail fast before any scoring.
func (p *Planner) Plan(req Request, candidates []domain.TrackFeatures) (domain.Playlist, error) {
	if req.Length <= 0 {
		return domain.Playlist{}, &domain.RequestError{Param: "length", Reason: "must be positive"}
	}
	if len(req.Seeds) > 2 {
		return domain.Playlist{}, &domain.RequestError{Param: "seeds", Reason: "at most two"}
	}

	targets, err := p.targets(req)
	if err != nil {
		return domain.Playlist{}, err
	}

	mixWeights := p.mixWeights
	if req.TempoTolerance > 0 {
		mixWeights.TempoTolerance = req.TempoTolerance
	}

	playlist := domain.Playlist{Requested: req.Length}
	for _, seed := range req.Seeds {
		if len(playlist.Entries) == req.Length {
			break
		}
		playlist.Entries = append(playlist.Entries, p.entry(seed))
	}

	pool := make([]domain.TrackFeatures, len(candidates))
	copy(pool, candidates)

	for len(playlist.Entries) < req.Length {
		if len(pool) == 0 {
			playlist.Exhausted = true
			p.logger.Debug().
				Int("requested", req.Length).
				Int("selected", len(playlist.Entries)).
				Msg("candidate pool exhausted")
			break
		}

		pos := len(playlist.Entries)
		best := p.pick(playlist.Entries, pool, targets[pos], mixWeights, req.Exclude)
		playlist.Entries = append(playlist.Entries, p.entry(pool[best]))
		pool = append(pool[:best], pool[best+1:]...)
	}

	return playlist, nil
}

func (p *Planner) targets(req Request) ([]float64, error) {
	if len(req.Profile) > 0 {
		return curve.Profile(req.Length, req.Profile)
	}
	shape := req.Shape
	if shape == "" {
		shape = curve.Ascending
	}
	return curve.Generate(req.Length, shape)
}

// pick returns the pool index of the best candidate for the next position.
// Strictly-greater comparison keeps ties on the earliest candidate.
func (p *Planner) pick(entries []domain.PlaylistEntry, pool []domain.TrackFeatures, target float64, mixWeights mix.Weights, exclude func(domain.TrackFeatures) bool) int {
	best, bestScore := 0, math.Inf(-1)
	for i, c := range pool {
		var score float64
		if len(entries) == 0 {
			// No predecessor: pure energy-target match.
			score = 1 - math.Abs(c.EnergyOr(0.5)-target)
		} else {
			score = p.score(entries[len(entries)-1].Track, c, target, mixWeights, exclude)
		}
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

func (p *Planner) score(prev, c domain.TrackFeatures, target float64, mixWeights mix.Weights, exclude func(domain.TrackFeatures) bool) float64 {
	compat := mix.Compatibility(prev, c, mixWeights)
	score := p.weights.Compatibility * compat.Score
	score += p.weights.EnergyTarget * (1 - math.Abs(c.EnergyOr(0.5)-target))
	score += p.weights.Tempo * mix.TempoScore(prev, c, mixWeights.TempoTolerance)
	if diverse(prev, c) {
		score += p.weights.Diversity
	}
	if exclude == nil || !exclude(c) {
		score += p.weights.Constraint
	}
	return score
}

// diverse reports whether the candidate moves away from the previous entry's
// artist and album. Unknown labels never count as a repeat.
func diverse(prev, c domain.TrackFeatures) bool {
	if prev.Artist != "" && prev.Artist == c.Artist {
		return false
	}
	if prev.Album != "" && prev.Album == c.Album {
		return false
	}
	return true
}

func (p *Planner) entry(t domain.TrackFeatures) domain.PlaylistEntry {
	v, err := analysis.BuildVector(t)
	if err != nil {
		// The degenerate zero vector still travels with the entry.
		p.logger.Warn().Err(err).Str("title", t.Title).Msg("vector validation failed")
	}
	return domain.PlaylistEntry{Track: t, Vector: v}
}
