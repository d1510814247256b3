// Package services wires the analysis core end to end: features in,
// annotated playlist out, with optional persistence through the store port.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/FmBlueSystem/MAPOfice-sub001/cache"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/analysis"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/mix"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/planner"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/ports"
)

// Orchestrator coordinates vector analysis, playlist planning and optional
// persistence.
type Orchestrator struct {
	weights mix.Weights
	planner *planner.Planner
	vectors *cache.Vectors
	store   ports.VectorStore
	logger  zerolog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithStore attaches an outbound persistence collaborator.
func WithStore(store ports.VectorStore) Option {
	return func(o *Orchestrator) { o.store = store }
}

// WithLogger attaches a structured logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// WithCache bounds the vector cache to the given size.
func WithCache(size int) Option {
	return func(o *Orchestrator) {
		if c, err := cache.NewVectors(size); err == nil {
			o.vectors = c
		}
	}
}

// NewOrchestrator constructs an Orchestrator with the given scoring
// constants and options.
func NewOrchestrator(weights mix.Weights, plannerWeights planner.Weights, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		weights: weights,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.vectors == nil {
		o.vectors, _ = cache.NewVectors(cache.DefaultSize)
	}
	o.planner = planner.New(weights, plannerWeights, o.logger)
	return o
}

// AnalyzeTrack returns the HAMMS vector for the given features, serving
// repeats from the bounded cache. A validation failure surfaces as a typed
// error alongside the degenerate zero vector.
func (o *Orchestrator) AnalyzeTrack(f domain.TrackFeatures) (domain.HAMMSVector, error) {
	if v, ok := o.vectors.Get(f); ok {
		return v, nil
	}
	v, err := analysis.BuildVector(f)
	if err != nil {
		o.logger.Warn().Err(err).Str("title", f.Title).Msg("vector validation failed")
		return v, err
	}
	o.vectors.Add(f, v)
	return v, nil
}

// Similarity scores two tracks through their cached vectors.
func (o *Orchestrator) Similarity(a, b domain.TrackFeatures) (float64, error) {
	va, err := o.AnalyzeTrack(a)
	if err != nil {
		return 0, fmt.Errorf("service: analyze first track: %w", err)
	}
	vb, err := o.AnalyzeTrack(b)
	if err != nil {
		return 0, fmt.Errorf("service: analyze second track: %w", err)
	}
	return mix.Similarity(va, vb, o.weights), nil
}

// Compatibility scores an ordered track pair for mixing.
func (o *Orchestrator) Compatibility(a, b domain.TrackFeatures) domain.CompatibilityScore {
	return mix.Compatibility(a, b, o.weights)
}

// BuildPlaylist plans an ordered playlist, annotates its transitions and,
// when a store is attached, persists the result.
func (o *Orchestrator) BuildPlaylist(ctx context.Context, name string, req planner.Request, candidates []domain.TrackFeatures) (domain.Playlist, error) {
	p, err := o.planner.Plan(req, candidates)
	if err != nil {
		return domain.Playlist{}, fmt.Errorf("service: plan playlist: %w", err)
	}

	p.ID = uuid.NewString()
	p.Name = name
	p.Entries = planner.Annotate(p.Entries, o.weights)

	if p.Exhausted {
		o.logger.Info().
			Str("playlist", p.ID).
			Int("requested", p.Requested).
			Int("selected", len(p.Entries)).
			Msg("playlist shorter than requested")
	}

	if o.store != nil {
		if err := o.store.SavePlaylist(ctx, p); err != nil {
			return domain.Playlist{}, fmt.Errorf("service: save playlist: %w", err)
		}
		for _, e := range p.Entries {
			key := e.Track.Artist + " - " + e.Track.Title
			if err := o.store.SaveVector(ctx, key, e.Vector); err != nil {
				return domain.Playlist{}, fmt.Errorf("service: save vector: %w", err)
			}
		}
	}

	return p, nil
}
