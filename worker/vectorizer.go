// Package worker provides bounded parallel batch processing for track
// vectorization. The core itself is pure and single-threaded; this is the
// caller-side parallelism the resource model allows.
package worker

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/FmBlueSystem/MAPOfice-sub001/cache"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/analysis"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
)

// Vectorizer computes HAMMS vectors for batches of tracks with a bounded
// number of goroutines, sharing an optional vector cache.
type Vectorizer struct {
	parallelism int
	vectors     *cache.Vectors
	logger      zerolog.Logger
}

// NewVectorizer creates a Vectorizer running at most parallelism encodes
// concurrently. A nil cache disables caching.
func NewVectorizer(parallelism int, vectors *cache.Vectors, logger zerolog.Logger) *Vectorizer {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Vectorizer{parallelism: parallelism, vectors: vectors, logger: logger}
}

// Vectors computes one vector per input track, in input order. Validation
// failures degrade to the zero vector (confidence 0) and are logged rather
// than aborting the batch; only context cancellation returns an error.
func (w *Vectorizer) Vectors(ctx context.Context, tracks []domain.TrackFeatures) ([]domain.HAMMSVector, error) {
	out := make([]domain.HAMMSVector, len(tracks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.parallelism)

	for i, t := range tracks {
		i, t := i, t
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if w.vectors != nil {
				if v, ok := w.vectors.Get(t); ok {
					out[i] = v
					return nil
				}
			}

			v, err := analysis.BuildVector(t)
			if err != nil {
				w.logger.Warn().Err(err).Str("title", t.Title).Msg("vector validation failed")
				out[i] = v
				return nil
			}
			if w.vectors != nil {
				w.vectors.Add(t, v)
			}
			out[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
