// Package ports declares the collaborator interfaces at the boundary of the
// analysis core. The core never performs I/O itself: metadata arrives
// through an inbound provider and results leave through an outbound store.
package ports

import (
	"context"

	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
)

// MetadataProvider supplies raw track metadata, typically from an audio
// analysis collaborator or file tags. Any subset of the features may be
// missing; the core tolerates all of them.
type MetadataProvider interface {
	TrackFeatures(ctx context.Context, ref string) (domain.TrackFeatures, error)
}

// VectorStore persists analysis results for later retrieval. Implementations
// return domain.ErrNotFound for unknown keys.
type VectorStore interface {
	SaveVector(ctx context.Context, trackKey string, v domain.HAMMSVector) error
	GetVector(ctx context.Context, trackKey string) (domain.HAMMSVector, error)
	SavePlaylist(ctx context.Context, p domain.Playlist) error
	GetPlaylist(ctx context.Context, id string) (domain.Playlist, error)
}
