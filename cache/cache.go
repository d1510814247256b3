// Package cache provides a bounded, concurrency-safe store for computed
// HAMMS vectors, keyed by a hash of the raw track features. It sits outside
// the pure computation functions so the core stays stateless.
package cache

import (
	"hash/fnv"
	"math"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
)

// DefaultSize bounds the cache when the caller does not choose one.
const DefaultSize = 1024

// Vectors is a fixed-size LRU of computed vectors. Safe for concurrent use.
type Vectors struct {
	lru *lru.Cache[uint64, domain.HAMMSVector]
}

// NewVectors creates a cache holding at most size vectors.
func NewVectors(size int) (*Vectors, error) {
	if size <= 0 {
		size = DefaultSize
	}
	l, err := lru.New[uint64, domain.HAMMSVector](size)
	if err != nil {
		return nil, err
	}
	return &Vectors{lru: l}, nil
}

// Get returns the cached vector for the given features, if present.
func (c *Vectors) Get(f domain.TrackFeatures) (domain.HAMMSVector, bool) {
	return c.lru.Get(Key(f))
}

// Add stores a computed vector under the feature hash.
func (c *Vectors) Add(f domain.TrackFeatures, v domain.HAMMSVector) {
	c.lru.Add(Key(f), v)
}

// Len returns the number of cached vectors.
func (c *Vectors) Len() int { return c.lru.Len() }

// Key hashes the full feature set into a cache key. Genre, BPM, Key and
// Energy drive the encoding; the identity fields are hashed too so distinct
// tracks never share an entry.
func Key(f domain.TrackFeatures) uint64 {
	h := fnv.New64a()
	for _, s := range []string{f.Title, f.Artist, f.Album, f.Genre, f.Key} {
		_, _ = h.Write([]byte(s))
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte(strconv.FormatUint(math.Float64bits(f.BPM), 16)))
	_, _ = h.Write([]byte{0})
	if f.Energy != nil {
		_, _ = h.Write([]byte(strconv.FormatUint(math.Float64bits(*f.Energy), 16)))
	}
	return h.Sum64()
}
