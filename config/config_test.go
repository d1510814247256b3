package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FmBlueSystem/MAPOfice-sub001/core/mix"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/planner"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, mix.DefaultWeights(), cfg.Mix)
	assert.Equal(t, planner.DefaultWeights(), cfg.Planner)
	assert.Equal(t, 1024, cfg.CacheSize)
	assert.Equal(t, 4, cfg.Parallelism)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapofice.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cache_size: 64
similarity:
  euclidean: 0.7
  cosine: 0.3
compatibility:
  tempo_tolerance: 0.9
dimensions:
  bpm: 2.0
planner:
  diversity: 0.2
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.CacheSize)
	assert.Equal(t, 0.7, cfg.Mix.EuclideanBlend)
	assert.Equal(t, 0.3, cfg.Mix.CosineBlend)
	assert.Equal(t, 0.9, cfg.Mix.TempoTolerance)
	assert.Equal(t, 2.0, cfg.Mix.Dimension[0])
	assert.Equal(t, 0.2, cfg.Planner.Diversity)

	// Untouched keys keep their defaults.
	assert.Equal(t, 4, cfg.Parallelism)
	assert.Equal(t, mix.DefaultWeights().Dimension[1], cfg.Mix.Dimension[1])
	assert.Equal(t, planner.DefaultWeights().Compatibility, cfg.Planner.Compatibility)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("MAPOFICE_CACHE_SIZE", "5")
	t.Setenv("MAPOFICE_PLANNER_TEMPO", "0.33")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.CacheSize)
	assert.Equal(t, 0.33, cfg.Planner.Tempo)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_size: [\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
