// Package config resolves the tunable constants of the analysis core:
// data-first defaults, optionally overridden from a YAML file or
// MAPOFICE_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/mix"
	"github.com/FmBlueSystem/MAPOfice-sub001/core/planner"
)

// Config carries every tunable of the core in one place.
type Config struct {
	Mix         mix.Weights
	Planner     planner.Weights
	CacheSize   int
	Parallelism int
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		Mix:         mix.DefaultWeights(),
		Planner:     planner.DefaultWeights(),
		CacheSize:   1024,
		Parallelism: 4,
	}
}

// Load reads overrides from the given YAML file (skipped when path is
// empty) and from the environment, on top of Default. Unknown keys are
// ignored; an unreadable or malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("mapofice")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg.CacheSize = v.GetInt("cache_size")
	cfg.Parallelism = v.GetInt("parallelism")

	cfg.Mix.EuclideanBlend = v.GetFloat64("similarity.euclidean")
	cfg.Mix.CosineBlend = v.GetFloat64("similarity.cosine")
	cfg.Mix.TempoWeight = v.GetFloat64("compatibility.tempo")
	cfg.Mix.HarmonicWeight = v.GetFloat64("compatibility.harmonic")
	cfg.Mix.EnergyWeight = v.GetFloat64("compatibility.energy")
	cfg.Mix.TempoTolerance = v.GetFloat64("compatibility.tempo_tolerance")
	cfg.Mix.EnergyTolerance = v.GetFloat64("compatibility.energy_tolerance")

	for i, name := range domain.DimensionNames {
		cfg.Mix.Dimension[i] = v.GetFloat64("dimensions." + name)
	}

	cfg.Planner.Compatibility = v.GetFloat64("planner.compatibility")
	cfg.Planner.EnergyTarget = v.GetFloat64("planner.energy_target")
	cfg.Planner.Tempo = v.GetFloat64("planner.tempo")
	cfg.Planner.Diversity = v.GetFloat64("planner.diversity")
	cfg.Planner.Constraint = v.GetFloat64("planner.constraint")

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("cache_size", cfg.CacheSize)
	v.SetDefault("parallelism", cfg.Parallelism)

	v.SetDefault("similarity.euclidean", cfg.Mix.EuclideanBlend)
	v.SetDefault("similarity.cosine", cfg.Mix.CosineBlend)
	v.SetDefault("compatibility.tempo", cfg.Mix.TempoWeight)
	v.SetDefault("compatibility.harmonic", cfg.Mix.HarmonicWeight)
	v.SetDefault("compatibility.energy", cfg.Mix.EnergyWeight)
	v.SetDefault("compatibility.tempo_tolerance", cfg.Mix.TempoTolerance)
	v.SetDefault("compatibility.energy_tolerance", cfg.Mix.EnergyTolerance)

	for i, name := range domain.DimensionNames {
		v.SetDefault("dimensions."+name, cfg.Mix.Dimension[i])
	}

	v.SetDefault("planner.compatibility", cfg.Planner.Compatibility)
	v.SetDefault("planner.energy_target", cfg.Planner.EnergyTarget)
	v.SetDefault("planner.tempo", cfg.Planner.Tempo)
	v.SetDefault("planner.diversity", cfg.Planner.Diversity)
	v.SetDefault("planner.constraint", cfg.Planner.Constraint)
}
