// Package analysis encodes raw track metadata into HAMMS vectors: twelve
// normalized dimensions assembled by the builder from pure per-dimension
// encoders.
package analysis

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed genres.yaml
var genresYAML []byte

// GenreProfile holds the base scalars for the nine genre-derived dimensions.
type GenreProfile struct {
	Danceability       float64 `yaml:"danceability"`
	Valence            float64 `yaml:"valence"`
	Acousticness       float64 `yaml:"acousticness"`
	Instrumentalness   float64 `yaml:"instrumentalness"`
	RhythmicPattern    float64 `yaml:"rhythmic_pattern"`
	SpectralCentroid   float64 `yaml:"spectral_centroid"`
	TempoStability     float64 `yaml:"tempo_stability"`
	HarmonicComplexity float64 `yaml:"harmonic_complexity"`
	DynamicRange       float64 `yaml:"dynamic_range"`
}

type genreTable struct {
	Defaults GenreProfile            `yaml:"defaults"`
	Genres   map[string]GenreProfile `yaml:"genres"`
}

var (
	profiles       genreTable
	labelFolder    = cases.Lower(language.Und)
	defaultProfile GenreProfile
)

func init() {
	if err := yaml.Unmarshal(genresYAML, &profiles); err != nil {
		panic(fmt.Sprintf("analysis: embedded genre table: %v", err))
	}
	defaultProfile = profiles.Defaults
}

// ProfileFor looks up the base profile for a genre label. Empty or unknown
// labels resolve to the neutral defaults; lookup is case-insensitive.
func ProfileFor(genre string) GenreProfile {
	label := strings.TrimSpace(labelFolder.String(genre))
	if label == "" {
		return defaultProfile
	}
	if p, ok := profiles.Genres[label]; ok {
		return p
	}
	return defaultProfile
}

// KnownGenres returns the labels present in the profile table.
func KnownGenres() []string {
	out := make([]string, 0, len(profiles.Genres))
	for g := range profiles.Genres {
		out = append(out, g)
	}
	return out
}
