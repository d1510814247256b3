// Package tags provides a file-tag implementation of the metadata provider
// port: tempo, key, energy and genre read from embedded audio tags. It is a
// reference inbound collaborator; the analysis core never imports it.
package tags

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/dhowden/tag"

	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
)

// Comment conventions written by key-analysis tools: "8A - Energy 6".
var (
	keyRegex    = regexp.MustCompile(`(\d+[AB])\s*-\s*Energy`)
	energyRegex = regexp.MustCompile(`Energy\s+(\d+)`)
)

// Provider reads TrackFeatures from audio file tags. Relative refs are
// resolved against BaseDir.
type Provider struct {
	BaseDir string
}

// TrackFeatures reads the tags of the referenced file. Missing fields stay
// at their zero values; the core tolerates any subset.
func (p *Provider) TrackFeatures(ctx context.Context, ref string) (domain.TrackFeatures, error) {
	if err := ctx.Err(); err != nil {
		return domain.TrackFeatures{}, err
	}

	path := ref
	if !filepath.IsAbs(ref) && p.BaseDir != "" {
		path = filepath.Join(p.BaseDir, ref)
	}

	file, err := os.Open(path)
	if err != nil {
		return domain.TrackFeatures{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return domain.TrackFeatures{}, fmt.Errorf("failed to read metadata: %w", err)
	}

	f := domain.TrackFeatures{
		Title:  metadata.Title(),
		Artist: metadata.Artist(),
		Album:  metadata.Album(),
		Genre:  metadata.Genre(),
	}
	if f.Title == "" {
		f.Title = filepath.Base(ref)
	}

	f.BPM = rawBPM(metadata.Raw())

	comments := metadata.Comment()
	if key := extractKey(comments); key != "" {
		f.Key = key
	} else if raw := metadata.Raw(); raw != nil {
		if v, ok := raw["TKEY"].(string); ok {
			f.Key = v
		}
	}
	if e, ok := extractEnergy(comments); ok {
		f.Energy = domain.Float(e)
	}

	return f, nil
}

// rawBPM digs the tempo out of format-specific tag names.
func rawBPM(raw map[string]interface{}) float64 {
	if raw == nil {
		return 0
	}
	for _, key := range []string{"BPM", "TBPM", "bpm", "tempo"} {
		val, exists := raw[key]
		if !exists {
			continue
		}
		var bpm float64
		switch v := val.(type) {
		case string:
			bpm, _ = strconv.ParseFloat(v, 64)
		case int:
			bpm = float64(v)
		case float64:
			bpm = v
		}
		if bpm > 0 {
			return bpm
		}
	}
	return 0
}

// extractKey pulls a Camelot code out of the comment convention.
func extractKey(comments string) string {
	matches := keyRegex.FindStringSubmatch(comments)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// extractEnergy pulls the 1-10 energy level out of the comment convention,
// scaled into [0,1].
func extractEnergy(comments string) (float64, bool) {
	matches := energyRegex.FindStringSubmatch(comments)
	if len(matches) > 1 {
		level, err := strconv.Atoi(matches[1])
		if err == nil && level >= 1 && level <= 10 {
			return float64(level) / 10, true
		}
	}
	return 0, false
}
