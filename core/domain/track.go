// Package domain holds the pure types of the HAMMS analysis core.
package domain

// TrackFeatures is the raw per-track metadata supplied by an analysis
// collaborator. Any subset may be missing: BPM <= 0 means unknown tempo,
// an empty Key means unknown key, a nil Energy means unknown energy.
// Title, Artist and Album are used only for diversity heuristics and display.
type TrackFeatures struct {
	Title  string
	Artist string
	Album  string // optional
	Genre  string
	BPM    float64
	Key    string   // Camelot code ("8A") or pitch+mode ("Am", "C major")
	Energy *float64 // [0,1] when present
}

// Float is a convenience for building optional scalar fields.
func Float(v float64) *float64 { return &v }

// HasTempo reports whether the track carries a usable tempo.
func (t TrackFeatures) HasTempo() bool { return t.BPM > 0 }

// HasKey reports whether the track carries a key label.
func (t TrackFeatures) HasKey() bool { return t.Key != "" }

// EnergyOr returns the track energy, or def when energy is unknown.
func (t TrackFeatures) EnergyOr(def float64) float64 {
	if t.Energy == nil {
		return def
	}
	return *t.Energy
}
