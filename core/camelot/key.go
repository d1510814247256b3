// Package camelot models the 24-position harmonic wheel used for DJ key
// compatibility: twelve positions in a ring, each with a minor ("A") and a
// major ("B") mode.
package camelot

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode identifies the minor ("A") or major ("B") side of the wheel.
type Mode byte

const (
	ModeMinor Mode = 'A'
	ModeMajor Mode = 'B'
)

// Key is one of the 24 wheel positions, such as 8A or 12B.
type Key struct {
	Number int // 1-12
	Mode   Mode
}

func (k Key) String() string {
	if k.Number == 0 {
		return ""
	}
	return fmt.Sprintf("%d%c", k.Number, k.Mode)
}

// Valid reports whether the key is one of the 24 defined positions.
func (k Key) Valid() bool {
	return k.Number >= 1 && k.Number <= 12 && (k.Mode == ModeMinor || k.Mode == ModeMajor)
}

// Relative returns the same position on the other side of the wheel,
// the relative major/minor pairing.
func (k Key) Relative() Key {
	other := ModeMajor
	if k.Mode == ModeMajor {
		other = ModeMinor
	}
	return Key{Number: k.Number, Mode: other}
}

// Neighbor returns the key at the given offset around the ring, same mode,
// wrapping at the 12/1 boundary.
func (k Key) Neighbor(offset int) Key {
	n := ((k.Number-1+offset)%12 + 12) % 12
	return Key{Number: n + 1, Mode: k.Mode}
}

// notation maps symbolic pitch+mode labels to wheel positions. Sharps and
// flats are both listed because upstream analyzers disagree on spelling.
var notation = map[string]Key{
	"b major": {1, ModeMajor}, "f# major": {2, ModeMajor}, "gb major": {2, ModeMajor},
	"db major": {3, ModeMajor}, "c# major": {3, ModeMajor},
	"ab major": {4, ModeMajor}, "g# major": {4, ModeMajor},
	"eb major": {5, ModeMajor}, "d# major": {5, ModeMajor},
	"bb major": {6, ModeMajor}, "a# major": {6, ModeMajor},
	"f major": {7, ModeMajor}, "c major": {8, ModeMajor}, "g major": {9, ModeMajor},
	"d major": {10, ModeMajor}, "a major": {11, ModeMajor}, "e major": {12, ModeMajor},

	"ab minor": {1, ModeMinor}, "g# minor": {1, ModeMinor},
	"eb minor": {2, ModeMinor}, "d# minor": {2, ModeMinor},
	"bb minor": {3, ModeMinor}, "a# minor": {3, ModeMinor},
	"f minor": {4, ModeMinor}, "c minor": {5, ModeMinor}, "g minor": {6, ModeMinor},
	"d minor": {7, ModeMinor}, "a minor": {8, ModeMinor}, "e minor": {9, ModeMinor},
	"b minor": {10, ModeMinor},
	"f# minor": {11, ModeMinor}, "gb minor": {11, ModeMinor},
	"db minor": {12, ModeMinor}, "c# minor": {12, ModeMinor},
}

// Parse converts a key label into a wheel position. It accepts Camelot codes
// ("8A", "12b") and symbolic pitch+mode forms ("Am", "C major", "F#m",
// "Eb minor").
func Parse(input string) (Key, error) {
	cleaned := strings.TrimSpace(input)
	if cleaned == "" {
		return Key{}, fmt.Errorf("camelot: empty key")
	}

	if k, ok := parseCode(cleaned); ok {
		return k, nil
	}
	if k, ok := parseNotation(cleaned); ok {
		return k, nil
	}
	return Key{}, fmt.Errorf("camelot: unrecognized key %q", input)
}

func parseCode(s string) (Key, bool) {
	upper := strings.ToUpper(s)
	if len(upper) < 2 || len(upper) > 3 {
		return Key{}, false
	}
	mode := Mode(upper[len(upper)-1])
	if mode != ModeMinor && mode != ModeMajor {
		return Key{}, false
	}
	number, err := strconv.Atoi(upper[:len(upper)-1])
	if err != nil || number < 1 || number > 12 {
		return Key{}, false
	}
	return Key{Number: number, Mode: mode}, true
}

func parseNotation(s string) (Key, bool) {
	lower := strings.ToLower(strings.Join(strings.Fields(s), " "))

	switch {
	case strings.HasSuffix(lower, " minor"), strings.HasSuffix(lower, " major"):
		// already canonical
	case strings.HasSuffix(lower, " min"), strings.HasSuffix(lower, "min"):
		lower = strings.TrimSpace(strings.TrimSuffix(lower, "min")) + " minor"
	case strings.HasSuffix(lower, " maj"), strings.HasSuffix(lower, "maj"):
		lower = strings.TrimSpace(strings.TrimSuffix(lower, "maj")) + " major"
	case strings.HasSuffix(lower, "m") && !strings.Contains(lower, " "):
		// Compact form: "am" -> "a minor", "f#m" -> "f# minor".
		lower = strings.TrimSuffix(lower, "m") + " minor"
	case !strings.Contains(lower, " "):
		// Bare pitch defaults to major: "c" -> "c major".
		lower += " major"
	}

	k, ok := notation[lower]
	return k, ok
}
