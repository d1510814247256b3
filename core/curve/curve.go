// Package curve generates target energy trajectories for playlists. Every
// shape is a closed-form function of position: the same (length, shape)
// always produces the same sequence.
package curve

import (
	"math"

	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
)

// Shape selects one of the built-in trajectory forms.
type Shape string

const (
	Ascending  Shape = "ascending"
	Descending Shape = "descending"
	Peak       Shape = "peak"
	Wave       Shape = "wave"
	Flat       Shape = "flat"
)

// Bounds of the generated trajectories. Curves never pin a set to total
// silence or total intensity.
const (
	floorEnergy = 0.2
	peakEnergy  = 0.9
	flatEnergy  = 0.6
	waveCenter  = 0.55
	waveSwing   = 0.25
	waveCycles  = 2.0
)

// Generate returns a length-n sequence of target energies in [0,1] for a
// built-in shape. It fails fast on a non-positive length or unknown shape.
func Generate(n int, shape Shape) ([]float64, error) {
	if n <= 0 {
		return nil, &domain.RequestError{Param: "length", Reason: "must be positive"}
	}

	switch shape {
	case Ascending:
		return ramp(n, floorEnergy, peakEnergy), nil
	case Descending:
		return ramp(n, peakEnergy, floorEnergy), nil
	case Peak:
		return Profile(n, []Segment{
			{Name: "build", Share: 0.6, From: floorEnergy, To: peakEnergy},
			{Name: "land", Share: 0.4, From: peakEnergy, To: 0.4},
		})
	case Wave:
		return wave(n), nil
	case Flat:
		return constant(n, flatEnergy), nil
	default:
		return nil, &domain.RequestError{Param: "shape", Reason: "unknown: " + string(shape)}
	}
}

// Segment is one named leg of a staged profile: a linear ramp from From to
// To occupying Share of the playlist. Shares are normalized, so they need
// not sum to 1.
type Segment struct {
	Name  string
	Share float64
	From  float64
	To    float64
}

// Profile concatenates linear ramps into a length-n staged trajectory.
func Profile(n int, segments []Segment) ([]float64, error) {
	if n <= 0 {
		return nil, &domain.RequestError{Param: "length", Reason: "must be positive"}
	}
	if len(segments) == 0 {
		return nil, &domain.RequestError{Param: "segments", Reason: "must not be empty"}
	}

	var total float64
	for _, s := range segments {
		if s.Share <= 0 {
			return nil, &domain.RequestError{Param: "segments", Reason: "share must be positive: " + s.Name}
		}
		total += s.Share
	}

	out := make([]float64, n)
	for i := range out {
		// Position of this slot in [0,1), located within its segment.
		pos := float64(i) / float64(n)
		acc := 0.0
		seg := segments[len(segments)-1]
		local := 1.0
		for _, s := range segments {
			width := s.Share / total
			if pos < acc+width {
				seg = s
				local = (pos - acc) / width
				break
			}
			acc += width
		}
		out[i] = clamp01(seg.From + (seg.To-seg.From)*local)
	}
	return out, nil
}

func ramp(n int, from, to float64) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = clamp01(from)
		return out
	}
	step := (to - from) / float64(n-1)
	for i := range out {
		out[i] = clamp01(from + step*float64(i))
	}
	return out
}

func wave(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = waveCenter
		return out
	}
	for i := range out {
		phase := 2 * math.Pi * waveCycles * float64(i) / float64(n-1)
		out[i] = clamp01(waveCenter + waveSwing*math.Sin(phase))
	}
	return out
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
