// Package width computes pulse-width descriptors of intensity traces:
// energy, peak, centroid, RMS width, and FWHM. It works identically on
// oscillograms and spectra, so temporal and spectral widths (and their
// time-bandwidth product) come from the same code path.
package width

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-field/dsp/trace"
)

// Errors returned by Calculate.
var (
	ErrNilTrace   = errors.New("width: trace is nil")
	ErrTooShort   = errors.New("width: trace needs at least 2 samples")
	ErrZeroEnergy = errors.New("width: trace has zero energy")
)

// Stats holds width descriptors of an intensity trace.
type Stats struct {
	Energy   float64 // trapezoidal integral of the trace over its axis
	Peak     float64 // maximum trace value
	PeakPos  float64 // coordinate of the maximum
	Centroid float64 // energy-weighted mean coordinate
	RMSWidth float64 // energy-weighted standard deviation of the coordinate
	FWHM     float64 // full width at half maximum; NaN if the trace never falls below half peak
}

// Calculate computes all width descriptors of an intensity trace in order:
// energy and peak first, then the energy-weighted moments, then the
// half-maximum crossings with linear interpolation between samples.
//
// Values are treated as nonnegative intensities; traces with zero energy
// have no defined moments and are rejected.
func Calculate(t *trace.Trace) (Stats, error) {
	if t == nil {
		return Stats{}, ErrNilTrace
	}

	n := t.Len()
	if n < 2 {
		return Stats{}, fmt.Errorf("%w: %d", ErrTooShort, n)
	}

	var s Stats

	s.Peak = t.Y[0]
	s.PeakPos = t.X[0]
	peakIdx := 0
	for i, v := range t.Y {
		if v > s.Peak {
			s.Peak = v
			s.PeakPos = t.X[i]
			peakIdx = i
		}
	}

	s.Energy = integrate.Trapezoidal(t.X, t.Y)
	if s.Energy == 0 {
		return Stats{}, ErrZeroEnergy
	}

	weighted := make([]float64, n)
	for i := range weighted {
		weighted[i] = t.X[i] * t.Y[i]
	}
	s.Centroid = integrate.Trapezoidal(t.X, weighted) / s.Energy

	for i := range weighted {
		d := t.X[i] - s.Centroid
		weighted[i] = d * d * t.Y[i]
	}
	variance := integrate.Trapezoidal(t.X, weighted) / s.Energy
	s.RMSWidth = math.Sqrt(variance)

	s.FWHM = fwhm(t.X, t.Y, peakIdx, s.Peak/2)

	return s, nil
}

// fwhm walks outward from the peak to the first crossings below level and
// linearly interpolates the crossing coordinates. Returns NaN when either
// side never drops below the level.
func fwhm(x, y []float64, peak int, level float64) float64 {
	left := math.NaN()
	for i := peak; i > 0; i-- {
		if y[i-1] < level && y[i] >= level {
			left = crossing(x[i-1], x[i], y[i-1], y[i], level)
			break
		}
	}

	right := math.NaN()
	for i := peak; i < len(y)-1; i++ {
		if y[i] >= level && y[i+1] < level {
			right = crossing(x[i], x[i+1], y[i], y[i+1], level)
			break
		}
	}

	return right - left
}

// crossing interpolates the coordinate where the segment (x0,y0)-(x1,y1)
// crosses level.
func crossing(x0, x1, y0, y1, level float64) float64 {
	if y1 == y0 {
		return x0
	}
	return x0 + (x1-x0)*(level-y0)/(y1-y0)
}
