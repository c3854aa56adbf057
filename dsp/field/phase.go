package field

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-field/dsp/trace"
	"github.com/cwbudde/algo-field/internal/quadfit"
)

// defaultJumpThreshold is the default discontinuity threshold for phase
// unwrapping, as a multiplier of pi.
const defaultJumpThreshold = 4.0 / 3.0

// UnwrapOption configures UnwrappedPhase, InstantaneousFrequency, and
// EstimateChirp.
type UnwrapOption func(*unwrapConfig)

type unwrapConfig struct {
	threshold    float64
	initialShift float64
}

// WithJumpThreshold sets the unwrap discontinuity threshold as a multiplier
// of pi (default 4/3). Lower values are more eager to classify a step as a
// wrap; higher values tolerate faster genuine phase variation.
func WithJumpThreshold(mult float64) UnwrapOption {
	return func(cfg *unwrapConfig) {
		if mult > 0 {
			cfg.threshold = mult
		}
	}
}

// WithInitialShift sets the additive phase offset, in radians, that the
// unwrap accumulator starts from (default 0).
func WithInitialShift(rad float64) UnwrapOption {
	return func(cfg *unwrapConfig) {
		cfg.initialShift = rad
	}
}

func applyUnwrapOptions(opts ...UnwrapOption) unwrapConfig {
	cfg := unwrapConfig{threshold: defaultJumpThreshold}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Phase returns the per-sample phase atan2(imag, real), wrapped to
// (-pi, pi], as a derived trace.
func (f *Field) Phase() *trace.Trace {
	return f.newTrace(f.rawPhase())
}

func (f *Field) rawPhase() []float64 {
	y := f.series.Y()
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = math.Atan2(imag(v), real(v))
	}
	return out
}

// UnwrappedPhase returns a continuous phase trace. Walking left to right, a
// backward step of the raw phase beyond threshold*pi advances a running 2*pi
// shift that is added to every subsequent sample, so wrap discontinuities
// are removed while genuine phase variation below the threshold passes
// through unchanged.
func (f *Field) UnwrappedPhase(opts ...UnwrapOption) *trace.Trace {
	return f.newTrace(f.unwrappedPhase(applyUnwrapOptions(opts...)))
}

func (f *Field) unwrappedPhase(cfg unwrapConfig) []float64 {
	raw := f.rawPhase()
	out := make([]float64, len(raw))
	out[0] = raw[0]
	limit := cfg.threshold * math.Pi
	shift := cfg.initialShift

	// Jump detection must compare the untouched raw phases; comparing
	// already-shifted output would re-trigger on every step after the
	// first correction.
	for i := 1; i < len(raw); i++ {
		step := raw[i-1] - raw[i]
		if step > limit {
			shift += 2 * math.Pi
		} else if step < -limit {
			shift -= 2 * math.Pi
		}
		out[i] = raw[i] + shift
	}

	return out
}

// InstantaneousFrequency returns the forward finite difference of the
// unwrapped phase divided by -2*pi times the sample spacing. The result has
// N-1 samples with the last coordinate dropped.
func (f *Field) InstantaneousFrequency(opts ...UnwrapOption) *trace.Trace {
	uw := f.unwrappedPhase(applyUnwrapOptions(opts...))
	x := f.series.X()
	n := len(x)
	spacing := math.Abs(x[n-1]-x[0]) / float64(n-1)

	out := make([]float64, n-1)
	for i := range out {
		out[i] = (uw[i+1] - uw[i]) / (-2 * math.Pi * spacing)
	}

	xOut := make([]float64, n-1)
	copy(xOut, x[:n-1])

	if f.domain == Time {
		return trace.NewOscillogram(xOut, out)
	}
	return trace.NewSpectrum(xOut, out)
}

// EstimateChirp fits the unwrapped phase to a quadratic
//
//	a0 + a1*x + a2*x^2
//
// by least squares and returns the a2 coefficient. The fit starts from the
// unwrapped endpoint slope; solver non-convergence propagates as an error.
func (f *Field) EstimateChirp(opts ...UnwrapOption) (float64, error) {
	uw := f.unwrappedPhase(applyUnwrapOptions(opts...))
	x := f.series.X()
	n := len(x)

	initial := [3]float64{
		uw[0],
		(uw[n-1] - uw[0]) / (x[n-1] - x[0]),
		0,
	}

	coeffs, err := quadfit.Fit(x, uw, initial)
	if err != nil {
		return 0, fmt.Errorf("field: chirp estimate: %w", err)
	}

	return coeffs[2], nil
}
