package field

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-field/dsp/sampled"
)

// TransformOption configures Forward and Inverse.
type TransformOption func(*transformConfig)

type transformConfig struct {
	raw bool
}

// WithRawOutput disables the power renormalization step, returning the bare
// discrete transform. The raw transform does not conserve total power.
func WithRawOutput() TransformOption {
	return func(cfg *transformConfig) {
		cfg.raw = true
	}
}

func applyTransformOptions(opts ...TransformOption) transformConfig {
	var cfg transformConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Forward transforms a time-domain field into the frequency domain.
//
// The time axis is assumed to sample the window [-T/2, T/2), so the sample
// buffer is half-swapped before the DFT to move the window center onto
// index 0, and the output is half-swapped back to center the spectrum on
// zero frequency. Skipping either swap displaces the effective time origin
// and corrupts the spectral phase. The frequency axis holds the centered
// DFT bin frequencies offset by the central frequency.
//
// By default the result is rescaled so that its total power equals the
// input's total power; WithRawOutput returns the unscaled transform.
func (f *Field) Forward(opts ...TransformOption) (*Field, error) {
	if f.domain != Time {
		return nil, fmt.Errorf("%w: forward transform on %s-domain input", ErrDomainMismatch, f.domain)
	}

	cfg := applyTransformOptions(opts...)
	n := f.Len()
	dt := f.Step()

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("field: failed to create FFT plan: %w", err)
	}

	dst := make([]complex128, n)
	if err := plan.Forward(dst, halfSwapIn(f.series.Y())); err != nil {
		return nil, fmt.Errorf("field: forward FFT failed: %w", err)
	}

	x := halfSwapOut(binFrequencies(n, dt))
	for i := range x {
		x[i] += f.centralFreq
	}

	out, err := newUnchecked(x, halfSwapOut(dst), Frequency, f.centralFreq)
	if err != nil {
		return nil, err
	}

	if cfg.raw {
		return out, nil
	}

	return renormalize(out, f.TotalPower())
}

// Inverse transforms a frequency-domain field into the time domain.
//
// The new time axis is the symmetric half-open window [-T/2, T/2) of width
// T = 1/df, where df is the frequency spacing. The same half-swap sandwich
// as in Forward re-centers the samples. By default the result is rescaled
// to the input's total power; WithRawOutput returns the unscaled transform.
func (f *Field) Inverse(opts ...TransformOption) (*Field, error) {
	if f.domain != Frequency {
		return nil, fmt.Errorf("%w: inverse transform on %s-domain input", ErrDomainMismatch, f.domain)
	}

	cfg := applyTransformOptions(opts...)
	n := f.Len()
	df := f.Step()

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("field: failed to create FFT plan: %w", err)
	}

	dst := make([]complex128, n)
	if err := plan.Inverse(dst, halfSwapIn(f.series.Y())); err != nil {
		return nil, fmt.Errorf("field: inverse FFT failed: %w", err)
	}

	span := 1 / df
	x := make([]float64, n)
	step := span / float64(n)
	for i := range x {
		x[i] = -span/2 + float64(i)*step
	}

	out, err := newUnchecked(x, halfSwapOut(dst), Time, f.centralFreq)
	if err != nil {
		return nil, err
	}

	if cfg.raw {
		return out, nil
	}

	return renormalize(out, f.TotalPower())
}

// renormalize rescales a freshly transformed field to the power measured on
// the transform input, enforcing energy conservation across domains.
func renormalize(out *Field, inputPower float64) (*Field, error) {
	if inputPower == 0 {
		return nil, ErrZeroPower
	}
	return out.NormalizedToPower(inputPower)
}

// newUnchecked wraps axis and samples produced internally. Validation still
// runs in sampled.New, but failures here indicate a bug rather than bad
// caller input.
func newUnchecked(x []float64, y []complex128, domain Domain, centralFreq float64) (*Field, error) {
	s, err := sampled.New(x, y)
	if err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}
	return &Field{series: s, domain: domain, centralFreq: centralFreq}, nil
}

// halfSwapIn rotates the buffer so that the window center moves to index 0
// (the inverse shift, rolling left by floor(n/2)).
func halfSwapIn[T sampled.Element](in []T) []T {
	split := len(in) / 2
	out := make([]T, 0, len(in))
	out = append(out, in[split:]...)
	out = append(out, in[:split]...)
	return out
}

// halfSwapOut rotates the buffer so that index 0 moves to the window center
// (the forward shift, rolling right by floor(n/2)).
func halfSwapOut[T sampled.Element](in []T) []T {
	split := (len(in) + 1) / 2
	out := make([]T, 0, len(in))
	out = append(out, in[split:]...)
	out = append(out, in[:split]...)
	return out
}

// binFrequencies returns the standard DFT bin frequencies for n samples at
// spacing d, in DFT order: 0, 1/(n*d), ... followed by the negative bins.
func binFrequencies(n int, d float64) []float64 {
	out := make([]float64, n)
	scale := 1 / (float64(n) * d)
	positive := (n + 1) / 2
	for k := range out {
		if k < positive {
			out[k] = float64(k) * scale
		} else {
			out[k] = float64(k-n) * scale
		}
	}
	return out
}
