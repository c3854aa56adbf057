package pulse

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-field/dsp/field"
)

// Errors returned by pulse generators.
var (
	ErrInvalidWidth     = errors.New("pulse: width must be positive")
	ErrInvalidAmplitude = errors.New("pulse: amplitude must be positive")
	ErrInvalidSpan      = errors.New("pulse: span must be positive")
	ErrInvalidCount     = errors.New("pulse: sample count must be at least 2")
)

// TimeAxis returns n uniformly spaced samples covering the half-open,
// symmetric window [-span/2, span/2). This is the same windowing convention
// the inverse transform uses for its reconstructed time axis.
func TimeAxis(span float64, n int) ([]float64, error) {
	if span <= 0 {
		return nil, ErrInvalidSpan
	}

	if n < 2 {
		return nil, ErrInvalidCount
	}

	out := make([]float64, n)
	step := span / float64(n)
	for i := range out {
		out[i] = -span/2 + float64(i)*step
	}

	return out, nil
}

// Gaussian describes a Gaussian pulse with an optional linear chirp.
//
// The field envelope is
//
//	a(t) = Amplitude * exp(-(t-Center)^2 / (2*Width^2))
//
// and the quadratic phase Chirp*t^2 is applied on top, so the generated
// samples are a(t) * exp(i*Chirp*t^2).
type Gaussian struct {
	Width       float64 // 1/e field half-width in time units
	Amplitude   float64 // peak field amplitude
	Center      float64 // envelope center in time units
	Chirp       float64 // quadratic phase coefficient in rad per time unit squared
	CentralFreq float64 // carrier tag stored on the generated field
}

// Validate checks that the Gaussian parameters are valid.
func (g *Gaussian) Validate() error {
	if g.Width <= 0 {
		return ErrInvalidWidth
	}

	if g.Amplitude <= 0 {
		return ErrInvalidAmplitude
	}

	return nil
}

// Generate samples the pulse on a symmetric axis of n points spanning span
// time units and returns it as a time-domain field.
func (g *Gaussian) Generate(span float64, n int) (*field.Field, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	x, err := TimeAxis(span, n)
	if err != nil {
		return nil, err
	}

	y := make([]complex128, n)
	for i, t := range x {
		d := t - g.Center
		env := g.Amplitude * math.Exp(-d*d/(2*g.Width*g.Width))
		y[i] = complex(env, 0) * cmplx.Exp(complex(0, g.Chirp*t*t))
	}

	return field.New(x, y, field.Time, g.CentralFreq)
}

// Sech describes a hyperbolic-secant pulse with an optional linear chirp.
//
// The field envelope is
//
//	a(t) = Amplitude / cosh((t-Center)/Width)
//
// the canonical soliton shape, with the quadratic phase Chirp*t^2 applied on
// top.
type Sech struct {
	Width       float64 // envelope scale in time units
	Amplitude   float64 // peak field amplitude
	Center      float64 // envelope center in time units
	Chirp       float64 // quadratic phase coefficient in rad per time unit squared
	CentralFreq float64 // carrier tag stored on the generated field
}

// Validate checks that the Sech parameters are valid.
func (s *Sech) Validate() error {
	if s.Width <= 0 {
		return ErrInvalidWidth
	}

	if s.Amplitude <= 0 {
		return ErrInvalidAmplitude
	}

	return nil
}

// Generate samples the pulse on a symmetric axis of n points spanning span
// time units and returns it as a time-domain field.
func (s *Sech) Generate(span float64, n int) (*field.Field, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	x, err := TimeAxis(span, n)
	if err != nil {
		return nil, err
	}

	y := make([]complex128, n)
	for i, t := range x {
		env := s.Amplitude / math.Cosh((t-s.Center)/s.Width)
		y[i] = complex(env, 0) * cmplx.Exp(complex(0, s.Chirp*t*t))
	}

	return field.New(x, y, field.Time, s.CentralFreq)
}
