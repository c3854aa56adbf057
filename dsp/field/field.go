package field

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-field/dsp/sampled"
)

// Domain tags whether the samples represent a function of time or of
// frequency.
type Domain int

const (
	// Time marks a time-domain field.
	Time Domain = iota
	// Frequency marks a frequency-domain field.
	Frequency
)

// String returns the domain name.
func (d Domain) String() string {
	switch d {
	case Time:
		return "time"
	case Frequency:
		return "frequency"
	default:
		return "unknown"
	}
}

// Form selects how a pair of real component sequences is combined into
// complex samples during construction.
type Form int

const (
	// FormComplex passes already-complex samples through unchanged.
	FormComplex Form = iota
	// FormAlg combines two real sequences as yr + i*yi.
	FormAlg
	// FormExp combines two real sequences as yr * exp(i*yi)
	// (magnitude and phase).
	FormExp
)

// Field is a sampled complex-valued signal with a domain tag and a
// reference carrier frequency. The carrier is used as the origin for
// phase-polynomial evaluation in the frequency domain; it is stored for
// time-domain fields as well.
type Field struct {
	series      sampled.Series[complex128]
	domain      Domain
	centralFreq float64
}

// New constructs a field from complex samples. The coordinate axis must be
// strictly increasing with uniform spacing and at least 2 samples; both
// slices are deep-copied.
func New(x []float64, y []complex128, domain Domain, centralFreq float64) (*Field, error) {
	if domain != Time && domain != Frequency {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDomain, domain)
	}

	if math.IsNaN(centralFreq) || math.IsInf(centralFreq, 0) {
		return nil, fmt.Errorf("%w: %v", ErrNotFinite, centralFreq)
	}

	s, err := sampled.New(x, y)
	if err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}

	return &Field{series: s, domain: domain, centralFreq: centralFreq}, nil
}

// NewAlg constructs a field from real and imaginary component sequences:
// y = re + i*im.
func NewAlg(x, re, im []float64, domain Domain, centralFreq float64) (*Field, error) {
	return NewFromParts(x, re, im, FormAlg, domain, centralFreq)
}

// NewExp constructs a field from magnitude and phase sequences:
// y = mag * exp(i*phase).
func NewExp(x, mag, phase []float64, domain Domain, centralFreq float64) (*Field, error) {
	return NewFromParts(x, mag, phase, FormExp, domain, centralFreq)
}

// NewFromParts constructs a field from real component sequences combined
// according to form. For FormAlg and FormExp both components are required
// and must have the same length; for FormComplex yr holds real-valued
// samples and yi is ignored (may be nil). An unrecognized form is a
// construction error.
func NewFromParts(x, yr, yi []float64, form Form, domain Domain, centralFreq float64) (*Field, error) {
	y := make([]complex128, len(yr))

	switch form {
	case FormComplex:
		for i := range y {
			y[i] = complex(yr[i], 0)
		}
	case FormAlg:
		if len(yr) != len(yi) {
			return nil, fmt.Errorf("field: component lengths differ: %d vs %d", len(yr), len(yi))
		}
		for i := range y {
			y[i] = complex(yr[i], yi[i])
		}
	case FormExp:
		if len(yr) != len(yi) {
			return nil, fmt.Errorf("field: component lengths differ: %d vs %d", len(yr), len(yi))
		}
		for i := range y {
			y[i] = complex(yr[i], 0) * cmplx.Exp(complex(0, yi[i]))
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownForm, form)
	}

	return New(x, y, domain, centralFreq)
}

// Len returns the number of samples.
func (f *Field) Len() int { return f.series.Len() }

// X returns the coordinate axis. The slice is owned by the field and must
// not be modified by the caller.
func (f *Field) X() []float64 { return f.series.X() }

// Y returns the complex samples. The slice is owned by the field and must
// not be modified by the caller.
func (f *Field) Y() []complex128 { return f.series.Y() }

// Domain returns the domain tag.
func (f *Field) Domain() Domain { return f.domain }

// CentralFreq returns the reference carrier frequency.
func (f *Field) CentralFreq() float64 { return f.centralFreq }

// Step returns the constant coordinate spacing.
func (f *Field) Step() float64 { return f.series.Step() }

// Copy returns an independent deep copy of the field.
func (f *Field) Copy() *Field {
	return &Field{
		series:      f.series.Copy(),
		domain:      f.domain,
		centralFreq: f.centralFreq,
	}
}

// parts unpacks the samples into freshly allocated real and imaginary
// component slices.
func (f *Field) parts() (re, im []float64) {
	y := f.series.Y()
	re = make([]float64, len(y))
	im = make([]float64, len(y))
	for i, v := range y {
		re[i] = real(v)
		im[i] = imag(v)
	}
	return re, im
}

// xCopy returns a fresh copy of the coordinate axis.
func (f *Field) xCopy() []float64 {
	x := f.series.X()
	out := make([]float64, len(x))
	copy(out, x)
	return out
}
