package field

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-field/dsp/trace"
)

// newTrace wraps a fresh copy of the coordinate axis and the given values in
// the trace kind selected by the field's domain: time-domain fields produce
// oscillograms, frequency-domain fields produce spectra.
func (f *Field) newTrace(y []float64) *trace.Trace {
	if f.domain == Time {
		return trace.NewOscillogram(f.xCopy(), y)
	}
	return trace.NewSpectrum(f.xCopy(), y)
}

// Intensity returns |y|^2 per sample as a derived trace.
func (f *Field) Intensity() *trace.Trace {
	return f.Magnitude(2)
}

// Magnitude returns (|y|^2)^(exponent/2) per sample as a derived trace.
// Exponent 2 yields intensity, exponent 1 the magnitude envelope.
func (f *Field) Magnitude(exponent float64) *trace.Trace {
	re, im := f.parts()
	out := make([]float64, len(re))
	vecmath.Power(out, re, im)

	if exponent != 2 {
		for i := range out {
			out[i] = math.Pow(out[i], exponent/2)
		}
	}

	return f.newTrace(out)
}
