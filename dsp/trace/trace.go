// Package trace provides the read-only real-valued projections derived from
// complex fields: oscillograms (amplitude or phase versus time) and spectra
// (amplitude or phase versus frequency). A trace is pure data for downstream
// consumers such as plotting adapters; it is not transformable back into a
// field, and this package performs no rendering.
package trace

// Kind tags the axis semantics of a trace.
type Kind int

const (
	// Oscillogram is a time-domain trace.
	Oscillogram Kind = iota
	// Spectrum is a frequency-domain trace.
	Spectrum
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Oscillogram:
		return "oscillogram"
	case Spectrum:
		return "spectrum"
	default:
		return "unknown"
	}
}

// Trace is a real-valued sampled curve with an axis-kind tag.
//
// X and Y always have the same length. The trace owns both slices; producers
// hand over freshly allocated data and consumers must treat it as read-only.
type Trace struct {
	Kind Kind
	X    []float64
	Y    []float64
}

// New returns a trace of the given kind wrapping x and y. Both slices must
// have the same length and ownership passes to the trace.
func New(kind Kind, x, y []float64) *Trace {
	return &Trace{Kind: kind, X: x, Y: y}
}

// NewOscillogram returns a time-domain trace wrapping x and y.
func NewOscillogram(x, y []float64) *Trace {
	return New(Oscillogram, x, y)
}

// NewSpectrum returns a frequency-domain trace wrapping x and y.
func NewSpectrum(x, y []float64) *Trace {
	return New(Spectrum, x, y)
}

// Len returns the number of samples.
func (t *Trace) Len() int { return len(t.X) }
