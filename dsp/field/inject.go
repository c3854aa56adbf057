package field

import "math/cmplx"

// AddPhase returns a new field whose samples are multiplied by
// exp(i*phi(x)), where phi is the polynomial
//
//	phi(ref) = coeffs[0] + coeffs[1]*ref + coeffs[2]*ref^2 + ...
//
// evaluated with ref = x in the time domain and ref = x - CentralFreq in the
// frequency domain. Coefficients are in radians per appropriate power of the
// coordinate unit; an empty coefficient list is the identity.
func (f *Field) AddPhase(coeffs []float64) *Field {
	out := f.Copy()
	x := out.series.X()
	y := out.series.Y()

	offset := 0.0
	if f.domain == Frequency {
		offset = f.centralFreq
	}

	for i := range y {
		ref := x[i] - offset
		phi := 0.0
		// Horner evaluation, highest power first.
		for k := len(coeffs) - 1; k >= 0; k-- {
			phi = phi*ref + coeffs[k]
		}
		y[i] *= cmplx.Exp(complex(0, phi))
	}

	return out
}

// AddChirp returns a new field whose samples are multiplied by
// exp(i*chirp*x^2). The chirp value is in radians per squared coordinate
// unit.
func (f *Field) AddChirp(chirp float64) *Field {
	out := f.Copy()
	x := out.series.X()
	y := out.series.Y()

	for i := range y {
		y[i] *= cmplx.Exp(complex(0, chirp*x[i]*x[i]))
	}

	return out
}
