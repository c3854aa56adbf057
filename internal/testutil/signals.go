package testutil

import "math"

// SymmetricAxis returns n uniformly spaced coordinates covering the
// half-open interval [-span/2, span/2).
func SymmetricAxis(span float64, n int) []float64 {
	out := make([]float64, n)
	step := span / float64(n)
	for i := range out {
		out[i] = -span/2 + float64(i)*step
	}
	return out
}

// LinearAxis returns n uniformly spaced coordinates starting at start.
func LinearAxis(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// ComplexTone evaluates exp(-i*2*pi*freq*x) on the given axis.
func ComplexTone(freq float64, x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, xi := range x {
		ph := -2 * math.Pi * freq * xi
		out[i] = complex(math.Cos(ph), math.Sin(ph))
	}
	return out
}

// ChirpedGaussian evaluates a unit-amplitude Gaussian envelope with a
// quadratic phase on the given axis:
//
//	exp(-x^2 / (2*width^2)) * exp(i*chirp*x^2)
func ChirpedGaussian(width, chirp float64, x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, xi := range x {
		env := math.Exp(-xi * xi / (2 * width * width))
		ph := chirp * xi * xi
		out[i] = complex(env*math.Cos(ph), env*math.Sin(ph))
	}
	return out
}

// ComplexOnes returns a slice of length n filled with 1+0i.
func ComplexOnes(n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
