package quadfit

import (
	"math"
	"testing"
)

func TestFitRecoversExactQuadratic(t *testing.T) {
	const (
		a0 = 1.5
		a1 = -2.0
		a2 = 0.75
	)

	n := 101
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		xi := -1 + 2*float64(i)/float64(n-1)
		x[i] = xi
		y[i] = a0 + a1*xi + a2*xi*xi
	}

	got, err := Fit(x, y, [3]float64{y[0], (y[n-1] - y[0]) / (x[n-1] - x[0]), 0})
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	for i, want := range []float64{a0, a1, a2} {
		if math.Abs(got[i]-want) > 1e-6 {
			t.Fatalf("coefficient %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestFitLine(t *testing.T) {
	// A pure line must come back with a vanishing quadratic term.
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 5, 7, 9}

	got, err := Fit(x, y, [3]float64{1, 2, 0})
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	if math.Abs(got[2]) > 1e-6 {
		t.Fatalf("quadratic term = %v, want ~0", got[2])
	}
}

func TestFitConstant(t *testing.T) {
	// Constant data with the exact answer as the start leaves the
	// minimizer no descent direction; the fit must still succeed.
	x := []float64{0, 1, 2, 3, 4, 5}
	y := []float64{2.5, 2.5, 2.5, 2.5, 2.5, 2.5}

	got, err := Fit(x, y, [3]float64{2.5, 0, 0})
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	want := [3]float64{2.5, 0, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("coefficient %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFitValidation(t *testing.T) {
	if _, err := Fit([]float64{0, 1}, []float64{0}, [3]float64{}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}

	if _, err := Fit([]float64{0, 1}, []float64{0, 1}, [3]float64{}); err == nil {
		t.Fatal("expected error for too few samples")
	}
}
