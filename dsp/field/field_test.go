package field

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-field/dsp/sampled"
	"github.com/cwbudde/algo-field/internal/testutil"
)

func TestNewValidation(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := testutil.ComplexOnes(4)

	if _, err := New(x, y, Domain(99), 0); !errors.Is(err, ErrUnknownDomain) {
		t.Fatalf("domain error = %v, want ErrUnknownDomain", err)
	}

	if _, err := New(x, y, Time, math.NaN()); !errors.Is(err, ErrNotFinite) {
		t.Fatalf("NaN carrier error = %v, want ErrNotFinite", err)
	}

	if _, err := New(x, y, Time, math.Inf(1)); !errors.Is(err, ErrNotFinite) {
		t.Fatalf("Inf carrier error = %v, want ErrNotFinite", err)
	}

	if _, err := New([]float64{0, 2, 3}, testutil.ComplexOnes(3), Time, 0); !errors.Is(err, sampled.ErrNonUniform) {
		t.Fatalf("axis error = %v, want ErrNonUniform", err)
	}

	if _, err := New([]float64{0}, testutil.ComplexOnes(1), Time, 0); !errors.Is(err, sampled.ErrTooShort) {
		t.Fatalf("short axis error = %v, want ErrTooShort", err)
	}
}

func TestNewFromPartsUnknownForm(t *testing.T) {
	x := []float64{0, 1, 2}
	r := []float64{1, 2, 3}

	_, err := NewFromParts(x, r, r, Form(42), Time, 0)
	if !errors.Is(err, ErrUnknownForm) {
		t.Fatalf("NewFromParts() error = %v, want ErrUnknownForm", err)
	}
}

func TestConstructionEquivalence(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	r := []float64{1, 0.5, -0.25, 2}
	im := []float64{0.1, -0.3, 0.7, -1}

	y := make([]complex128, len(r))
	for i := range y {
		y[i] = complex(r[i], im[i])
	}

	fromComplex, err := New(x, y, Time, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	fromAlg, err := NewAlg(x, r, im, Time, 0)
	if err != nil {
		t.Fatalf("NewAlg() error = %v", err)
	}

	testutil.RequireComplexSliceNearlyEqual(t, fromAlg.Y(), fromComplex.Y(), 0)
}

func TestNewExp(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	mag := []float64{1, 2, 0.5, 3}
	ph := []float64{0, math.Pi / 2, math.Pi, -math.Pi / 4}

	f, err := NewExp(x, mag, ph, Time, 0)
	if err != nil {
		t.Fatalf("NewExp() error = %v", err)
	}

	want := make([]complex128, len(mag))
	for i := range want {
		want[i] = complex(mag[i], 0) * cmplx.Exp(complex(0, ph[i]))
	}

	testutil.RequireComplexSliceNearlyEqual(t, f.Y(), want, 1e-15)
}

func TestNewFromPartsComponentMismatch(t *testing.T) {
	x := []float64{0, 1, 2}

	_, err := NewFromParts(x, []float64{1, 2, 3}, []float64{1, 2}, FormAlg, Time, 0)
	if err == nil {
		t.Fatal("expected error for mismatched component lengths")
	}
}

func TestCopyIndependence(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	f, err := New(x, testutil.ComplexOnes(4), Frequency, 2.5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c := f.Copy()
	c.Y()[0] = 99
	c.X()[0] = -10

	if f.Y()[0] != 1 || f.X()[0] != 0 {
		t.Fatalf("copy aliases original: x[0]=%v y[0]=%v", f.X()[0], f.Y()[0])
	}

	if c.Domain() != Frequency || c.CentralFreq() != 2.5 {
		t.Fatalf("copy lost metadata: domain=%v cf=%v", c.Domain(), c.CentralFreq())
	}
}

func TestAccessors(t *testing.T) {
	x := []float64{-1, -0.5, 0, 0.5}
	f, err := New(x, testutil.ComplexOnes(4), Time, 1.5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if f.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", f.Len())
	}
	if f.Step() != 0.5 {
		t.Fatalf("Step() = %v, want 0.5", f.Step())
	}
	if f.Domain() != Time {
		t.Fatalf("Domain() = %v, want Time", f.Domain())
	}
	if f.CentralFreq() != 1.5 {
		t.Fatalf("CentralFreq() = %v, want 1.5", f.CentralFreq())
	}
	if got := f.Domain().String(); got != "time" {
		t.Fatalf("Domain().String() = %q", got)
	}
}
