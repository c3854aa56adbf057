package field

import (
	"testing"

	"github.com/cwbudde/algo-field/dsp/trace"
	"github.com/cwbudde/algo-field/internal/testutil"
)

func TestViewKindFollowsDomain(t *testing.T) {
	x := testutil.SymmetricAxis(4, 8)
	y := testutil.ComplexOnes(8)

	tf, err := New(x, y, Time, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ff, err := New(x, y, Frequency, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	views := map[string][2]trace.Kind{
		"Intensity":      {tf.Intensity().Kind, ff.Intensity().Kind},
		"Phase":          {tf.Phase().Kind, ff.Phase().Kind},
		"UnwrappedPhase": {tf.UnwrappedPhase().Kind, ff.UnwrappedPhase().Kind},
	}

	for name, kinds := range views {
		if kinds[0] != trace.Oscillogram {
			t.Fatalf("%s on time field: kind = %v, want Oscillogram", name, kinds[0])
		}
		if kinds[1] != trace.Spectrum {
			t.Fatalf("%s on frequency field: kind = %v, want Spectrum", name, kinds[1])
		}
	}
}

func TestMagnitudeExponent(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []complex128{3 + 4i, 3 + 4i, 3 + 4i}

	f, err := New(x, y, Time, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, f.Intensity().Y, []float64{25, 25, 25}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, f.Magnitude(1).Y, []float64{5, 5, 5}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, f.Magnitude(4).Y, []float64{625, 625, 625}, 1e-9)
}

func TestViewOwnsItsAxis(t *testing.T) {
	x := []float64{0, 1, 2}
	f, err := New(x, testutil.ComplexOnes(3), Time, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	v := f.Intensity()
	v.X[0] = -100

	if f.X()[0] != 0 {
		t.Fatalf("view aliases field axis: x[0] = %v", f.X()[0])
	}
}
