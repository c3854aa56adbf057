package field

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/integrate"
)

// TotalPower integrates |y|^2 over the coordinate axis using the
// trapezoidal rule. The result is an energy proxy used by the transforms to
// enforce Parseval-consistent normalization.
func (f *Field) TotalPower() float64 {
	re, im := f.parts()
	p := make([]float64, len(re))
	vecmath.Power(p, re, im)

	return integrate.Trapezoidal(f.series.X(), p)
}

// NormalizedToPower returns a new field scaled so that its total power
// equals target. The target must be positive, and a field with zero total
// power cannot be normalized.
func (f *Field) NormalizedToPower(target float64) (*Field, error) {
	if target <= 0 || math.IsNaN(target) || math.IsInf(target, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTarget, target)
	}

	p := f.TotalPower()
	if p == 0 {
		return nil, ErrZeroPower
	}

	out := f.Copy()
	k := complex(math.Sqrt(target/p), 0)
	y := out.series.Y()
	for i := range y {
		y[i] *= k
	}

	return out, nil
}
