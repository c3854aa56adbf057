package sampled

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-field/dsp/core"
)

// Errors returned by series construction and arithmetic.
var (
	ErrLengthMismatch = errors.New("sampled: coordinate and value lengths differ")
	ErrTooShort       = errors.New("sampled: series needs at least 2 samples")
	ErrNotIncreasing  = errors.New("sampled: coordinates must be strictly increasing")
	ErrNonUniform     = errors.New("sampled: coordinate spacing must be uniform")
)

// stepTolerance is the relative tolerance used when checking that the
// coordinate spacing is constant.
const stepTolerance = 1e-9

// Element is the set of value types a series can hold.
type Element interface {
	float64 | complex128
}

// Series is a uniformly sampled function: N strictly increasing coordinates
// paired with N values. A Series owns its slices exclusively; construction
// and Copy always deep-copy.
type Series[T Element] struct {
	x []float64
	y []T
}

// New validates x and y and returns a series holding copies of both.
func New[T Element](x []float64, y []T) (Series[T], error) {
	if len(x) != len(y) {
		return Series[T]{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}

	if len(x) < 2 {
		return Series[T]{}, fmt.Errorf("%w: %d", ErrTooShort, len(x))
	}

	// Monotonicity is checked over the whole axis before uniformity so
	// that a decreasing or duplicated coordinate anywhere reports
	// ErrNotIncreasing, not a spacing mismatch at an earlier index.
	for i := 1; i < len(x); i++ {
		if x[i]-x[i-1] <= 0 {
			return Series[T]{}, fmt.Errorf("%w: index %d", ErrNotIncreasing, i)
		}
	}

	step := (x[len(x)-1] - x[0]) / float64(len(x)-1)
	for i := 1; i < len(x); i++ {
		d := x[i] - x[i-1]
		if !core.NearlyEqual(d, step, stepTolerance) {
			return Series[T]{}, fmt.Errorf("%w: index %d: step %v, expected %v", ErrNonUniform, i, d, step)
		}
	}

	s := Series[T]{
		x: make([]float64, len(x)),
		y: make([]T, len(y)),
	}
	copy(s.x, x)
	copy(s.y, y)

	return s, nil
}

// Len returns the number of samples.
func (s Series[T]) Len() int { return len(s.x) }

// X returns the coordinate slice. The slice is owned by the series and must
// not be modified by the caller.
func (s Series[T]) X() []float64 { return s.x }

// Y returns the value slice. The slice is owned by the series and must not
// be modified by the caller.
func (s Series[T]) Y() []T { return s.y }

// Step returns the constant coordinate spacing.
func (s Series[T]) Step() float64 {
	return (s.x[len(s.x)-1] - s.x[0]) / float64(len(s.x)-1)
}

// Copy returns an independent deep copy of the series.
func (s Series[T]) Copy() Series[T] {
	out := Series[T]{
		x: make([]float64, len(s.x)),
		y: make([]T, len(s.y)),
	}
	copy(out.x, s.x)
	copy(out.y, s.y)

	return out
}

// Add returns a new series with the values of other added elementwise.
// Both series must have the same length; the coordinate axis is taken from
// the receiver.
func (s Series[T]) Add(other Series[T]) (Series[T], error) {
	if len(s.y) != len(other.y) {
		return Series[T]{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(s.y), len(other.y))
	}

	out := s.Copy()
	for i := range out.y {
		out.y[i] += other.y[i]
	}

	return out, nil
}

// Mul returns a new series with the values of other multiplied elementwise.
// Both series must have the same length; the coordinate axis is taken from
// the receiver.
func (s Series[T]) Mul(other Series[T]) (Series[T], error) {
	if len(s.y) != len(other.y) {
		return Series[T]{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(s.y), len(other.y))
	}

	out := s.Copy()
	for i := range out.y {
		out.y[i] *= other.y[i]
	}

	return out, nil
}

// Scale returns a new series with every value multiplied by k.
func (s Series[T]) Scale(k T) Series[T] {
	out := s.Copy()
	for i := range out.y {
		out.y[i] *= k
	}

	return out
}
