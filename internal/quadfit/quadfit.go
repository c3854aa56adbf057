// Package quadfit fits a quadratic polynomial to sampled data by
// least squares. The minimization is delegated to gonum's optimize package;
// a start or end point whose gradient already vanishes counts as converged,
// any other failure is reported to the caller.
package quadfit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// ErrNoConvergence is returned when the minimizer terminates without
// reaching a converged solution.
var ErrNoConvergence = errors.New("quadfit: least-squares fit did not converge")

// Fit minimizes the sum of squared residuals of
//
//	y ~ p[0] + p[1]*x + p[2]*x^2
//
// over the sample pairs (x[i], y[i]), starting from the given initial
// coefficients, and returns the fitted coefficients in ascending power.
func Fit(x, y []float64, initial [3]float64) ([3]float64, error) {
	if len(x) != len(y) {
		return [3]float64{}, fmt.Errorf("quadfit: sample lengths differ: %d vs %d", len(x), len(y))
	}

	if len(x) < 3 {
		return [3]float64{}, fmt.Errorf("quadfit: need at least 3 samples: %d", len(x))
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			var sum float64
			for i, xi := range x {
				r := p[0] + xi*(p[1]+xi*p[2]) - y[i]
				sum += r * r
			}
			return sum
		},
		Grad: func(grad, p []float64) {
			grad[0], grad[1], grad[2] = 0, 0, 0
			for i, xi := range x {
				r := p[0] + xi*(p[1]+xi*p[2]) - y[i]
				grad[0] += 2 * r
				grad[1] += 2 * r * xi
				grad[2] += 2 * r * xi * xi
			}
		},
	}

	// A gradient-based minimizer cannot take a descent step from a point
	// that is already stationary, so an exactly fittable start (zero
	// residuals, or the true coefficients) must short-circuit to success
	// instead of surfacing a line-search failure.
	if gradientNorm(problem, initial[:]) <= gradTolerance {
		return initial, nil
	}

	result, err := optimize.Minimize(problem, initial[:], nil, nil)
	if err != nil {
		if result != nil && gradientNorm(problem, result.X) <= gradTolerance {
			var out [3]float64
			copy(out[:], result.X)
			return out, nil
		}
		return [3]float64{}, fmt.Errorf("%w: %v", ErrNoConvergence, err)
	}

	if err := result.Status.Err(); err != nil {
		return [3]float64{}, fmt.Errorf("%w: %v", ErrNoConvergence, err)
	}

	var out [3]float64
	copy(out[:], result.X)

	return out, nil
}

// gradTolerance bounds the gradient norm below which a point counts as a
// converged minimum of the sum-of-squares objective.
const gradTolerance = 1e-10

func gradientNorm(p optimize.Problem, x []float64) float64 {
	grad := make([]float64, len(x))
	p.Grad(grad, x)

	var sum float64
	for _, g := range grad {
		sum += g * g
	}
	return math.Sqrt(sum)
}
