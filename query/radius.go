package query

import (
	"math"

	"github.com/katalvlaran/polyq/hrep"
)

// Radius computes the sup-norm radius of a half-space model: the maximum,
// over all points of the polytope, of the largest absolute coordinate,
//
//	max_{x ∈ P} ‖x‖_∞ = max_i max(|ρ(P, e_i)|, |ρ(P, -e_i)|).
//
// It evaluates the support function along all 2n canonical directions and
// keeps the running maximum of absolute values. Only the (A, b) form is
// accepted; convert a polytope handle with its Hrep method first.
//
// Errors:
//   - hrep.ErrNilSystem / hrep.ErrDimensionMismatch — nil or malformed
//     input (an explicit error, never a silent zero result).
//   - lp.ErrInfeasible / lp.ErrUnbounded — surfaced from the underlying
//     support evaluations.
//
// Complexity: 2n LP solves.
func Radius(sys *hrep.System, opts ...Option) (float64, error) {
	if sys == nil {
		return 0, hrep.ErrNilSystem
	}
	if err := sys.Validate(); err != nil {
		return 0, err
	}

	n := sys.Dim()
	d := make([]float64, n)
	r := 0.0
	for i := 0; i < n; i++ {
		for _, sign := range [2]float64{1, -1} {
			v, _, err := Support(sys, basis(d, i, sign), opts...)
			if err != nil {
				return 0, err
			}
			if a := math.Abs(v); a > r {
				r = a
			}
		}
	}

	return r, nil
}
