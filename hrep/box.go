package hrep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polyq/field"
)

// BoxSpec describes an axis-aligned hyper-rectangle in exactly one of two
// mutually exclusive modes:
//
//   - Center + Radius — the sup-norm ball {x : |x_i - c_i| ≤ r}.
//   - Lengths — per-axis intervals [(min_1,max_1), ..., (min_n,max_n)].
//
// Kind selects the arithmetic field of the resulting system; the zero value
// is field.Rational.
type BoxSpec struct {
	Center  []float64
	Radius  float64
	Lengths [][2]float64
	Kind    field.Kind
}

// Box builds the half-space model of an axis-aligned box: for each axis i
// two rows are emitted, the upper bound x_i ≤ max_i and the lower bound
// -x_i ≤ -min_i, giving a 2n×n system with all off-diagonal entries zero.
//
// Errors:
//   - ErrAmbiguousInput — both modes supplied, or neither.
//   - ErrNaNInf — non-finite center, radius or interval endpoint.
//   - field.ErrUnsupportedKind — spec.Kind is not Rational or Double.
//
// Complexity: O(n²) time and memory (dense 2n×n matrix).
func Box(spec BoxSpec) (*System, error) {
	gotCR := spec.Center != nil
	gotLengths := spec.Lengths != nil
	if gotCR == gotLengths {
		return nil, fmt.Errorf("hrep: Box needs center+radius or lengths, not both/neither: %w",
			ErrAmbiguousInput)
	}
	if !spec.Kind.Valid() {
		return nil, field.ErrUnsupportedKind
	}

	// Normalize both modes to per-axis (min, max) intervals.
	var lengths [][2]float64
	if gotCR {
		if !finite(spec.Radius) {
			return nil, fmt.Errorf("hrep: radius: %w", ErrNaNInf)
		}
		lengths = make([][2]float64, len(spec.Center))
		for i, c := range spec.Center {
			if !finite(c) {
				return nil, fmt.Errorf("hrep: center[%d]: %w", i, ErrNaNInf)
			}
			lengths[i] = [2]float64{c - spec.Radius, c + spec.Radius}
		}
	} else {
		lengths = spec.Lengths
		for i, l := range lengths {
			if !finite(l[0]) || !finite(l[1]) {
				return nil, fmt.Errorf("hrep: lengths[%d]: %w", i, ErrNaNInf)
			}
		}
	}

	n := len(lengths)
	if n == 0 {
		return nil, fmt.Errorf("hrep: Box with zero axes: %w", ErrDimensionMismatch)
	}

	a := mat.NewDense(2*n, n, nil)
	b := mat.NewVecDense(2*n, nil)
	for i := 0; i < n; i++ {
		// upper bound: x_i ≤ max_i
		a.Set(2*i, i, 1)
		b.SetVec(2*i, lengths[i][1])
		// lower bound: -x_i ≤ -min_i
		a.Set(2*i+1, i, -1)
		b.SetVec(2*i+1, -lengths[i][0])
	}

	return NewSystem(a, b, spec.Kind)
}
