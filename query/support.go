package query

import (
	"github.com/katalvlaran/polyq/hrep"
	"github.com/katalvlaran/polyq/lp"
)

// Support computes the support function ρ(P, d) = max{⟨x, d⟩ : x ∈ P} and
// one optimizing point (index → coordinate value).
//
// The source is used in inequality form: a half-space model is consumed
// directly as LP constraints; a polytope handle is read row-by-row through
// its constraint view (never re-constructed). A source that knows itself to
// be empty short-circuits to (0, nil, nil) without formulating an LP — the
// caller must check emptiness separately if "empty" vs "support is zero"
// matters.
//
// The LP is: maximize d·x subject to A·x ≤ b over free variables.
//
// Errors:
//   - hrep.ErrNilSystem — nil source.
//   - hrep.ErrDimensionMismatch — len(d) differs from the ambient dimension.
//   - lp.ErrInfeasible / lp.ErrUnbounded — solver-reported geometry,
//     surfaced unchanged.
func Support(src Source, d []float64, opts ...Option) (float64, []float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, nil, err
	}
	if src == nil {
		return 0, nil, hrep.ErrNilSystem
	}
	if e, ok := src.(interface{ Empty() bool }); ok && e.Empty() {
		return 0, nil, nil
	}

	sys, err := src.Hrep()
	if err != nil {
		return 0, nil, err
	}
	sys, err = sys.InequalityForm()
	if err != nil {
		return 0, nil, err
	}
	if err = sys.CheckDirection(d); err != nil {
		return 0, nil, err
	}

	obj := make([]float64, len(d))
	copy(obj, d)
	sol, err := o.solver.Solve(lp.Problem{Objective: obj, A: sys.A, B: sys.B})
	if err != nil {
		return 0, nil, err
	}

	return sol.Value, sol.Point, nil
}

// basis writes the i-th canonical direction e_i (scaled by sign) into dst.
func basis(dst []float64, i int, sign float64) []float64 {
	for j := range dst {
		dst[j] = 0
	}
	dst[i] = sign

	return dst
}
