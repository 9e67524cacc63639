package query

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polyq/field"
	"github.com/katalvlaran/polyq/hrep"
	"github.com/katalvlaran/polyq/lp"
)

// Center computes the Chebyshev center of a polytope: the center of the
// largest inscribed ball.
//
// The second-order condition "a ball of radius r around x fits inside every
// half-space" linearizes row-wise, which keeps the whole pipeline inside one
// LP instead of requiring a conic solver: over the n point coordinates x
// plus one scalar margin r,
//
//	maximize r  subject to  A_i·x + ‖A_i‖₂·r ≤ b_i  for every row i,
//
// where ‖A_i‖₂ is the Euclidean row norm (rowNorm — the single square root
// in an otherwise linear pipeline). The optimal x is returned cast into the
// system's arithmetic field.
//
// Errors mirror Support: hrep.ErrNilSystem for a nil source,
// hrep.ErrDimensionMismatch for shape violations (an explicit error, never
// an empty result), lp.ErrInfeasible / lp.ErrUnbounded from the solver.
func Center(src Source, opts ...Option) (field.Vector, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return field.Vector{}, err
	}
	if src == nil {
		return field.Vector{}, hrep.ErrNilSystem
	}

	sys, err := src.Hrep()
	if err != nil {
		return field.Vector{}, err
	}
	sys, err = sys.InequalityForm()
	if err != nil {
		return field.Vector{}, err
	}

	m, n := sys.A.Dims()

	// One extra column for the margin variable r, one extra row for r ≥ 0:
	// with a free margin an empty polytope could still admit a negative-r
	// "solution" instead of reporting infeasibility.
	a := mat.NewDense(m+1, n+1, nil)
	b := mat.NewVecDense(m+1, nil)
	obj := make([]float64, n+1)
	obj[n] = 1
	for i := 0; i < m; i++ {
		row := sys.A.RawRowView(i)
		for j, v := range row {
			a.Set(i, j, v)
		}
		a.Set(i, n, rowNorm(row))
		b.SetVec(i, sys.B.AtVec(i))
	}
	a.Set(m, n, -1)

	sol, err := o.solver.Solve(lp.Problem{Objective: obj, A: a, B: b})
	if err != nil {
		return field.Vector{}, err
	}

	return field.NewVector(sys.Kind, sol.Point[:n])
}

// rowNorm returns the Euclidean norm of one constraint row. Named and kept
// apart because it is the one place true nonlinearity enters the query
// pipeline.
func rowNorm(row []float64) float64 {
	return floats.Norm(row, 2)
}
