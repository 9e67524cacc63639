package lp_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polyq/lp"
)

// problem is a shorthand constructor for dense test LPs.
func problem(obj []float64, rows [][]float64, b []float64) lp.Problem {
	m, n := len(rows), len(obj)
	a := mat.NewDense(m, n, nil)
	for i, r := range rows {
		a.SetRow(i, r)
	}

	return lp.Problem{Objective: obj, A: a, B: mat.NewVecDense(m, b)}
}

func TestSimplex_UnitSquare(t *testing.T) {
	// maximize x+y over the unit square [0,1]².
	p := problem(
		[]float64{1, 1},
		[][]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}},
		[]float64{1, 1, 0, 0},
	)

	sol, err := lp.NewSimplex().Solve(p)
	require.NoError(t, err)
	require.Equal(t, lp.StatusOptimal, sol.Status)
	require.InDelta(t, 2, sol.Value, 1e-9)
	require.InDelta(t, 1, sol.Point[0], 1e-9)
	require.InDelta(t, 1, sol.Point[1], 1e-9)
}

func TestSimplex_NegativeRHS(t *testing.T) {
	// x ≥ 1 written as -x ≤ -1 exercises the phase-1 artificial path;
	// maximize -x attains -1 at x = 1.
	p := problem([]float64{-1}, [][]float64{{-1}}, []float64{-1})

	sol, err := lp.NewSimplex().Solve(p)
	require.NoError(t, err)
	require.InDelta(t, -1, sol.Value, 1e-9)
	require.InDelta(t, 1, sol.Point[0], 1e-9)
}

func TestSimplex_FreeVariables(t *testing.T) {
	// The optimum lies at negative coordinates; variables must not be
	// implicitly sign-constrained. Box [-3,-1]×[-2,2], maximize x-y → at
	// (-1,-2) the value is 1.
	p := problem(
		[]float64{1, -1},
		[][]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}},
		[]float64{-1, 3, 2, 2},
	)

	sol, err := lp.NewSimplex().Solve(p)
	require.NoError(t, err)
	require.InDelta(t, 1, sol.Value, 1e-9)
	require.InDelta(t, -1, sol.Point[0], 1e-9)
	require.InDelta(t, -2, sol.Point[1], 1e-9)
}

func TestSimplex_Infeasible(t *testing.T) {
	// x ≤ -1 and x ≥ 1 cannot both hold.
	p := problem([]float64{1}, [][]float64{{1}, {-1}}, []float64{-1, -1})

	sol, err := lp.NewSimplex().Solve(p)
	require.ErrorIs(t, err, lp.ErrInfeasible)
	require.Equal(t, lp.StatusInfeasible, sol.Status)
}

func TestSimplex_Unbounded(t *testing.T) {
	// maximize x with only x ≥ 0.
	p := problem([]float64{1}, [][]float64{{-1}}, []float64{0})

	sol, err := lp.NewSimplex().Solve(p)
	require.ErrorIs(t, err, lp.ErrUnbounded)
	require.Equal(t, lp.StatusUnbounded, sol.Status)
}

func TestSimplex_DegenerateVertex(t *testing.T) {
	// Three constraints meet at (1,0); degeneracy must not cycle.
	p := problem(
		[]float64{1, 1},
		[][]float64{{1, 1}, {1, 0}, {0, 1}, {-1, 0}, {0, -1}},
		[]float64{1, 1, 1, 0, 0},
	)

	sol, err := lp.NewSimplex().Solve(p)
	require.NoError(t, err)
	require.InDelta(t, 1, sol.Value, 1e-9)
}

func TestSimplex_RedundantEqualityPair(t *testing.T) {
	// x = 2 encoded as x ≤ 2, -x ≤ -2 (the folded-equality form).
	p := problem([]float64{1}, [][]float64{{1}, {-1}}, []float64{2, -2})

	sol, err := lp.NewSimplex().Solve(p)
	require.NoError(t, err)
	require.InDelta(t, 2, sol.Value, 1e-9)
}

func TestSimplex_BadProblem(t *testing.T) {
	_, err := lp.NewSimplex().Solve(lp.Problem{})
	require.ErrorIs(t, err, lp.ErrBadProblem)

	// Objective length disagrees with the column count.
	p := problem([]float64{1}, [][]float64{{1}}, []float64{1})
	p.Objective = []float64{1, 2}
	_, err = lp.NewSimplex().Solve(p)
	require.ErrorIs(t, err, lp.ErrBadProblem)
}

func TestNew_Backends(t *testing.T) {
	s, err := lp.New(lp.BackendSimplex)
	require.NoError(t, err)
	require.IsType(t, &lp.Simplex{}, s)

	s, err = lp.New(lp.BackendHiGHS)
	require.NoError(t, err)
	require.IsType(t, &lp.HiGHS{}, s)

	_, err = lp.New("glpk")
	require.ErrorIs(t, err, lp.ErrUnknownBackend)
}

func BenchmarkSimplex_Box(b *testing.B) {
	// 20-dimensional box, maximize the all-ones direction.
	const n = 20
	obj := make([]float64, n)
	rows := make([][]float64, 2*n)
	rhs := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		obj[i] = 1
		up := make([]float64, n)
		lo := make([]float64, n)
		up[i], lo[i] = 1, -1
		rows[2*i], rows[2*i+1] = up, lo
		rhs[2*i], rhs[2*i+1] = 1, 1
	}
	p := problem(obj, rows, rhs)
	s := lp.NewSimplex()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Solve(p); err != nil {
			b.Fatal(err)
		}
	}
}
