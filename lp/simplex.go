package lp

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultEpsilon is the pivoting tolerance: entries with absolute value
	// at or below it are treated as zero.
	DefaultEpsilon = 1e-9

	// feasibilityTol bounds the residual phase-1 objective that still counts
	// as feasible. Looser than the pivot tolerance to absorb accumulated
	// elimination error.
	feasibilityTol = 1e-7
)

// errNoLeavingRow marks an entering column with no positive pivot entry,
// i.e. an unbounded ray. Internal; Solve maps it to ErrUnbounded.
var errNoLeavingRow = errors.New("lp: entering column has no positive pivot entry")

// Simplex is the built-in dense two-phase tableau simplex.
//
// Algorithm outline:
//  1. Split every free variable x_j = u_j - w_j with u, w ≥ 0, add one
//     slack per row, negate rows with negative right-hand side and give
//     them a phase-1 artificial variable.
//  2. Phase 1: minimize the artificial sum. A positive minimum means the
//     region is empty (ErrInfeasible). Leftover basic artificials are
//     pivoted out; rows where that is impossible are redundant and dropped.
//  3. Phase 2: minimize -c·x with artificial columns barred from entering.
//     An entering column with no positive entry means ErrUnbounded.
//
// Bland's smallest-index rule is used in both phases, so the method cannot
// cycle; a generous pivot budget guards against numerical stalling
// (ErrPivotLimit).
//
// Complexity: O((m+n)·m) per pivot, exponential worst case, fast in
// practice for the tens-of-variables regime this library targets.
type Simplex struct {
	// Eps is the pivoting tolerance; non-positive values fall back to
	// DefaultEpsilon.
	Eps float64
}

var _ Solver = (*Simplex)(nil)

// NewSimplex returns a Simplex with the default tolerance.
func NewSimplex() *Simplex {
	return &Simplex{Eps: DefaultEpsilon}
}

// Solve implements the Solver interface.
func (s *Simplex) Solve(p Problem) (Solution, error) {
	if err := validateProblem(p); err != nil {
		return Solution{}, err
	}
	eps := s.Eps
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	m, n := p.A.Dims()

	// Column layout: [0,n) positive parts u, [n,2n) negative parts w
	// (x = u - w), [2n,2n+m) slacks, [2n+m, 2n+m+art) artificials,
	// last column the right-hand side.
	art := 0
	for i := 0; i < m; i++ {
		if p.B.AtVec(i) < 0 {
			art++
		}
	}
	structural := 2*n + m
	width := structural + art + 1
	rhs := width - 1

	t := make([][]float64, m)
	basis := make([]int, m)
	ai := 0
	for i := 0; i < m; i++ {
		row := make([]float64, width)
		sign := 1.0
		if p.B.AtVec(i) < 0 {
			sign = -1
		}
		for j := 0; j < n; j++ {
			v := sign * p.A.At(i, j)
			row[j] = v
			row[n+j] = -v
		}
		row[2*n+i] = sign
		row[rhs] = sign * p.B.AtVec(i)
		if sign < 0 {
			// Negating the row flips the slack to -1, so the initial basic
			// variable must be an artificial instead.
			col := structural + ai
			row[col] = 1
			basis[i] = col
			ai++
		} else {
			basis[i] = 2*n + i
		}
		t[i] = row
	}

	if art > 0 {
		// Phase 1: minimize the artificial sum.
		cost := make([]float64, width)
		for j := structural; j < rhs; j++ {
			cost[j] = 1
		}
		z := reducedCosts(cost, t, basis, width)
		if err := pivotLoop(t, z, basis, rhs, structural+art, eps); err != nil {
			return Solution{}, err
		}
		if -z[rhs] > feasibilityTol {
			return Solution{Status: StatusInfeasible}, ErrInfeasible
		}
		t, basis = dropArtificials(t, basis, structural, eps)
	}

	if len(t) == 0 {
		// Every row was redundant: the feasible region is all of ℝⁿ.
		for _, c := range p.Objective {
			if c != 0 {
				return Solution{Status: StatusUnbounded}, ErrUnbounded
			}
		}

		return Solution{Status: StatusOptimal, Point: make([]float64, n)}, nil
	}

	// Phase 2: minimize -c·x; artificial columns are barred from entering.
	cost := make([]float64, width)
	for j := 0; j < n; j++ {
		cost[j] = -p.Objective[j]
		cost[n+j] = p.Objective[j]
	}
	z := reducedCosts(cost, t, basis, width)
	if err := pivotLoop(t, z, basis, rhs, structural, eps); err != nil {
		if errors.Is(err, errNoLeavingRow) {
			return Solution{Status: StatusUnbounded}, ErrUnbounded
		}

		return Solution{}, err
	}

	// Extract the basic solution and fold the split back: x = u - w.
	vals := make([]float64, structural)
	for i, b := range basis {
		if b < structural {
			vals[b] = t[i][rhs]
		}
	}
	x := make([]float64, n)
	for j := 0; j < n; j++ {
		x[j] = vals[j] - vals[n+j]
	}

	return Solution{
		Status: StatusOptimal,
		Value:  floats.Dot(p.Objective, x),
		Point:  x,
	}, nil
}

// reducedCosts builds the canonical objective row for the given basis:
// z = cost - Σ_i cost[basis[i]]·t[i]. The right-hand-side entry of z then
// holds the negated objective value of the current basic solution.
func reducedCosts(cost []float64, t [][]float64, basis []int, width int) []float64 {
	z := make([]float64, width)
	copy(z, cost)
	for i, b := range basis {
		cb := cost[b]
		if cb == 0 {
			continue
		}
		for j := 0; j < width; j++ {
			z[j] -= cb * t[i][j]
		}
	}

	return z
}

// pivotLoop runs Bland-rule pivoting until no column in [0, limit) has a
// negative reduced cost. Returns errNoLeavingRow on an unbounded ray and
// ErrPivotLimit if the pivot budget is exhausted.
func pivotLoop(t [][]float64, z []float64, basis []int, rhs, limit int, eps float64) error {
	budget := 200 * (len(t) + limit + 1)
	for iter := 0; ; iter++ {
		if iter > budget {
			return ErrPivotLimit
		}

		// Bland: smallest-index entering column.
		enter := -1
		for j := 0; j < limit; j++ {
			if z[j] < -eps {
				enter = j
				break
			}
		}
		if enter < 0 {
			return nil // optimal
		}

		// Minimum-ratio leaving row; ties broken on smallest basis index.
		leave := -1
		best := math.Inf(1)
		for i := range t {
			a := t[i][enter]
			if a <= eps {
				continue
			}
			r := t[i][rhs] / a
			switch {
			case leave < 0 || r < best-eps:
				best, leave = r, i
			case math.Abs(r-best) <= eps && basis[i] < basis[leave]:
				best, leave = r, i
			}
		}
		if leave < 0 {
			return errNoLeavingRow
		}
		pivot(t, z, basis, leave, enter)
	}
}

// pivot performs one Gauss-Jordan step: row `leave` is scaled so column
// `enter` becomes 1, the column is eliminated everywhere else (including
// the objective row when z is non-nil), and the basis is updated.
func pivot(t [][]float64, z []float64, basis []int, leave, enter int) {
	row := t[leave]
	piv := row[enter]
	for j := range row {
		row[j] /= piv
	}
	row[enter] = 1

	for i := range t {
		if i == leave {
			continue
		}
		f := t[i][enter]
		if f == 0 {
			continue
		}
		for j := range t[i] {
			t[i][j] -= f * row[j]
		}
		t[i][enter] = 0
	}
	if z != nil {
		if f := z[enter]; f != 0 {
			for j := range z {
				z[j] -= f * row[j]
			}
			z[enter] = 0
		}
	}
	basis[leave] = enter
}

// dropArtificials removes phase-1 artificials after a feasible phase 1:
// basic artificials (necessarily at value zero) are pivoted onto any usable
// structural column; rows offering none are linearly dependent and dropped.
func dropArtificials(t [][]float64, basis []int, structural int, eps float64) ([][]float64, []int) {
	outT := make([][]float64, 0, len(t))
	outB := make([]int, 0, len(basis))
	for i := range t {
		if basis[i] < structural {
			outT = append(outT, t[i])
			outB = append(outB, basis[i])
			continue
		}
		enter := -1
		for j := 0; j < structural; j++ {
			if math.Abs(t[i][j]) > eps {
				enter = j
				break
			}
		}
		if enter < 0 {
			continue // redundant row
		}
		pivot(t, nil, basis, i, enter)
		outT = append(outT, t[i])
		outB = append(outB, basis[i])
	}

	return outT, outB
}
