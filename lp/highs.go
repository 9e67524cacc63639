package lp

import (
	"fmt"

	highs "github.com/bartolsthoorn/gohighs/highs"
	"gonum.org/v1/gonum/mat"
)

// HiGHS adapts the gohighs bindings to the Solver interface. Each Solve
// builds one highs.Model with free column bounds and one ≤-row per
// constraint, runs it, and maps the model status onto the lp error
// taxonomy.
type HiGHS struct{}

var _ Solver = (*HiGHS)(nil)

// NewHiGHS returns a HiGHS-backed solver.
func NewHiGHS() *HiGHS {
	return &HiGHS{}
}

// Solve implements the Solver interface.
func (h *HiGHS) Solve(p Problem) (Solution, error) {
	if err := validateProblem(p); err != nil {
		return Solution{}, err
	}
	m, n := p.A.Dims()

	model := highs.Model{
		Maximize: true,
		ColCosts: append([]float64(nil), p.Objective...),
		ColLower: make([]float64, n),
		ColUpper: make([]float64, n),
	}
	// All variables are free.
	for j := 0; j < n; j++ {
		model.ColLower[j] = highs.NegInf()
		model.ColUpper[j] = highs.Inf()
	}
	for i := 0; i < m; i++ {
		model.AddLeRow(mat.Row(nil, i, p.A), p.B.AtVec(i))
	}

	sol, err := model.Solve()
	if err != nil {
		return Solution{}, fmt.Errorf("lp: highs solve: %w", err)
	}
	switch {
	case sol.IsOptimal():
		return Solution{
			Status: StatusOptimal,
			Value:  sol.Objective,
			Point:  sol.ColValues,
		}, nil
	case sol.IsInfeasible():
		return Solution{Status: StatusInfeasible}, ErrInfeasible
	case sol.IsUnbounded():
		return Solution{Status: StatusUnbounded}, ErrUnbounded
	default:
		return Solution{}, fmt.Errorf("lp: highs status %v: %w", sol.Status, ErrBadProblem)
	}
}
