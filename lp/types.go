package lp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInfeasible reports that the constraint system A·x ≤ b has no
	// solution. Surfaced unchanged to query callers.
	ErrInfeasible = errors.New("lp: problem is infeasible")

	// ErrUnbounded reports that the objective is unbounded above on the
	// feasible region.
	ErrUnbounded = errors.New("lp: problem is unbounded")

	// ErrBadProblem indicates a malformed Problem: nil components or
	// mismatched objective/constraint dimensions.
	ErrBadProblem = errors.New("lp: malformed problem")

	// ErrUnknownBackend indicates that New was given a backend name it does
	// not recognize.
	ErrUnknownBackend = errors.New("lp: unknown solver backend")

	// ErrPivotLimit indicates that the simplex backend exceeded its pivot
	// budget without converging (numerical degeneracy guard).
	ErrPivotLimit = errors.New("lp: pivot limit exceeded")
)

// Status classifies the outcome of one solve.
type Status int

const (
	// StatusOptimal — an optimal value and point were found.
	StatusOptimal Status = iota

	// StatusInfeasible — the feasible region is empty.
	StatusInfeasible

	// StatusUnbounded — the objective is unbounded on the feasible region.
	StatusUnbounded
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Problem is one ephemeral linear program: maximize Objective·x subject to
// A·x ≤ b over free real variables. Problems are built per query, solved
// once and discarded; no state persists across solves.
type Problem struct {
	Objective []float64
	A         *mat.Dense
	B         *mat.VecDense
}

// Solution is the outcome of one solve. Point is populated only for
// StatusOptimal and maps coordinate index to value.
type Solution struct {
	Status Status
	Value  float64
	Point  []float64
}

// Solver is the external LP boundary: one synchronous solve per call.
// Implementations must be reentrant; the library performs no additional
// synchronization around them.
type Solver interface {
	Solve(p Problem) (Solution, error)
}

// validateProblem checks Problem shape invariants.
func validateProblem(p Problem) error {
	if p.A == nil || p.B == nil || p.Objective == nil {
		return fmt.Errorf("lp: nil component: %w", ErrBadProblem)
	}
	m, n := p.A.Dims()
	if m == 0 || n == 0 {
		return fmt.Errorf("lp: empty constraint matrix: %w", ErrBadProblem)
	}
	if len(p.Objective) != n {
		return fmt.Errorf("lp: objective length %d, variables %d: %w", len(p.Objective), n, ErrBadProblem)
	}
	if p.B.Len() != m {
		return fmt.Errorf("lp: rows(A)=%d, len(b)=%d: %w", m, p.B.Len(), ErrBadProblem)
	}

	return nil
}
