package hrep

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Validate checks the System invariants: non-nil components, matching row
// counts, one consistent ambient dimension and finite entries.
// Returns ErrNilSystem, ErrDimensionMismatch or ErrNaNInf.
func (s *System) Validate() error {
	if s == nil || s.A == nil || s.B == nil {
		return ErrNilSystem
	}
	m, n := s.A.Dims()
	if n == 0 {
		return fmt.Errorf("hrep: ambient dimension is zero: %w", ErrDimensionMismatch)
	}
	if m != s.B.Len() {
		return fmt.Errorf("hrep: rows(A)=%d, len(b)=%d: %w", m, s.B.Len(), ErrDimensionMismatch)
	}
	if err := checkFinite(s.A, s.B); err != nil {
		return err
	}
	if s.Eq != nil {
		if s.Eq.A == nil || s.Eq.B == nil {
			return ErrNilSystem
		}
		me, ne := s.Eq.A.Dims()
		if ne != n {
			return fmt.Errorf("hrep: cols(Aeq)=%d, cols(A)=%d: %w", ne, n, ErrDimensionMismatch)
		}
		if me != s.Eq.B.Len() {
			return fmt.Errorf("hrep: rows(Aeq)=%d, len(beq)=%d: %w", me, s.Eq.B.Len(), ErrDimensionMismatch)
		}
		if err := checkFinite(s.Eq.A, s.Eq.B); err != nil {
			return err
		}
	}

	return nil
}

// checkFinite rejects NaN and ±Inf coefficients in one (A, b) pair.
func checkFinite(a *mat.Dense, b *mat.VecDense) error {
	m, n := a.Dims()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if !finite(a.At(i, j)) {
				return fmt.Errorf("hrep: A[%d][%d]: %w", i, j, ErrNaNInf)
			}
		}
		if !finite(b.AtVec(i)) {
			return fmt.Errorf("hrep: b[%d]: %w", i, ErrNaNInf)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validateDirection checks a query direction against the ambient dimension.
func validateDirection(n int, d []float64) error {
	if len(d) != n {
		return fmt.Errorf("hrep: direction length %d, ambient dimension %d: %w",
			len(d), n, ErrDimensionMismatch)
	}
	for i, v := range d {
		if !finite(v) {
			return fmt.Errorf("hrep: direction[%d]: %w", i, ErrNaNInf)
		}
	}

	return nil
}

// CheckDirection verifies that d is a finite vector of the system's ambient
// dimension. Exposed for the query layer so every directional query applies
// the same shape rule.
func (s *System) CheckDirection(d []float64) error {
	if err := s.Validate(); err != nil {
		return err
	}

	return validateDirection(s.Dim(), d)
}
