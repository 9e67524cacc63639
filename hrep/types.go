package hrep

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polyq/field"
)

// Equalities is the optional carved-out equality subsystem Aeq·x = beq.
// The column count of A must match the owning System's ambient dimension.
type Equalities struct {
	A *mat.Dense
	B *mat.VecDense
}

// System is the half-space model of a convex polytope: A·x ≤ b, optionally
// together with an equality subsystem. All coefficients live in one
// arithmetic field, recorded by Kind.
//
// Invariants (checked by NewSystem / Validate):
//   - rows(A) == b.Len()
//   - cols(A) is the ambient dimension, shared by Eq when present
//   - every entry is finite
type System struct {
	A    *mat.Dense
	B    *mat.VecDense
	Kind field.Kind
	Eq   *Equalities
}

// NewSystem validates and wraps an inequality system A·x ≤ b in field k.
func NewSystem(a *mat.Dense, b *mat.VecDense, k field.Kind) (*System, error) {
	if !k.Valid() {
		return nil, field.ErrUnsupportedKind
	}
	s := &System{A: a, B: b, Kind: k}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Dim returns the ambient dimension n (column count of A).
func (s *System) Dim() int {
	_, n := s.A.Dims()

	return n
}

// Rows returns the number of inequality rows m.
func (s *System) Rows() int {
	m, _ := s.A.Dims()

	return m
}

// Hrep returns the system itself after validation. It makes *System satisfy
// the query.Source interface, so half-space models and polytope handles are
// interchangeable query inputs.
func (s *System) Hrep() (*System, error) {
	if s == nil {
		return nil, ErrNilSystem
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// InequalityForm returns an equivalent system with no equality subsystem:
// each equality row a·x = β is folded into the two inequalities a·x ≤ β and
// -a·x ≤ -β. Systems without equalities are returned unchanged.
func (s *System) InequalityForm() (*System, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Eq == nil {
		return s, nil
	}

	m, n := s.A.Dims()
	me, _ := s.Eq.A.Dims()

	a := mat.NewDense(m+2*me, n, nil)
	b := mat.NewVecDense(m+2*me, nil)
	for i := 0; i < m; i++ {
		a.SetRow(i, s.A.RawRowView(i))
		b.SetVec(i, s.B.AtVec(i))
	}
	for i := 0; i < me; i++ {
		row := s.Eq.A.RawRowView(i)
		neg := make([]float64, n)
		for j, v := range row {
			neg[j] = -v
		}
		a.SetRow(m+2*i, row)
		b.SetVec(m+2*i, s.Eq.B.AtVec(i))
		a.SetRow(m+2*i+1, neg)
		b.SetVec(m+2*i+1, -s.Eq.B.AtVec(i))
	}

	return &System{A: a, B: b, Kind: s.Kind}, nil
}
