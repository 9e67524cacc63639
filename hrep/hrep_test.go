package hrep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polyq/field"
	"github.com/katalvlaran/polyq/hrep"
)

func TestNewSystem_Valid(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	b := mat.NewVecDense(2, []float64{1, 1})

	s, err := hrep.NewSystem(a, b, field.Double)
	require.NoError(t, err)
	require.Equal(t, 2, s.Dim())
	require.Equal(t, 2, s.Rows())

	// A System is its own inequality source.
	self, err := s.Hrep()
	require.NoError(t, err)
	require.Same(t, s, self)
}

func TestNewSystem_RowMismatch(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	b := mat.NewVecDense(3, []float64{1, 1, 1})

	_, err := hrep.NewSystem(a, b, field.Double)
	require.ErrorIs(t, err, hrep.ErrDimensionMismatch)
}

func TestNewSystem_NaN(t *testing.T) {
	a := mat.NewDense(1, 1, []float64{math.NaN()})
	b := mat.NewVecDense(1, []float64{1})

	_, err := hrep.NewSystem(a, b, field.Rational)
	require.ErrorIs(t, err, hrep.ErrNaNInf)
}

func TestNewSystem_BadKind(t *testing.T) {
	a := mat.NewDense(1, 1, []float64{1})
	b := mat.NewVecDense(1, []float64{1})

	_, err := hrep.NewSystem(a, b, field.Kind(5))
	require.ErrorIs(t, err, field.ErrUnsupportedKind)
}

func TestValidate_NilSystem(t *testing.T) {
	var s *hrep.System
	require.ErrorIs(t, s.Validate(), hrep.ErrNilSystem)

	_, err := s.Hrep()
	require.ErrorIs(t, err, hrep.ErrNilSystem)
}

func TestValidate_EqualitySubsystem(t *testing.T) {
	a := mat.NewDense(1, 2, []float64{1, 0})
	b := mat.NewVecDense(1, []float64{1})

	s := &hrep.System{A: a, B: b, Kind: field.Double, Eq: &hrep.Equalities{
		A: mat.NewDense(1, 3, []float64{1, 1, 1}), // wrong column count
		B: mat.NewVecDense(1, []float64{0}),
	}}
	require.ErrorIs(t, s.Validate(), hrep.ErrDimensionMismatch)
}

func TestInequalityForm_FoldsEqualities(t *testing.T) {
	// x1 ≤ 2 plus the equality x2 = 3.
	s := &hrep.System{
		A:    mat.NewDense(1, 2, []float64{1, 0}),
		B:    mat.NewVecDense(1, []float64{2}),
		Kind: field.Double,
		Eq: &hrep.Equalities{
			A: mat.NewDense(1, 2, []float64{0, 1}),
			B: mat.NewVecDense(1, []float64{3}),
		},
	}

	flat, err := s.InequalityForm()
	require.NoError(t, err)
	require.Nil(t, flat.Eq)
	require.Equal(t, 3, flat.Rows())

	// Row 1: x2 ≤ 3; row 2: -x2 ≤ -3.
	require.Equal(t, []float64{0, 1}, flat.A.RawRowView(1))
	require.Equal(t, 3.0, flat.B.AtVec(1))
	require.Equal(t, []float64{0, -1}, flat.A.RawRowView(2))
	require.Equal(t, -3.0, flat.B.AtVec(2))
}

func TestCheckDirection(t *testing.T) {
	a := mat.NewDense(1, 2, []float64{1, 1})
	b := mat.NewVecDense(1, []float64{1})
	s, err := hrep.NewSystem(a, b, field.Double)
	require.NoError(t, err)

	require.NoError(t, s.CheckDirection([]float64{1, 0}))
	require.ErrorIs(t, s.CheckDirection([]float64{1}), hrep.ErrDimensionMismatch)
	require.ErrorIs(t, s.CheckDirection([]float64{1, math.Inf(1)}), hrep.ErrNaNInf)
}
