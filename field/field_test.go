package field_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyq/field"
)

func TestKindValid(t *testing.T) {
	require.True(t, field.Rational.Valid())
	require.True(t, field.Double.Valid())
	require.False(t, field.Kind(7).Valid())

	// Rational is the zero value, i.e. the default field.
	var k field.Kind
	require.Equal(t, field.Rational, k)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "rational", field.Rational.String())
	require.Equal(t, "double", field.Double.String())
	require.Equal(t, "unknown", field.Kind(-1).String())
}

func TestRatFromFloat_Lossless(t *testing.T) {
	// 0.1 is not 1/10 in binary; the coercion must capture the exact dyadic
	// value, so converting back yields the identical float64.
	r, err := field.RatFromFloat(0.1)
	require.NoError(t, err)
	require.Equal(t, 0.1, field.FloatFromRat(r))

	r, err = field.RatFromFloat(-2.5)
	require.NoError(t, err)
	require.Equal(t, 0, r.Cmp(big.NewRat(-5, 2)))
}

func TestRatFromFloat_NotFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := field.RatFromFloat(v)
		require.ErrorIs(t, err, field.ErrNotFinite)
	}
}

func TestNewVector(t *testing.T) {
	v, err := field.NewVector(field.Rational, []float64{1, 2.5, -3})
	require.NoError(t, err)
	require.Equal(t, field.Rational, v.Kind())
	require.Equal(t, 3, v.Len())
	require.Equal(t, 2.5, v.At(1))
	require.Equal(t, []float64{1, 2.5, -3}, v.Float64())

	r, err := v.Rat(1)
	require.NoError(t, err)
	require.Equal(t, 0, r.Cmp(big.NewRat(5, 2)))
}

func TestNewVector_DoubleHasNoExactShadow(t *testing.T) {
	v, err := field.NewVector(field.Double, []float64{1, 2})
	require.NoError(t, err)

	_, err = v.Rat(0)
	require.ErrorIs(t, err, field.ErrUnsupportedKind)
}

func TestNewVector_Errors(t *testing.T) {
	_, err := field.NewVector(field.Kind(9), []float64{1})
	require.ErrorIs(t, err, field.ErrUnsupportedKind)

	_, err = field.NewVector(field.Rational, []float64{math.NaN()})
	require.ErrorIs(t, err, field.ErrNotFinite)
}

func TestVectorImmutable(t *testing.T) {
	in := []float64{1, 2}
	v, err := field.NewVector(field.Double, in)
	require.NoError(t, err)

	in[0] = 99
	require.Equal(t, 1.0, v.At(0))

	out := v.Float64()
	out[1] = 99
	require.Equal(t, 2.0, v.At(1))
}
