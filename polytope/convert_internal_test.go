package polytope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The two boundary transforms carry the whole sign convention; every case
// of the negate-and-prepend / strip-and-negate pair is pinned down here.

func TestPrependNegate(t *testing.T) {
	cases := []struct {
		name string
		a    []float64
		b    float64
		want []float64
	}{
		{"unit row", []float64{1, 0}, 2, []float64{2, -1, -0.0}},
		{"negative coeffs", []float64{-1, -2}, -3, []float64{-3, 1, 2}},
		{"zero row", []float64{0, 0, 0}, 0, []float64{0, -0.0, -0.0, -0.0}},
		{"single var", []float64{4}, -8, []float64{-8, -4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := prependNegate(tc.a, tc.b)
			require.InDeltaSlice(t, tc.want, got, 0)
		})
	}
}

func TestStripNegate(t *testing.T) {
	cases := []struct {
		name  string
		row   []float64
		wantA []float64
		wantB float64
	}{
		{"unit row", []float64{2, -1, 0}, []float64{1, -0.0}, 2},
		{"negative offset", []float64{-3, 1, 2}, []float64{-1, -2}, -3},
		{"single var", []float64{-8, -4}, []float64{4}, -8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := stripNegate(tc.row)
			require.InDeltaSlice(t, tc.wantA, a, 0)
			require.Equal(t, tc.wantB, b)
		})
	}
}

func TestBoundaryTransformsInverse(t *testing.T) {
	// stripNegate ∘ prependNegate is the identity on (a, b).
	a := []float64{1.5, -2, 0, 7}
	b := -4.25

	back, rhs := stripNegate(prependNegate(a, b))
	require.InDeltaSlice(t, a, back, 0)
	require.Equal(t, b, rhs)
}

func TestNegateRow(t *testing.T) {
	require.InDeltaSlice(t, []float64{-1, 2, -3}, negateRow([]float64{1, -2, 3}), 0)
}
