package field

import (
	"errors"
	"math/big"
)

// ErrUnsupportedKind is returned when a Kind is neither Rational nor Double.
var ErrUnsupportedKind = errors.New("field: unsupported field kind")

// ErrNotFinite is returned when a NaN or ±Inf value reaches an exact-field
// coercion; rationals cannot represent non-finite values.
var ErrNotFinite = errors.New("field: value is NaN or Inf")

// Kind identifies the arithmetic field of a representation.
type Kind int

const (
	// Rational selects exact big.Rat arithmetic and the exact construction
	// backend. This is the default Kind (zero value).
	Rational Kind = iota

	// Double selects IEEE 754 float64 arithmetic and the floating
	// construction backend.
	Double
)

// Valid reports whether k is one of the two supported kinds.
func (k Kind) Valid() bool {
	return k == Rational || k == Double
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Rational:
		return "rational"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// RatFromFloat coerces a float64 into an exact rational. Every finite
// float64 is a dyadic rational, so the coercion is lossless.
// Returns ErrNotFinite on NaN or ±Inf.
func RatFromFloat(v float64) (*big.Rat, error) {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		return nil, ErrNotFinite
	}

	return r, nil
}

// FloatFromRat coerces an exact rational into the nearest float64.
// The round-trip RatFromFloat(FloatFromRat(r)) is lossy in general.
func FloatFromRat(r *big.Rat) float64 {
	f, _ := r.Float64()

	return f
}
