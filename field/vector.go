package field

import "math/big"

// Vector is a fixed-length coordinate vector tagged with its arithmetic
// field. For the Rational kind an exact big.Rat shadow of every coordinate
// is kept alongside the float64 view; for Double only the float64 view
// exists. Vectors are immutable after construction.
type Vector struct {
	kind Kind
	f    []float64
	r    []*big.Rat // non-nil iff kind == Rational
}

// NewVector coerces vals element-wise into field k and returns the tagged
// vector. Returns ErrUnsupportedKind for an unknown kind and ErrNotFinite
// when a NaN/Inf value reaches the Rational field.
func NewVector(k Kind, vals []float64) (Vector, error) {
	if !k.Valid() {
		return Vector{}, ErrUnsupportedKind
	}

	// Keep a private copy of the float view.
	f := make([]float64, len(vals))
	copy(f, vals)

	v := Vector{kind: k, f: f}
	if k == Rational {
		v.r = make([]*big.Rat, len(vals))
		for i, x := range vals {
			rx, err := RatFromFloat(x)
			if err != nil {
				return Vector{}, err
			}
			v.r[i] = rx
		}
	}

	return v, nil
}

// Kind returns the arithmetic field of the vector.
func (v Vector) Kind() Kind { return v.kind }

// Len returns the number of coordinates.
func (v Vector) Len() int { return len(v.f) }

// At returns coordinate i as a float64.
func (v Vector) At(i int) float64 { return v.f[i] }

// Float64 returns a copy of the coordinates as float64 values.
func (v Vector) Float64() []float64 {
	out := make([]float64, len(v.f))
	copy(out, v.f)

	return out
}

// Rat returns the exact value of coordinate i. Only available for the
// Rational kind; Double vectors carry no exact shadow.
func (v Vector) Rat(i int) (*big.Rat, error) {
	if v.kind != Rational {
		return nil, ErrUnsupportedKind
	}

	return new(big.Rat).Set(v.r[i]), nil
}
