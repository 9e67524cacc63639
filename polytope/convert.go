package polytope

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polyq/field"
	"github.com/katalvlaran/polyq/hrep"
)

// prependNegate converts one A·x ≤ b row into the engine convention:
// a·x ≤ β  ⇔  β + (-a)·x ≥ 0, encoded as [β, -a_1, ..., -a_n].
func prependNegate(a []float64, b float64) []float64 {
	row := make([]float64, len(a)+1)
	row[0] = b
	for j, v := range a {
		row[j+1] = -v
	}

	return row
}

// stripNegate is the inverse boundary transform: an engine row
// [β, c_1, ..., c_n] (meaning β + c·x ≥ 0) becomes the half-space row
// (-c)·x ≤ β.
func stripNegate(row []float64) (a []float64, b float64) {
	a = make([]float64, len(row)-1)
	for j, v := range row[1:] {
		a[j] = -v
	}

	return a, row[0]
}

// negateRow flips an entire engine row, offset included. Applied to an
// equation row it yields the second inequality of the ± pair that forces
// the equality within the ≤ convention.
func negateRow(row []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = -v
	}

	return out
}

// HrepOption configures ToHRep.
type HrepOption func(*hrepOptions)

type hrepOptions struct {
	separateEqualities bool
}

// WithSeparatedEqualities makes ToHRep place each equation row into the
// (Aeq, beq) subsystem instead of contributing a ± inequality pair to (A, b).
func WithSeparatedEqualities() HrepOption {
	return func(o *hrepOptions) { o.separateEqualities = true }
}

// ToHRep extracts the half-space model of a polytope by reading its
// constraint rows directly (no construction round trip).
//
// Each inequality row contributes one A·x ≤ b row via stripNegate. Each
// equation row contributes either one (Aeq, beq) row (when
// WithSeparatedEqualities is given) or two inequality rows — the row as-is
// and the row fully negated — which together force the equality.
//
// The result reproduces the feasible region exactly, but not necessarily
// the row order or scaling the polytope was originally built from: engines
// may reorder and rescale during construction. The returned system is
// tagged with the handle's field kind; coefficients are float64 either way.
func ToHRep(h Handle, opts ...HrepOption) (*hrep.System, error) {
	if h == nil {
		return nil, ErrNilHandle
	}
	var o hrepOptions
	for _, opt := range opts {
		opt(&o)
	}

	cons := h.Constraints()
	if len(cons) == 0 {
		return nil, ErrNoConstraints
	}
	n := h.Dim()

	var ineqA, eqA [][]float64
	var ineqB, eqB []float64
	for _, c := range cons {
		if len(c.Row) != n+1 {
			return nil, fmt.Errorf("polytope: row length %d, want %d: %w", len(c.Row), n+1, ErrBadRow)
		}
		switch {
		case c.Equation && o.separateEqualities:
			a, b := stripNegate(c.Row)
			eqA = append(eqA, a)
			eqB = append(eqB, b)
		case c.Equation:
			a, b := stripNegate(c.Row)
			ineqA = append(ineqA, a)
			ineqB = append(ineqB, b)
			a, b = stripNegate(negateRow(c.Row))
			ineqA = append(ineqA, a)
			ineqB = append(ineqB, b)
		default:
			a, b := stripNegate(c.Row)
			ineqA = append(ineqA, a)
			ineqB = append(ineqB, b)
		}
	}
	if len(ineqA) == 0 {
		// All rows were separated equations; the inequality block may not be
		// empty in a valid System, so keep one trivially true row 0·x ≤ 0.
		ineqA = append(ineqA, make([]float64, n))
		ineqB = append(ineqB, 0)
	}

	sys := &hrep.System{
		A:    denseFromRows(ineqA, n),
		B:    mat.NewVecDense(len(ineqB), ineqB),
		Kind: h.Kind(),
	}
	if len(eqA) > 0 {
		sys.Eq = &hrep.Equalities{
			A: denseFromRows(eqA, n),
			B: mat.NewVecDense(len(eqB), eqB),
		}
	}
	if err := sys.Validate(); err != nil {
		return nil, err
	}

	return sys, nil
}

// BuildOption configures FromHRep and BoxPolytope.
type BuildOption func(*buildOptions)

type buildOptions struct {
	policy  Policy
	havePol bool
}

// WithPolicy overrides the field→engine mapping used for construction.
func WithPolicy(p Policy) BuildOption {
	return func(o *buildOptions) {
		o.policy = p
		o.havePol = true
	}
}

// FromHRep constructs a polytope from a half-space model in the target
// field k. Every inequality row crosses the sign boundary via
// prependNegate; equality-subsystem rows are folded as ± pairs. The
// construction backend is chosen by the Policy (exact backend for
// field.Rational, floating backend for field.Double); an unknown kind
// returns field.ErrUnsupportedKind.
//
// When the input system is nearly degenerate floating data, build with
// k = field.Rational: the exact backend drops redundant and duplicate rows
// instead of tripping over them.
func FromHRep(sys *hrep.System, k field.Kind, opts ...BuildOption) (Handle, error) {
	if sys == nil {
		return nil, hrep.ErrNilSystem
	}
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	o := gatherBuildOptions(opts)

	engine, err := o.policy.Backend(k)
	if err != nil {
		return nil, err
	}

	flat, err := sys.InequalityForm()
	if err != nil {
		return nil, err
	}
	m, n := flat.A.Dims()
	rows := make([][]float64, m)
	for i := 0; i < m; i++ {
		rows[i] = prependNegate(flat.A.RawRowView(i), flat.B.AtVec(i))
	}

	return engine.Build(rows, n)
}

func gatherBuildOptions(opts []BuildOption) buildOptions {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	if !o.havePol {
		o.policy = DefaultPolicy()
	}

	return o
}

// denseFromRows packs equal-length rows into a gonum dense matrix.
func denseFromRows(rows [][]float64, n int) *mat.Dense {
	d := mat.NewDense(len(rows), n, nil)
	for i, r := range rows {
		d.SetRow(i, r)
	}

	return d
}
