package polytope

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polyq/field"
	"github.com/katalvlaran/polyq/hrep"
	"github.com/katalvlaran/polyq/lp"
)

// redundancyTol bounds how far a support value may exceed a row's offset
// before the row stops counting as redundant. The redundancy probe runs in
// floating arithmetic, so a row within this tolerance of being implied is
// dropped even when it is not exactly implied.
const redundancyTol = 1e-7

// handle is the built-in engines' immutable polytope object.
type handle struct {
	kind  field.Kind
	dim   int
	cons  []Constraint
	empty bool
}

func (h *handle) Constraints() []Constraint {
	out := make([]Constraint, len(h.cons))
	copy(out, h.cons)

	return out
}

func (h *handle) Empty() bool      { return h.empty }
func (h *handle) Dim() int         { return h.dim }
func (h *handle) Kind() field.Kind { return h.kind }

func (h *handle) Hrep() (*hrep.System, error) { return ToHRep(h) }

// FloatingEngine builds polytopes in the Double field. Rows are stored
// verbatim (no reduction); only emptiness is established, via one LP
// feasibility probe. A nil solver falls back to the built-in simplex.
type FloatingEngine struct {
	solver lp.Solver
}

// NewFloatingEngine returns the floating construction backend.
func NewFloatingEngine(s lp.Solver) *FloatingEngine {
	if s == nil {
		s = lp.NewSimplex()
	}

	return &FloatingEngine{solver: s}
}

// Build implements the Engine interface.
func (e *FloatingEngine) Build(rows [][]float64, dim int) (Handle, error) {
	if err := validateRows(rows, dim); err != nil {
		return nil, err
	}
	cons := make([]Constraint, len(rows))
	for i, r := range rows {
		cons[i] = Constraint{Row: append([]float64(nil), r...)}
	}
	empty, err := probeEmpty(e.solver, cons, dim)
	if err != nil {
		return nil, err
	}

	return &handle{kind: field.Double, dim: dim, cons: cons, empty: empty}, nil
}

// ExactEngine builds polytopes in the Rational field. Every row is coerced
// element-wise into big.Rat (lossless for finite float64 input), rescaled to
// primitive integer form, and the system is reduced: exact duplicates and
// LP-redundant rows are dropped. This is what makes the Rational route
// robust for near-degenerate floating input.
//
// The coercion, rescale and duplicate drop are exact; the redundancy drop is
// not — it runs LP probes in floating arithmetic with a redundancyTol slack,
// so a row implied only up to that tolerance is also removed, and the
// feasible region may grow by up to redundancyTol per dropped row.
type ExactEngine struct {
	solver lp.Solver
}

// NewExactEngine returns the exact construction backend.
func NewExactEngine(s lp.Solver) *ExactEngine {
	if s == nil {
		s = lp.NewSimplex()
	}

	return &ExactEngine{solver: s}
}

// Build implements the Engine interface.
func (e *ExactEngine) Build(rows [][]float64, dim int) (Handle, error) {
	if err := validateRows(rows, dim); err != nil {
		return nil, err
	}

	// Coerce, rescale to primitive integers, drop exact duplicates.
	seen := make(map[string]bool, len(rows))
	cons := make([]Constraint, 0, len(rows))
	for _, r := range rows {
		exact := make([]*big.Rat, len(r))
		for j, v := range r {
			rv, err := field.RatFromFloat(v)
			if err != nil {
				return nil, fmt.Errorf("polytope: %v: %w", err, ErrBadRow)
			}
			exact[j] = rv
		}
		ints := primitiveInts(exact)
		key := intsKey(ints)
		if seen[key] {
			continue
		}
		seen[key] = true

		norm := make([]float64, len(ints))
		for j, v := range ints {
			norm[j] = field.FloatFromRat(new(big.Rat).SetInt(v))
		}
		cons = append(cons, Constraint{Row: norm})
	}

	empty, err := probeEmpty(e.solver, cons, dim)
	if err != nil {
		return nil, err
	}
	if !empty {
		cons, err = dropRedundant(e.solver, cons, dim)
		if err != nil {
			return nil, err
		}
	}

	return &handle{kind: field.Rational, dim: dim, cons: cons, empty: empty}, nil
}

// validateRows checks engine input: at least one row, every row of length
// dim+1, all entries finite.
func validateRows(rows [][]float64, dim int) error {
	if dim < 1 {
		return fmt.Errorf("polytope: ambient dimension %d: %w", dim, hrep.ErrDimensionMismatch)
	}
	if len(rows) == 0 {
		return ErrNoConstraints
	}
	for i, r := range rows {
		if len(r) != dim+1 {
			return fmt.Errorf("polytope: row %d has length %d, want %d: %w", i, len(r), dim+1, ErrBadRow)
		}
		for j, v := range r {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("polytope: row %d entry %d: %w", i, j, ErrBadRow)
			}
		}
	}

	return nil
}

// inequalitySystem converts engine rows back to (A, b) LP constraint form.
func inequalitySystem(cons []Constraint, dim int) (*mat.Dense, *mat.VecDense) {
	a := mat.NewDense(len(cons), dim, nil)
	b := mat.NewVecDense(len(cons), nil)
	for i, c := range cons {
		row, rhs := stripNegate(c.Row)
		a.SetRow(i, row)
		b.SetVec(i, rhs)
	}

	return a, b
}

// probeEmpty runs one zero-objective feasibility LP over the rows.
func probeEmpty(s lp.Solver, cons []Constraint, dim int) (bool, error) {
	a, b := inequalitySystem(cons, dim)
	_, err := s.Solve(lp.Problem{Objective: make([]float64, dim), A: a, B: b})
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, lp.ErrInfeasible):
		return true, nil
	default:
		return false, err
	}
}

// dropRedundant removes rows implied by the remaining system: row i with
// half-space form a·x ≤ β is redundant when max{a·x} over the other rows
// stays at or below β (within redundancyTol). Unbounded support means the
// row is carrying, so it is kept. Precondition: the system is non-empty.
func dropRedundant(s lp.Solver, cons []Constraint, dim int) ([]Constraint, error) {
	i := 0
	for i < len(cons) && len(cons) > 1 {
		others := make([]Constraint, 0, len(cons)-1)
		others = append(others, cons[:i]...)
		others = append(others, cons[i+1:]...)

		obj, rhs := stripNegate(cons[i].Row)
		a, b := inequalitySystem(others, dim)
		sol, err := s.Solve(lp.Problem{Objective: obj, A: a, B: b})
		switch {
		case errors.Is(err, lp.ErrUnbounded):
			i++
		case err != nil:
			return nil, err
		case sol.Value <= rhs+redundancyTol:
			cons = others
		default:
			i++
		}
	}

	return cons, nil
}

// primitiveInts rescales a rational row by a positive factor into coprime
// integers: multiply by the denominators' LCM, divide by the entries' GCD.
// Positive scaling only — flipping the sign would flip the inequality.
func primitiveInts(row []*big.Rat) []*big.Int {
	l := big.NewInt(1)
	for _, r := range row {
		l = lcmInt(l, r.Denom())
	}

	ints := make([]*big.Int, len(row))
	g := new(big.Int)
	for i, r := range row {
		v := new(big.Int).Mul(r.Num(), new(big.Int).Div(l, r.Denom()))
		ints[i] = v
		g = gcdInt(g, new(big.Int).Abs(v))
	}
	if g.Sign() > 0 && g.Cmp(big.NewInt(1)) > 0 {
		for i := range ints {
			ints[i] = new(big.Int).Div(ints[i], g)
		}
	}

	return ints
}

// gcdInt returns gcd(a, b) with gcd(0, x) = x; inputs must be non-negative.
func gcdInt(a, b *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int).Set(b)
	}
	if b.Sign() == 0 {
		return new(big.Int).Set(a)
	}

	return new(big.Int).GCD(nil, nil, a, b)
}

// lcmInt returns lcm(a, b) for positive a, b.
func lcmInt(a, b *big.Int) *big.Int {
	g := gcdInt(new(big.Int).Abs(a), new(big.Int).Abs(b))

	return new(big.Int).Mul(new(big.Int).Div(a, g), b)
}

// intsKey is the dedup key for a primitive integer row.
func intsKey(ints []*big.Int) string {
	var sb strings.Builder
	for _, v := range ints {
		sb.WriteString(v.String())
		sb.WriteByte(',')
	}

	return sb.String()
}
