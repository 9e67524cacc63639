package polytope

import (
	"github.com/katalvlaran/polyq/field"
	"github.com/katalvlaran/polyq/hrep"
)

// Constraint is one row of a polytope's constraint system in the engine
// convention: Row holds [offset, c_1, ..., c_n] and means
// offset + c·x ≥ 0 (or = 0 when Equation is true).
type Constraint struct {
	Equation bool
	Row      []float64
}

// Handle is a read-only polytope owned by a construction Engine. The core
// never mutates a handle; Constraints returns the ordered constraint rows
// as the engine stored them (which may differ from the construction input
// in order and scaling).
//
// Every Handle also satisfies query.Source through Hrep, so handles can be
// passed to the query engine directly.
type Handle interface {
	// Constraints returns the ordered constraint rows.
	Constraints() []Constraint

	// Empty reports whether the feasible region is empty.
	Empty() bool

	// Dim returns the ambient dimension n.
	Dim() int

	// Kind returns the arithmetic field the polytope was built in.
	Kind() field.Kind

	// Hrep returns the inequality half-space model of the polytope
	// (equalities folded, never separated).
	Hrep() (*hrep.System, error)
}

// Engine is the external polytope-construction boundary. Build receives
// inequality rows in the engine convention ([offset, coeffs...], meaning
// offset + c·x ≥ 0) and the ambient dimension, and returns an immutable
// handle. Implementations may reorder, rescale or drop redundant rows.
type Engine interface {
	Build(rows [][]float64, dim int) (Handle, error)
}
