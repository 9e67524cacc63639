// Package hrep: sentinel error set. All shape and input-resolution failures
// in this package return these sentinels (possibly wrapped with context via
// fmt.Errorf("...: %w", ...)); callers match them with errors.Is.

package hrep

import "errors"

var (
	// ErrNilSystem indicates that a nil *System (or nil A/b component) was
	// passed where a constraint system is required.
	ErrNilSystem = errors.New("hrep: nil system")

	// ErrDimensionMismatch indicates incompatible shapes: rows(A) != len(b),
	// an equality subsystem with a different column count, or a query
	// direction whose length differs from the ambient dimension.
	ErrDimensionMismatch = errors.New("hrep: dimension mismatch")

	// ErrAmbiguousInput indicates that a construction input mode could not
	// be uniquely resolved (e.g. Box given both center/radius and lengths,
	// or neither).
	ErrAmbiguousInput = errors.New("hrep: ambiguous construction input")

	// ErrNaNInf indicates a NaN or ±Inf coefficient where finite values are
	// required.
	ErrNaNInf = errors.New("hrep: NaN or Inf entry")
)
