// Package polytope: sentinel error set, matched via errors.Is.

package polytope

import "errors"

var (
	// ErrNilHandle indicates a nil polytope handle argument.
	ErrNilHandle = errors.New("polytope: nil handle")

	// ErrNoConstraints indicates a construction request with zero rows; an
	// unconstrained "polytope" has no half-space description.
	ErrNoConstraints = errors.New("polytope: no constraint rows")

	// ErrBadRow indicates a constraint row whose length does not match the
	// ambient dimension plus the leading offset, or a non-finite entry.
	ErrBadRow = errors.New("polytope: malformed constraint row")
)
