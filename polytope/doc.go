// Package polytope is the representation-conversion layer between half-space
// models (hrep.System, A·x ≤ b) and constraint-object polytopes produced by
// a construction Engine.
//
// # Sign convention
//
// Externally a polytope is always A·x ≤ b. The engine convention instead
// stores each constraint as the row [offset, c_1, ..., c_n] meaning
//
//	offset + c·x ≥ 0.
//
// Crossing the boundary therefore negates coefficients and moves the
// right-hand side: FromHRep prepends b_i and negates the row
// ([b_i, -A_i1, ..., -A_in]); ToHRep strips the offset and negates back.
// Both transforms live in exactly two small pure functions in this package;
// no other component duplicates them.
//
// # Backends
//
// A Policy maps the arithmetic field to a construction Engine. The built-in
// exact engine (field.Rational) rescales rows to primitive integer form and
// drops duplicate and LP-redundant rows, mirroring exact libraries that
// reduce the system during construction; the built-in floating engine
// (field.Double) keeps rows verbatim. Because the exact backend reduces,
// converting to a polytope and back reproduces the same feasible region but
// not necessarily the same row order or scaling. For near-degenerate
// floating input, routing construction through the Rational field is the
// recommended way to avoid numerical fragility.
package polytope
