// Package hrep implements the half-space representation of a convex
// polytope: the constraint system
//
//	{ x ∈ ℝⁿ : A·x ≤ b },
//
// with an optional equality subsystem Aeq·x = beq carved out of A/b when the
// caller wants equations kept apart from inequalities.
//
// The package provides:
//
//   - System — the (A, b[, Aeq, beq]) model, tagged with its arithmetic field.
//   - Validation — rows(A) == len(b), a single consistent ambient dimension,
//     finite entries. Shape violations surface as ErrDimensionMismatch, never
//     as silent empty results.
//   - Box — the axis-aligned hyper-rectangle builder, from either
//     (center, radius) or a per-axis interval list.
//
// Coefficients are stored in gonum dense containers; the field tag records
// the arithmetic regime intended for polytope construction and for casting
// query results (see package field).
package hrep
