// Package polyq is a reusable geometric-query engine for convex polytopes
// in moderate-to-high ambient dimension, built around the idea that most
// questions about a polytope are one linear program away.
//
// What it gives you:
//
//   - Dual representations: the half-space model A·x ≤ b (hrep) and
//     engine-built constraint-object polytopes (polytope), with exact
//     bidirectional conversion.
//   - Two arithmetic regimes (field): exact rationals for degenerate or
//     fragile input, IEEE doubles for speed — never mixed silently.
//   - LP-backed queries (query): support function, Chebyshev center,
//     sup-norm radius.
//   - Pluggable LP backends (lp): a built-in two-phase simplex and HiGHS.
//
// Everything is organized under five subpackages:
//
//	field/    — arithmetic-regime tags and coercion boundary
//	hrep/     — half-space systems, validation, the box builder
//	lp/       — the LP solver boundary and backends
//	polytope/ — representation conversion and construction engines
//	query/    — the geometric queries themselves
//
// Queries phrased directly against the half-space system skip polytope
// construction entirely; in practice that is the path to prefer beyond a
// few dozen variables, where vertex enumeration is hopeless but one LP is
// cheap.
//
//	go get github.com/katalvlaran/polyq
package polyq
