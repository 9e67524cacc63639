// Package query answers directional and extremal questions about a convex
// polytope by reducing each question to one linear program:
//
//   - Support — the support function ρ(P, d) = max{⟨x, d⟩ : x ∈ P}, with the
//     optimizing point.
//   - Radius — the sup-norm radius max{‖x‖_∞ : x ∈ P}, as 2n support
//     evaluations along ±canonical directions.
//   - Center — the Chebyshev center, via the largest-inscribed-ball LP.
//
// Queries accept any Source: a half-space model (*hrep.System) or a
// polytope handle (polytope.Handle). Handles are normalized to their
// inequality half-space model first; querying the (A, b) form directly
// avoids that conversion and is the cheaper path in high dimension.
//
// Every query builds an independent, ephemeral LP and solves it
// synchronously through the backend carried in its options (built-in
// simplex unless overridden); no state is shared between calls, so
// concurrent queries are safe whenever the backend is reentrant.
// An infeasible or unbounded LP is a definitive geometric answer and is
// surfaced unchanged as lp.ErrInfeasible / lp.ErrUnbounded.
package query
