// Package lp defines the linear-programming boundary used by the query
// engine, plus two concrete backends.
//
// A Problem is always the same shape:
//
//	maximize  c·x
//	subject to A·x ≤ b,  x ∈ ℝⁿ free (no sign constraint)
//
// A Solver returns the optimal value and one optimal point, or reports the
// geometry definitively: ErrInfeasible when the region is empty,
// ErrUnbounded when the objective grows without limit. LP failures are never
// retried — they are answers, not transient conditions.
//
// Backends:
//
//   - "simplex" — built-in dense two-phase tableau simplex with Bland's
//     rule. No external dependencies, suitable for the moderate row/column
//     counts this library targets.
//   - "highs" — the HiGHS solver via github.com/bartolsthoorn/gohighs.
//
// Backend selection is explicit: construct a Solver with New(name) (the
// name string is forwarded unchanged) or instantiate one directly; there is
// no process-wide default.
package lp
