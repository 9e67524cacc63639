// Package field selects the arithmetic regime in which polytope data lives.
//
// Two regimes are supported:
//
//   - Rational — exact arithmetic over math/big rationals. Preferred when the
//     input constraint system is degenerate or nearly degenerate, because
//     exact construction backends can drop redundant rows without rounding.
//   - Double — IEEE 754 float64 arithmetic. Cheap, and sufficient for
//     well-conditioned systems.
//
// Every matrix, vector and polytope in polyq is tagged with exactly one Kind;
// values are never mixed across fields silently. Crossing the boundary goes
// through the element-wise coercion helpers in this package
// (RatFromFloat, FloatFromRat, NewVector).
package field
