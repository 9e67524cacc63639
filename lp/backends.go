package lp

import "fmt"

// Backend name strings accepted by New. The string is an opaque identifier
// chosen by the caller and forwarded unchanged; there is no module-wide
// default backend state.
const (
	BackendSimplex = "simplex"
	BackendHiGHS   = "highs"
)

// New constructs a Solver by backend name. Unknown names return
// ErrUnknownBackend (wrapped with the offending name).
func New(name string) (Solver, error) {
	switch name {
	case BackendSimplex:
		return NewSimplex(), nil
	case BackendHiGHS:
		return NewHiGHS(), nil
	default:
		return nil, fmt.Errorf("lp: backend %q: %w", name, ErrUnknownBackend)
	}
}
