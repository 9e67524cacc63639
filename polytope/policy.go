package polytope

import (
	"fmt"

	"github.com/katalvlaran/polyq/field"
	"github.com/katalvlaran/polyq/lp"
)

// Policy maps an arithmetic field to the construction backend used for it.
// It is a configuration value, not a hard-coded per-call choice: callers
// that want a different engine pair build their own Policy and pass it via
// WithPolicy. The zero value falls back to the built-in engines with the
// built-in simplex solver.
type Policy struct {
	exact    Engine
	floating Engine
}

// NewPolicy builds a Policy from explicit engines; nil entries fall back to
// the corresponding built-in engine.
func NewPolicy(exact, floating Engine) Policy {
	return Policy{exact: exact, floating: floating}
}

// DefaultPolicy pairs the built-in exact engine with the built-in floating
// engine, both probing emptiness through the built-in simplex.
func DefaultPolicy() Policy {
	s := lp.NewSimplex()

	return Policy{
		exact:    NewExactEngine(s),
		floating: NewFloatingEngine(s),
	}
}

// Backend resolves the construction engine for field kind k.
// Returns field.ErrUnsupportedKind for anything but Rational or Double.
func (p Policy) Backend(k field.Kind) (Engine, error) {
	switch k {
	case field.Rational:
		if p.exact == nil {
			return NewExactEngine(nil), nil
		}

		return p.exact, nil
	case field.Double:
		if p.floating == nil {
			return NewFloatingEngine(nil), nil
		}

		return p.floating, nil
	default:
		return nil, fmt.Errorf("polytope: field %v: %w", k, field.ErrUnsupportedKind)
	}
}
