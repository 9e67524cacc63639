package query

import (
	"github.com/katalvlaran/polyq/hrep"
	"github.com/katalvlaran/polyq/lp"
)

// Source is any polytope description that can yield its inequality
// half-space system. *hrep.System satisfies it (returning itself), and so
// does every polytope.Handle (converting through the representation layer).
type Source interface {
	Hrep() (*hrep.System, error)
}

// Option configures one query call. The solver backend travels in the
// options of every call — there is no package-level default state.
type Option func(*options)

type options struct {
	solver  lp.Solver
	backend string
}

// WithSolver sets the LP backend for this query.
func WithSolver(s lp.Solver) Option {
	return func(o *options) { o.solver = s }
}

// WithBackend selects the LP backend by name ("simplex", "highs", ...).
// The string is resolved through lp.New when the query runs; unknown names
// surface lp.ErrUnknownBackend. WithSolver takes precedence when both are
// given.
func WithBackend(name string) Option {
	return func(o *options) { o.backend = name }
}

// gatherOptions resolves the effective solver for one call.
func gatherOptions(opts []Option) (options, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.solver == nil {
		if o.backend != "" {
			s, err := lp.New(o.backend)
			if err != nil {
				return options{}, err
			}
			o.solver = s
		} else {
			o.solver = lp.NewSimplex()
		}
	}

	return o, nil
}
