package polytope

import "github.com/katalvlaran/polyq/hrep"

// BoxPolytope constructs an axis-aligned box directly as a polytope object:
// hrep.Box builds the 2n×n half-space model, FromHRep pushes it through the
// construction backend selected by spec.Kind. Callers who only need the
// half-space form should use hrep.Box alone and skip construction entirely
// (preferable beyond a dozen or so variables).
func BoxPolytope(spec hrep.BoxSpec, opts ...BuildOption) (Handle, error) {
	sys, err := hrep.Box(spec)
	if err != nil {
		return nil, err
	}

	return FromHRep(sys, spec.Kind, opts...)
}
