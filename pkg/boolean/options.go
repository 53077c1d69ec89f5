// Package boolean computes union, intersection, difference and symmetric
// difference between two closed, non-self-intersecting polylines: pairwise
// intersects via an AABB index, slice classification by winding number
// against the other polyline, and assembly per operator using the same
// graph-stitching routine as parallel offsetting.
package boolean

import "github.com/chazu/cavalier/pkg/aabbindex"

// Options bundles the tunable epsilons and an optional prebuilt index for
// pline1, mirroring offset.Options.
type Options struct {
	// Pline1Index, if non-nil, is a prebuilt AABB index over pline1's
	// segments.
	Pline1Index *aabbindex.Index

	PosEqualEps      float64
	CollapsedAreaEps float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		PosEqualEps:      1e-5,
		CollapsedAreaEps: 1e-5,
	}
}
