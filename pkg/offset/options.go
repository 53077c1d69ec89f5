// Package offset implements parallel offsetting of a polyline: per-segment
// raw offset with rounded joins, slice extraction against the original
// polyline's distance field, and graph-based slice stitching into the
// final result polylines.
package offset

import "github.com/chazu/cavalier/pkg/aabbindex"

// Options bundles the tunable epsilons and AABB index cache for
// ParallelOffset, mirroring the option-struct-plus-defaults-constructor
// shape used throughout this codebase.
type Options struct {
	// Index, if non-nil, is a prebuilt AABB index over the source polyline's
	// segments; supplying one lets repeated offsets of the same polyline
	// skip rebuilding it.
	Index *aabbindex.Index

	PosEqualEps    float64
	SliceJoinEps   float64
	OffsetDistEps  float64

	// HandleSelfIntersects controls whether slice extraction looks for
	// self-intersections of the raw offset polyline (step 1 of §4.6).
	// Disable only when the caller can guarantee the raw offset will not
	// self-intersect.
	HandleSelfIntersects bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		PosEqualEps:          1e-5,
		SliceJoinEps:         1e-4,
		OffsetDistEps:        1e-4,
		HandleSelfIntersects: false,
	}
}
