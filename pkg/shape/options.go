// Package shape coordinates parallel offsetting of a CCW outer boundary
// together with zero or more CW islands: each sub-polyline is offset
// independently, slices that would cross into another sub-polyline's
// forbidden region are pruned, and the survivors are stitched and
// re-classified by signed area into the new shape's boundary and islands.
package shape

// Options bundles the tunable epsilons for Shape.ParallelOffset, mirroring
// offset.Options and boolean.Options.
type Options struct {
	PosEqualEps   float64
	OffsetDistEps float64
	SliceJoinEps  float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		PosEqualEps:   1e-5,
		OffsetDistEps: 1e-4,
		SliceJoinEps:  1e-4,
	}
}
