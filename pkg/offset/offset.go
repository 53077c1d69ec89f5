package offset

import (
	"github.com/pkg/errors"

	"github.com/chazu/cavalier/pkg/aabbindex"
	"github.com/chazu/cavalier/pkg/polyline"
)

// ErrTooFewVertices is returned when the input polyline has fewer than two
// vertices.
var ErrTooFewVertices = errors.New("offset: polyline must have at least 2 vertices")

// ParallelOffset computes the set of polylines that result from offsetting
// pline by delta: positive delta offsets to the left of travel direction
// (inward for a CCW boundary), negative to the right. Orchestrates raw
// per-segment offsetting, slice extraction against the source polyline, and
// graph-based stitching of the surviving slices into final result
// polylines.
func ParallelOffset(pline *polyline.Polyline, delta float64, opts Options) ([]*polyline.Polyline, error) {
	if pline.VertexCount() < 2 {
		return nil, ErrTooFewVertices
	}

	originalIndex := opts.Index
	if originalIndex == nil {
		originalIndex = aabbindex.Build(buildSegmentBoxes(pline))
	}

	raw := RawOffset(pline, delta, opts.PosEqualEps)
	if raw.SegmentCount() == 0 {
		return nil, nil
	}

	offsetDist := delta
	if offsetDist < 0 {
		offsetDist = -offsetDist
	}

	slices := ExtractSlices(raw, pline, originalIndex, offsetDist, opts)
	if len(slices) == 0 {
		return nil, nil
	}

	return Stitch(slices, opts.SliceJoinEps), nil
}
