package shape

import (
	"github.com/chazu/cavalier/pkg/aabbindex"
	"github.com/chazu/cavalier/pkg/geom2"
	"github.com/chazu/cavalier/pkg/offset"
	"github.com/chazu/cavalier/pkg/polyline"
	"github.com/chazu/cavalier/pkg/segment"
)

// Shape is a set of CCW outer boundaries and CW islands, offset and
// reclassified together so that interactions between sub-polylines are
// resolved rather than computed independently.
type Shape struct {
	CCWPlines []*polyline.Polyline
	CWPlines  []*polyline.Polyline
}

// New classifies plines by the sign of their Area into a Shape's CCW
// boundaries and CW islands.
func New(plines []*polyline.Polyline) *Shape {
	s := &Shape{}
	for _, p := range plines {
		if p.Orientation() == polyline.OrientationCW {
			s.CWPlines = append(s.CWPlines, p)
		} else {
			s.CCWPlines = append(s.CCWPlines, p)
		}
	}
	return s
}

// subPline bundles one of the shape's sub-polylines with its per-call
// slices, so cross-interaction pruning can consult every other
// sub-polyline's segments before slices are stitched.
type subPline struct {
	source *polyline.Polyline
	slices []offset.Slice
}

func buildIndex(p *polyline.Polyline) *aabbindex.Index {
	segs := p.Segments()
	boxes := make([]aabbindex.Box, len(segs))
	for i, s := range segs {
		b := segment.BoundingBox(s.V1.Pos(), s.V2.Pos(), s.V1.Bulge)
		boxes[i] = aabbindex.Box{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY, Index: i}
	}
	return aabbindex.Build(boxes)
}

// ParallelOffset offsets every sub-polyline of s by delta (CCW boundaries
// grow for negative delta / shrink for positive, following the same
// left-of-travel convention as offset.ParallelOffset; CW islands grow for
// positive delta since they are wound the opposite way), prunes slices that
// would cross into another sub-polyline's forbidden region, stitches the
// survivors, and reclassifies the results by signed area into the returned
// Shape.
func (s *Shape) ParallelOffset(delta float64, opts Options) *Shape {
	var subs []*subPline

	offsetDist := delta
	if offsetDist < 0 {
		offsetDist = -offsetDist
	}

	collect := func(p *polyline.Polyline) {
		if p.VertexCount() < 2 {
			return
		}
		idx := buildIndex(p)
		raw := offset.RawOffset(p, delta, opts.PosEqualEps)
		oopts := offset.Options{
			Index:                idx,
			HandleSelfIntersects: true,
			PosEqualEps:          opts.PosEqualEps,
			SliceJoinEps:         opts.SliceJoinEps,
			OffsetDistEps:        opts.OffsetDistEps,
		}
		slices := offset.ExtractSlices(raw, p, idx, offsetDist, oopts)
		subs = append(subs, &subPline{source: p, slices: slices})
	}

	for _, p := range s.CCWPlines {
		collect(p)
	}
	for _, p := range s.CWPlines {
		collect(p)
	}

	// Cross-interaction pruning: a slice belonging to one sub-polyline's
	// offset is dropped if its interior point lies closer than
	// offsetDist - OffsetDistEps to another sub-polyline's (unoffset)
	// segments, since that band is forbidden territory for this offset.
	var kept []offset.Slice
	for i, sub := range subs {
		for _, sl := range sub.slices {
			if len(sl.Vertices) < 2 {
				continue
			}
			p := midOf(sl)
			pruned := false
			for j, other := range subs {
				if j == i {
					continue
				}
				tooClose := false
				for _, seg := range other.source.Segments() {
					cp := segment.ClosestPoint(seg.V1.Pos(), seg.V2.Pos(), p, seg.V1.Bulge)
					if cp.DistanceTo(p) < offsetDist-opts.OffsetDistEps {
						tooClose = true
						break
					}
				}
				if tooClose {
					pruned = true
					break
				}
			}
			if !pruned {
				kept = append(kept, sl)
			}
		}
	}

	if len(kept) == 0 {
		return &Shape{}
	}

	stitched := offset.Stitch(kept, opts.SliceJoinEps)
	return New(stitched)
}

func midOf(sl offset.Slice) geom2.Vec2 {
	segCount := len(sl.Vertices) - 1
	mid := segCount / 2
	v1, v2 := sl.Vertices[mid], sl.Vertices[mid+1]
	return segment.Midpoint(v1.Pos(), v2.Pos(), v1.Bulge)
}
