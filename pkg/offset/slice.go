package offset

import (
	"sort"

	"github.com/samber/lo"

	"github.com/chazu/cavalier/pkg/aabbindex"
	"github.com/chazu/cavalier/pkg/geom2"
	"github.com/chazu/cavalier/pkg/intersect"
	"github.com/chazu/cavalier/pkg/polyline"
	"github.com/chazu/cavalier/pkg/segment"
)

// Slice is a maximal contiguous valid portion of a raw offset polyline,
// materialized as its own (possibly open) vertex run.
type Slice struct {
	Vertices []polyline.Vertex
}

// cutPoint is an intersection point expressed in terms of where along the
// raw offset polyline it falls.
type cutPoint struct {
	segIndex int
	point    geom2.Vec2
}

func buildSegmentBoxes(pline *polyline.Polyline) []aabbindex.Box {
	segs := pline.Segments()
	boxes := make([]aabbindex.Box, len(segs))
	for i, s := range segs {
		b := segment.BoundingBox(s.V1.Pos(), s.V2.Pos(), s.V1.Bulge)
		boxes[i] = aabbindex.Box{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY, Index: i}
	}
	return boxes
}

// findSelfIntersectCuts returns cut points from every non-adjacent
// self-intersection of raw, excluding overlapping (collinear/cocircular)
// intersects which are retained as geometry rather than treated as cuts.
func findSelfIntersectCuts(raw *polyline.Polyline) []cutPoint {
	segs := raw.Segments()
	n := len(segs)
	var cuts []cutPoint

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 {
				continue
			}
			if raw.Closed && i == 0 && j == n-1 {
				continue
			}
			a, b := segs[i], segs[j]
			r := intersect.Seg(a.V1.Pos(), a.V2.Pos(), a.V1.Bulge, b.V1.Pos(), b.V2.Pos(), b.V1.Bulge)
			switch r.Kind {
			case intersect.SegSegTangent, intersect.SegSegOne:
				cuts = append(cuts, cutPoint{segIndex: i, point: r.Point1}, cutPoint{segIndex: j, point: r.Point1})
			case intersect.SegSegTwo:
				cuts = append(cuts,
					cutPoint{segIndex: i, point: r.Point1}, cutPoint{segIndex: j, point: r.Point1},
					cutPoint{segIndex: i, point: r.Point2}, cutPoint{segIndex: j, point: r.Point2})
			}
		}
	}
	return cuts
}

// findOriginalIntersectCuts returns cut points from intersects between raw
// and original, filtered through originalIndex to limit candidate pairs.
func findOriginalIntersectCuts(raw, original *polyline.Polyline, originalIndex *aabbindex.Index) []cutPoint {
	rawSegs := raw.Segments()
	origSegs := original.Segments()
	var cuts []cutPoint

	for i, rs := range rawSegs {
		rb := segment.BoundingBox(rs.V1.Pos(), rs.V2.Pos(), rs.V1.Bulge)
		queryBox := aabbindex.Box{MinX: rb.MinX, MinY: rb.MinY, MaxX: rb.MaxX, MaxY: rb.MaxY}
		originalIndex.Query(queryBox, func(b aabbindex.Box) bool {
			os := origSegs[b.Index]
			r := intersect.Seg(rs.V1.Pos(), rs.V2.Pos(), rs.V1.Bulge, os.V1.Pos(), os.V2.Pos(), os.V1.Bulge)
			switch r.Kind {
			case intersect.SegSegTangent, intersect.SegSegOne:
				cuts = append(cuts, cutPoint{segIndex: i, point: r.Point1})
			case intersect.SegSegTwo:
				cuts = append(cuts, cutPoint{segIndex: i, point: r.Point1}, cutPoint{segIndex: i, point: r.Point2})
			}
			return true
		})
	}
	return cuts
}

// cutAtPoints splits raw at every cut point, returning the resulting
// ordered vertex runs (candidate slices, not yet filtered for validity).
func cutAtPoints(raw *polyline.Polyline, cuts []cutPoint, posEqualEps float64) []Slice {
	segs := raw.Segments()
	n := len(segs)
	if n == 0 {
		return nil
	}

	bySeg := make(map[int][]geom2.Vec2, len(cuts))
	for _, c := range cuts {
		bySeg[c.segIndex] = append(bySeg[c.segIndex], c.point)
	}

	// Build the full ordered vertex list with splits inserted, remembering
	// indices where a cut occurred so we can later break the run there.
	var allVerts []polyline.Vertex
	var cutAt []int

	for i := 0; i < n; i++ {
		s := segs[i]
		pts := bySeg[i]
		// order the split points along the segment by distance from v1
		sort.Slice(pts, func(a, b int) bool {
			return s.V1.Pos().DistanceSquaredTo(pts[a]) < s.V1.Pos().DistanceSquaredTo(pts[b])
		})

		curStart := s.V1
		curBulge := s.V1.Bulge
		allVerts = append(allVerts, curStart)
		for _, pt := range pts {
			if pt.FuzzyEqualEps(curStart.Pos(), posEqualEps) || pt.FuzzyEqualEps(s.V2.Pos(), posEqualEps) {
				continue
			}
			sr := segment.SplitAtPoint(curStart.Pos(), s.V2.Pos(), pt, curBulge, posEqualEps)
			allVerts[len(allVerts)-1] = allVerts[len(allVerts)-1].WithBulge(sr.UpdatedStartBulge)
			cutAt = append(cutAt, len(allVerts))
			allVerts = append(allVerts, polyline.Vertex{X: pt.X, Y: pt.Y, Bulge: sr.SplitBulge})
			curStart = allVerts[len(allVerts)-1]
			curBulge = sr.SplitBulge
		}
	}

	if len(cutAt) == 0 {
		// no cuts: the entire raw offset polyline is one slice
		if raw.Closed {
			allVerts = append(allVerts, allVerts[0])
		}
		return []Slice{{Vertices: allVerts}}
	}

	// a closed raw polyline also has its closing segment (last vertex back to
	// the first), which belongs to the final run
	if raw.Closed {
		allVerts = append(allVerts, allVerts[0])
	}

	// break allVerts into runs at each cutAt boundary; each cut index marks
	// the start of the next run and the (inclusive) end of the previous one
	starts := append([]int{0}, cutAt...)
	var slices []Slice
	for i, start := range starts {
		end := len(allVerts) - 1
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if end <= start {
			continue
		}
		run := append([]polyline.Vertex(nil), allVerts[start:end+1]...)
		slices = append(slices, Slice{Vertices: run})
	}
	return slices
}

// sampleDistanceOK reports whether every sampled point along vertices is at
// least |offsetDist| - offsetDistEps from the nearest segment of original
// (queried through originalIndex for candidate filtering).
func sampleDistanceOK(vertices []polyline.Vertex, original *polyline.Polyline, originalIndex *aabbindex.Index, offsetDist, offsetDistEps float64) bool {
	origSegs := original.Segments()
	threshold := offsetDist - offsetDistEps

	checkPoint := func(p geom2.Vec2) bool {
		best := -1.0
		found := false
		searchBox := aabbindex.Box{MinX: p.X - offsetDist, MinY: p.Y - offsetDist, MaxX: p.X + offsetDist, MaxY: p.Y + offsetDist}
		originalIndex.Query(searchBox, func(b aabbindex.Box) bool {
			os := origSegs[b.Index]
			cp := segment.ClosestPoint(os.V1.Pos(), os.V2.Pos(), p, os.V1.Bulge)
			d := cp.DistanceTo(p)
			if !found || d < best {
				best, found = d, true
			}
			return true
		})
		if !found {
			return true
		}
		return best >= threshold-1e-9
	}

	for i := 0; i+1 < len(vertices); i++ {
		v1, v2 := vertices[i], vertices[i+1]
		mid := segment.Midpoint(v1.Pos(), v2.Pos(), v1.Bulge)
		// each half of an arc sweeps half the angle, so it has its own bulge
		halfBulge := geom2.BulgeFromAngle(geom2.AngleFromBulge(v1.Bulge) / 2)
		quarter := segment.Midpoint(v1.Pos(), mid, halfBulge)
		threeQuarter := segment.Midpoint(mid, v2.Pos(), halfBulge)
		for _, p := range []geom2.Vec2{quarter, mid, threeQuarter} {
			if !checkPoint(p) {
				return false
			}
		}
	}
	return true
}

// ExtractSlices finds self-intersections (if enabled) and intersections
// with the original polyline, cuts the raw offset polyline at every
// resulting point, and keeps only slices that sample far enough from the
// original polyline's boundary.
func ExtractSlices(raw, original *polyline.Polyline, originalIndex *aabbindex.Index, offsetDist float64, opts Options) []Slice {
	var cuts []cutPoint
	if opts.HandleSelfIntersects {
		cuts = append(cuts, findSelfIntersectCuts(raw)...)
	}
	cuts = append(cuts, findOriginalIntersectCuts(raw, original, originalIndex)...)

	candidates := cutAtPoints(raw, cuts, opts.PosEqualEps)
	candidates = lo.Filter(candidates, func(s Slice, _ int) bool { return len(s.Vertices) >= 2 })

	return lo.Filter(candidates, func(s Slice, _ int) bool {
		return sampleDistanceOK(s.Vertices, original, originalIndex, offsetDist, opts.OffsetDistEps)
	})
}
