package boolean

import (
	"sort"

	"github.com/samber/lo"

	"github.com/chazu/cavalier/pkg/aabbindex"
	"github.com/chazu/cavalier/pkg/geom2"
	"github.com/chazu/cavalier/pkg/intersect"
	"github.com/chazu/cavalier/pkg/offset"
	"github.com/chazu/cavalier/pkg/polyline"
	"github.com/chazu/cavalier/pkg/segment"
)

type cutPoint struct {
	segIndex int
	point    geom2.Vec2
}

// findPairwiseCuts runs pline_seg_intr between every segment of pline2 and
// the pline1 segments whose box it overlaps (queried through index1, which
// the caller may have cached), collecting cut points on both polylines.
// Overlapping (collinear/cocircular) intersects contribute their endpoints
// as cuts too and set sawOverlap.
func findPairwiseCuts(pline1, pline2 *polyline.Polyline, index1 *aabbindex.Index) (cuts1, cuts2 []cutPoint, sawOverlap bool) {
	segs1 := pline1.Segments()
	segs2 := pline2.Segments()

	for j, s2 := range segs2 {
		b2 := segment.BoundingBox(s2.V1.Pos(), s2.V2.Pos(), s2.V1.Bulge)
		queryBox := aabbindex.Box{MinX: b2.MinX, MinY: b2.MinY, MaxX: b2.MaxX, MaxY: b2.MaxY}
		index1.Query(queryBox, func(box aabbindex.Box) bool {
			s1 := segs1[box.Index]
			r := intersect.Seg(s1.V1.Pos(), s1.V2.Pos(), s1.V1.Bulge, s2.V1.Pos(), s2.V2.Pos(), s2.V1.Bulge)
			switch r.Kind {
			case intersect.SegSegTangent, intersect.SegSegOne:
				cuts1 = append(cuts1, cutPoint{segIndex: box.Index, point: r.Point1})
				cuts2 = append(cuts2, cutPoint{segIndex: j, point: r.Point1})
			case intersect.SegSegTwo:
				cuts1 = append(cuts1, cutPoint{segIndex: box.Index, point: r.Point1}, cutPoint{segIndex: box.Index, point: r.Point2})
				cuts2 = append(cuts2, cutPoint{segIndex: j, point: r.Point1}, cutPoint{segIndex: j, point: r.Point2})
			case intersect.SegSegOverlappingLines, intersect.SegSegOverlappingArcs:
				sawOverlap = true
				cuts1 = append(cuts1, cutPoint{segIndex: box.Index, point: r.Point1}, cutPoint{segIndex: box.Index, point: r.Point2})
				cuts2 = append(cuts2, cutPoint{segIndex: j, point: r.Point1}, cutPoint{segIndex: j, point: r.Point2})
			}
			return true
		})
	}
	return cuts1, cuts2, sawOverlap
}

// cutAtPoints splits pline at every cut point and returns the resulting
// ordered runs as offset.Slice values so the existing stitching routine can
// consume them directly. If there are no cuts, the whole polyline comes
// back as one closed slice.
func cutAtPoints(pline *polyline.Polyline, cuts []cutPoint, posEqualEps float64) []offset.Slice {
	segs := pline.Segments()
	n := len(segs)
	if n == 0 {
		return nil
	}

	bySeg := make(map[int][]geom2.Vec2, len(cuts))
	for _, c := range cuts {
		bySeg[c.segIndex] = append(bySeg[c.segIndex], c.point)
	}

	var allVerts []polyline.Vertex
	var cutAt []int

	for i := 0; i < n; i++ {
		s := segs[i]
		pts := bySeg[i]
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
		closing := allVerts[0]
		allVerts = append(allVerts, closing)
		return []offset.Slice{{Vertices: allVerts}}
	}

	// pline is closed, so the run starting at the last cut wraps around to
	// join the run starting at index 0; rotate allVerts so cutAt[0] is the
	// start, making every slice a simple contiguous span.
	rotated := append(append([]polyline.Vertex(nil), allVerts[cutAt[0]:]...), allVerts[:cutAt[0]+1]...)
	rotatedCutAt := make([]int, 0, len(cutAt))
	for _, c := range cutAt {
		idx := c - cutAt[0]
		if idx < 0 {
			idx += len(allVerts)
		}
		rotatedCutAt = append(rotatedCutAt, idx)
	}
	sort.Ints(rotatedCutAt)

	var slices []offset.Slice
	starts := rotatedCutAt
	for i, start := range starts {
		end := len(rotated) - 1
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if end <= start {
			continue
		}
		run := append([]polyline.Vertex(nil), rotated[start:end+1]...)
		slices = append(slices, offset.Slice{Vertices: run})
	}
	return slices
}

// interiorPoint returns a representative interior sample point of a slice
// (the midpoint of its middle segment), used to test containment against
// the other polyline.
func interiorPoint(s offset.Slice) geom2.Vec2 {
	segCount := len(s.Vertices) - 1
	mid := segCount / 2
	v1, v2 := s.Vertices[mid], s.Vertices[mid+1]
	return segment.Midpoint(v1.Pos(), v2.Pos(), v1.Bulge)
}

// classify splits slices into those whose interior point lies inside other
// and those outside it (boundary/zero-winding counts as outside).
func classify(slices []offset.Slice, other *polyline.Polyline) (inside, outside []offset.Slice) {
	for _, s := range slices {
		if len(s.Vertices) < 2 {
			continue
		}
		p := interiorPoint(s)
		if other.WindingNumber(p) != 0 {
			inside = append(inside, s)
		} else {
			outside = append(outside, s)
		}
	}
	return inside, outside
}

// invertSlices reverses each slice's vertex order and bulge sign, used to
// flip the traversal direction of kept inside-slices for Not.
func invertSlices(slices []offset.Slice) []offset.Slice {
	return lo.Map(slices, func(s offset.Slice, _ int) offset.Slice { return invertSlice(s) })
}

func invertSlice(s offset.Slice) offset.Slice {
	n := len(s.Vertices)
	rev := make([]polyline.Vertex, n)
	for j := 0; j < n; j++ {
		src := s.Vertices[n-1-j]
		var bulge float64
		if j < n-1 {
			bulge = -s.Vertices[n-2-j].Bulge
		}
		rev[j] = polyline.Vertex{X: src.X, Y: src.Y, Bulge: bulge}
	}
	return offset.Slice{Vertices: rev}
}
