package offset

import (
	"github.com/chazu/cavalier/pkg/geom2"
	"github.com/chazu/cavalier/pkg/polyline"
	"github.com/chazu/cavalier/pkg/segment"
)

// offsetSeg is one segment's raw-offset result: the offset endpoints and
// bulge, plus whether the segment collapsed (radius went non-positive).
type offsetSeg struct {
	p0, p1    geom2.Vec2
	bulge     float64
	collapsed bool
}

// offsetOneSegment offsets a single line or arc segment by signed distance
// delta, translating a line by its unit normal and shrinking/growing an
// arc's radius in place around its original center.
func offsetOneSegment(v1, v2 polyline.Vertex, delta float64) offsetSeg {
	p1, p2 := v1.Pos(), v2.Pos()

	if v1.BulgeIsZero() {
		dir := p2.Sub(p1).Normalize()
		// left-hand normal of travel direction; positive delta offsets left
		// of travel (inward for a CCW boundary).
		normal := geom2.Vec2{X: -dir.Y, Y: dir.X}
		offs := normal.Scale(delta)
		return offsetSeg{p0: p1.Add(offs), p1: p2.Add(offs), bulge: 0}
	}

	radius, center := segment.ArcRadiusAndCenter(p1, p2, v1.Bulge)
	// CCW (positive bulge) arcs shrink their radius for positive delta
	// (offset inward); CW arcs grow. Matches the raw line convention above
	// projected onto a circle: moving left of travel is toward the center
	// for a CCW arc.
	var newRadius float64
	if v1.Bulge > 0 {
		newRadius = radius - delta
	} else {
		newRadius = radius + delta
	}

	if newRadius <= 0 {
		mid := center
		return offsetSeg{p0: mid, p1: mid, bulge: 0, collapsed: true}
	}

	startAngle := geom2.Angle(center, p1)
	endAngle := geom2.Angle(center, p2)
	newP1 := geom2.PointOnCircle(newRadius, center, startAngle)
	newP2 := geom2.PointOnCircle(newRadius, center, endAngle)
	return offsetSeg{p0: newP1, p1: newP2, bulge: v1.Bulge}
}

// RawOffset produces the raw offset polyline: each segment offset
// independently, joined by rounded arcs (or emitted directly when endpoints
// already coincide). May self-intersect; cleanup happens in slice
// extraction.
func RawOffset(pline *polyline.Polyline, delta, posEqualEps float64) *polyline.Polyline {
	segs := pline.Segments()
	if len(segs) == 0 {
		return &polyline.Polyline{Closed: pline.Closed}
	}

	offsets := make([]offsetSeg, len(segs))
	for i, s := range segs {
		offsets[i] = offsetOneSegment(s.V1, s.V2, delta)
	}

	out := &polyline.Polyline{Closed: pline.Closed, UserData: append([]uint64(nil), pline.UserData...)}

	n := len(offsets)

	appendJoin := func(center, from, to geom2.Vec2) {
		if from.FuzzyEqualEps(to, posEqualEps) {
			return
		}
		sweepIsCCW := delta < 0
		startAngle := geom2.Angle(center, from)
		endAngle := geom2.Angle(center, to)
		sweep := geom2.DeltaAngleSigned(startAngle, endAngle, !sweepIsCCW)
		out.AddVertex(polyline.Vertex{X: from.X, Y: from.Y, Bulge: geom2.BulgeFromAngle(sweep)})
	}

	out.AddVertex(polyline.Vertex{X: offsets[0].p0.X, Y: offsets[0].p0.Y, Bulge: offsets[0].bulge})

	for i := 0; i < n-1; i++ {
		cur := offsets[i]
		next := offsets[i+1]
		jointCenter := segs[i].V2.Pos()
		appendJoin(jointCenter, cur.p1, next.p0)
		out.AddVertex(polyline.Vertex{X: next.p0.X, Y: next.p0.Y, Bulge: next.bulge})
	}

	if pline.Closed {
		jointCenter := segs[n-1].V2.Pos()
		appendJoin(jointCenter, offsets[n-1].p1, offsets[0].p0)
	} else {
		out.AddVertex(polyline.Vertex{X: offsets[n-1].p1.X, Y: offsets[n-1].p1.Y, Bulge: 0})
	}

	return out
}
