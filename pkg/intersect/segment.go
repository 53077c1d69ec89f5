package intersect

import (
	"github.com/chazu/cavalier/pkg/geom2"
	"github.com/chazu/cavalier/pkg/segment"
)

// SegSegKind identifies the shape of a polyline segment-segment intersection
// result.
type SegSegKind int

const (
	// SegSegNone means no intersects were found.
	SegSegNone SegSegKind = iota
	// SegSegTangent means one tangent intersect point was found.
	SegSegTangent
	// SegSegOne means one non-tangent intersect point was found.
	SegSegOne
	// SegSegTwo means two intersect points were found, ordered according to
	// the second segment's direction.
	SegSegTwo
	// SegSegOverlappingLines means both segments are collinear lines that
	// overlap.
	SegSegOverlappingLines
	// SegSegOverlappingArcs means both segments are arcs on the same circle
	// that overlap along their sweep.
	SegSegOverlappingArcs
)

// SegSegResult is the result of intersecting two polyline segments (each a
// line or an arc, as determined by its bulge).
type SegSegResult struct {
	Kind           SegSegKind
	Point1, Point2 geom2.Vec2
}

// Seg finds the intersect(s) between polyline segment v1->v2 and segment
// u1->u2, each with its associated bulge value.
func Seg(v1, v2 geom2.Vec2, vBulge float64, u1, u2 geom2.Vec2, uBulge float64) SegSegResult {
	vIsLine := segment.BulgeIsZero(vBulge)
	uIsLine := segment.BulgeIsZero(uBulge)

	if vIsLine && uIsLine {
		r := LineLine(v1, v2, u1, u2)
		switch r.Kind {
		case LineLineNone, LineLineFalse:
			return SegSegResult{Kind: SegSegNone}
		case LineLineTrue:
			return SegSegResult{Kind: SegSegOne, Point1: geom2.PointFromParametric(v1, v2, r.Seg1T)}
		case LineLineOverlapping:
			return SegSegResult{
				Kind:   SegSegOverlappingLines,
				Point1: geom2.PointFromParametric(u1, u2, r.Seg2T0),
				Point2: geom2.PointFromParametric(u1, u2, r.Seg2T1),
			}
		}
	}

	processLineArc := func(p0, p1, a1, a2 geom2.Vec2, aBulge float64) SegSegResult {
		arcRadius, arcCenter := segment.ArcRadiusAndCenter(a1, a2, aBulge)

		pointInSweep := func(t float64) (geom2.Vec2, bool) {
			if !geom2.FuzzyInRangeEps(t, 0, 1, geom2.DefaultPosEqualEps) {
				return geom2.Vec2{}, false
			}
			p := geom2.PointFromParametric(p0, p1, t)
			within := geom2.PointWithinArcSweep(arcCenter, a1, a2, aBulge < 0, p)
			return p, within
		}

		lr := LineCircle(p0, p1, arcRadius, arcCenter, geom2.DefaultPosEqualEps)
		switch lr.Kind {
		case LineCircleNone:
			return SegSegResult{Kind: SegSegNone}
		case LineCircleTangent:
			if pt, ok := pointInSweep(lr.T0); ok {
				return SegSegResult{Kind: SegSegTangent, Point1: pt}
			}
			return SegSegResult{Kind: SegSegNone}
		case LineCircleTwo:
			pt0, ok0 := pointInSweep(lr.T0)
			pt1, ok1 := pointInSweep(lr.T1)
			switch {
			case !ok0 && !ok1:
				return SegSegResult{Kind: SegSegNone}
			case !ok0:
				return SegSegResult{Kind: SegSegOne, Point1: pt1}
			case !ok1:
				return SegSegResult{Kind: SegSegOne, Point1: pt0}
			default:
				if uIsLine || pt0.DistanceSquaredTo(a1) < pt1.DistanceSquaredTo(a1) {
					return SegSegResult{Kind: SegSegTwo, Point1: pt0, Point2: pt1}
				}
				return SegSegResult{Kind: SegSegTwo, Point1: pt1, Point2: pt0}
			}
		}
		return SegSegResult{Kind: SegSegNone}
	}

	if vIsLine {
		return processLineArc(v1, v2, u1, u2, uBulge)
	}
	if uIsLine {
		return processLineArc(u1, u2, v1, v2, vBulge)
	}

	return arcArcIntr(v1, v2, vBulge, u1, u2, uBulge)
}

func arcArcIntr(v1, v2 geom2.Vec2, vBulge float64, u1, u2 geom2.Vec2, uBulge float64) SegSegResult {
	arc1Radius, arc1Center := segment.ArcRadiusAndCenter(v1, v2, vBulge)
	arc2Radius, arc2Center := segment.ArcRadiusAndCenter(u1, u2, uBulge)

	bothArcsSweepPoint := func(pt geom2.Vec2) bool {
		return geom2.PointWithinArcSweep(arc1Center, v1, v2, vBulge < 0, pt) &&
			geom2.PointWithinArcSweep(arc2Center, u1, u2, uBulge < 0, pt)
	}

	r := CircleCircle(arc1Radius, arc1Center, arc2Radius, arc2Center, geom2.DefaultPosEqualEps)
	switch r.Kind {
	case CircleCircleNone:
		return SegSegResult{Kind: SegSegNone}
	case CircleCircleTangent:
		if bothArcsSweepPoint(r.Point1) {
			return SegSegResult{Kind: SegSegTangent, Point1: r.Point1}
		}
		return SegSegResult{Kind: SegSegNone}
	case CircleCircleTwo:
		pt1InSweep := bothArcsSweepPoint(r.Point1)
		pt2InSweep := bothArcsSweepPoint(r.Point2)
		switch {
		case pt1InSweep && pt2InSweep:
			if r.Point1.DistanceSquaredTo(u1) > r.Point2.DistanceSquaredTo(u1) {
				return SegSegResult{Kind: SegSegTwo, Point1: r.Point2, Point2: r.Point1}
			}
			return SegSegResult{Kind: SegSegTwo, Point1: r.Point1, Point2: r.Point2}
		case pt1InSweep:
			return SegSegResult{Kind: SegSegOne, Point1: r.Point1}
		case pt2InSweep:
			return SegSegResult{Kind: SegSegOne, Point1: r.Point2}
		default:
			return SegSegResult{Kind: SegSegNone}
		}
	case CircleCircleOverlapping:
		return overlappingArcsIntr(v1, v2, vBulge, u1, u2, uBulge, arc1Center, arc2Center)
	}
	return SegSegResult{Kind: SegSegNone}
}

func overlappingArcsIntr(v1, v2 geom2.Vec2, vBulge float64, u1, u2 geom2.Vec2, uBulge float64, arc1Center, arc2Center geom2.Vec2) SegSegResult {
	sameDirectionArcs := (vBulge < 0) == (uBulge < 0)

	startAndSweepAngle := func(sp, center geom2.Vec2, bulge float64) (float64, float64) {
		startAngle := geom2.NormalizeRadians(geom2.Angle(center, sp))
		sweepAngle := geom2.AngleFromBulge(bulge)
		return startAngle, sweepAngle
	}

	arc1Start, arc1Sweep := startAndSweepAngle(v1, arc1Center, vBulge)
	var arc2Start, arc2Sweep float64
	if sameDirectionArcs {
		arc2Start, arc2Sweep = startAndSweepAngle(u1, arc2Center, uBulge)
	} else {
		arc2Start, arc2Sweep = startAndSweepAngle(u2, arc2Center, -uBulge)
	}

	arc1End := arc1Start + arc1Sweep
	arc2End := arc2Start + arc2Sweep

	touch1 := geom2.FuzzyZero(geom2.DeltaAngle(arc1Start, arc2End))
	touch2 := geom2.FuzzyZero(geom2.DeltaAngle(arc2Start, arc1End))

	switch {
	case touch1 && touch2:
		return SegSegResult{Kind: SegSegTwo, Point1: u1, Point2: u2}
	case touch1:
		return SegSegResult{Kind: SegSegOne, Point1: v1}
	case touch2:
		return SegSegResult{Kind: SegSegOne, Point1: u1}
	}

	arc2StartsInArc1 := geom2.AngleWithinSweepEps(arc2Start, arc1Start, arc1Sweep, geom2.DefaultPosEqualEps)
	arc2EndsInArc1 := geom2.AngleWithinSweepEps(arc2End, arc1Start, arc1Sweep, geom2.DefaultPosEqualEps)

	switch {
	case arc2StartsInArc1 && arc2EndsInArc1:
		return SegSegResult{Kind: SegSegOverlappingArcs, Point1: u1, Point2: u2}
	case arc2StartsInArc1:
		if sameDirectionArcs {
			return SegSegResult{Kind: SegSegOverlappingArcs, Point1: u1, Point2: v2}
		}
		return SegSegResult{Kind: SegSegOverlappingArcs, Point1: v2, Point2: u2}
	case arc2EndsInArc1:
		if sameDirectionArcs {
			return SegSegResult{Kind: SegSegOverlappingArcs, Point1: v1, Point2: u2}
		}
		return SegSegResult{Kind: SegSegOverlappingArcs, Point1: u1, Point2: v1}
	}

	arc1StartsInArc2 := geom2.AngleWithinSweepEps(arc1Start, arc2Start, arc2Sweep, geom2.DefaultPosEqualEps)
	if arc1StartsInArc2 {
		if sameDirectionArcs {
			return SegSegResult{Kind: SegSegOverlappingArcs, Point1: v1, Point2: v2}
		}
		return SegSegResult{Kind: SegSegOverlappingArcs, Point1: v2, Point2: v1}
	}

	return SegSegResult{Kind: SegSegNone}
}
