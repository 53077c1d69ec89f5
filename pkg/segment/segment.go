// Package segment holds the per-segment geometry functions shared by the
// offset and boolean engines: the arc/line dispatch that turns a pair of
// polyline vertices into radius, center, bounding box, length and closest
// point queries.
package segment

import (
	"math"

	"github.com/chazu/cavalier/pkg/geom2"
)

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

func boxFromPoints(x1, y1, x2, y2 float64) Box {
	minX, maxX := geom2.MinMax(x1, x2)
	minY, maxY := geom2.MinMax(y1, y2)
	return Box{minX, minY, maxX, maxY}
}

// BulgeIsZero reports whether bulge is fuzzy-zero (a line segment).
func BulgeIsZero(bulge float64) bool {
	return geom2.FuzzyZero(bulge)
}

// ArcRadiusAndCenter returns the radius and center of the arc segment from
// p0 to p1 with the given bulge. Undefined if bulge is zero.
func ArcRadiusAndCenter(p0, p1 geom2.Vec2, bulge float64) (float64, geom2.Vec2) {
	absBulge := math.Abs(bulge)
	chord := p1.Sub(p0)
	chordLen := chord.Length()
	radius := chordLen * (absBulge*absBulge + 1) / (4 * absBulge)

	s := absBulge * chordLen / 2
	m := radius - s
	offsX := -m * chord.Y / chordLen
	offsY := m * chord.X / chordLen
	if bulge < 0 {
		offsX = -offsX
		offsY = -offsY
	}

	center := geom2.Vec2{
		X: p0.X + chord.X/2 + offsX,
		Y: p0.Y + chord.Y/2 + offsY,
	}
	return radius, center
}

// SplitResult is the outcome of splitting a segment at a point on it.
type SplitResult struct {
	// UpdatedStartBulge is the bulge to use for p0 up to the split point.
	UpdatedStartBulge float64
	// SplitBulge is the bulge to use from the split point onward to p1.
	SplitBulge float64
}

// SplitAtPoint splits the segment p0-p1 (with the given bulge) at pointOnSeg,
// which is assumed to lie on the segment, returning the two updated bulge
// values.
func SplitAtPoint(p0, p1, pointOnSeg geom2.Vec2, bulge, posEqualEps float64) SplitResult {
	if BulgeIsZero(bulge) {
		return SplitResult{UpdatedStartBulge: 0, SplitBulge: 0}
	}

	if p0.FuzzyEqualEps(p1, posEqualEps) || p0.FuzzyEqualEps(pointOnSeg, posEqualEps) {
		return SplitResult{UpdatedStartBulge: 0, SplitBulge: bulge}
	}

	if p1.FuzzyEqualEps(pointOnSeg, posEqualEps) {
		return SplitResult{UpdatedStartBulge: bulge, SplitBulge: 0}
	}

	_, center := ArcRadiusAndCenter(p0, p1, bulge)
	isNeg := bulge < 0

	pointAngle := geom2.Angle(center, pointOnSeg)
	startAngle := geom2.Angle(center, p0)
	theta1 := geom2.DeltaAngleSigned(startAngle, pointAngle, isNeg)
	bulge1 := geom2.BulgeFromAngle(theta1)

	endAngle := geom2.Angle(center, p1)
	theta2 := geom2.DeltaAngleSigned(pointAngle, endAngle, isNeg)
	bulge2 := geom2.BulgeFromAngle(theta2)

	return SplitResult{UpdatedStartBulge: bulge1, SplitBulge: bulge2}
}

// TangentVector returns the (unnormalized) direction tangent to the segment
// p0-p1 at pointOnSeg.
func TangentVector(p0, p1, pointOnSeg geom2.Vec2, bulge float64) geom2.Vec2 {
	if BulgeIsZero(bulge) {
		return p1.Sub(p0)
	}

	_, center := ArcRadiusAndCenter(p0, p1, bulge)
	if bulge > 0 {
		// ccw: rotate vector from center to point 90 degrees
		return geom2.Vec2{X: -(pointOnSeg.Y - center.Y), Y: pointOnSeg.X - center.X}
	}
	// cw: rotate -90 degrees
	return geom2.Vec2{X: pointOnSeg.Y - center.Y, Y: -(pointOnSeg.X - center.X)}
}

// ClosestPoint returns the closest point on segment p0-p1 to point.
func ClosestPoint(p0, p1, point geom2.Vec2, bulge float64) geom2.Vec2 {
	if BulgeIsZero(bulge) {
		return geom2.LineSegClosestPoint(p0, p1, point)
	}

	radius, center := ArcRadiusAndCenter(p0, p1, bulge)
	if point.FuzzyEqual(center) {
		return p0
	}

	if geom2.PointWithinArcSweep(center, p0, p1, bulge < 0, point) {
		toPoint := point.Sub(center).Normalize()
		return toPoint.Scale(radius).Add(center)
	}

	d1 := p0.DistanceSquaredTo(point)
	d2 := p1.DistanceSquaredTo(point)
	if d1 < d2 {
		return p0
	}
	return p1
}

// FastApproxBoundingBox returns a cheap, conservative (never smaller than
// true) bounding box for the segment p0-p1, for index builds where speed
// matters more than tightness. The offset, boolean and shape packages build
// their indexes from BoundingBox instead.
func FastApproxBoundingBox(p0, p1 geom2.Vec2, bulge float64) Box {
	if BulgeIsZero(bulge) {
		return boxFromPoints(p0.X, p0.Y, p1.X, p1.Y)
	}

	offsX := bulge * (p1.Y - p0.Y) / 2
	offsY := -bulge * (p1.X - p0.X) / 2

	ptXMin, ptXMax := geom2.MinMax(p0.X+offsX, p1.X+offsX)
	ptYMin, ptYMax := geom2.MinMax(p0.Y+offsY, p1.Y+offsY)

	endXMin, endXMax := geom2.MinMax(p0.X, p1.X)
	endYMin, endYMax := geom2.MinMax(p0.Y, p1.Y)

	return Box{
		MinX: math.Min(endXMin, ptXMin),
		MinY: math.Min(endYMin, ptYMin),
		MaxX: math.Max(endXMax, ptXMax),
		MaxY: math.Max(endYMax, ptYMax),
	}
}

// arcBoundingBox returns the exact bounding box of an arc segment. Assumes
// bulge is non-zero.
func arcBoundingBox(p0, p1 geom2.Vec2, bulge float64) Box {
	if p0.FuzzyEqual(p1) {
		return Box{p0.X, p0.Y, p0.X, p0.Y}
	}

	radius, center := ArcRadiusAndCenter(p0, p1, bulge)
	startAngle := geom2.Angle(center, p0)
	endAngle := geom2.Angle(center, p1)
	sweepAngle := geom2.DeltaAngleSigned(startAngle, endAngle, bulge < 0)

	crosses := func(angle float64) bool {
		return geom2.AngleWithinSweepEps(angle, startAngle, sweepAngle, 0)
	}

	minX := math.Min(p0.X, p1.X)
	if crosses(math.Pi) {
		minX = center.X - radius
	}

	minY := math.Min(p0.Y, p1.Y)
	if crosses(1.5 * math.Pi) {
		minY = center.Y - radius
	}

	maxX := math.Max(p0.X, p1.X)
	if crosses(0) {
		maxX = center.X + radius
	}

	maxY := math.Max(p0.Y, p1.Y)
	if crosses(0.5 * math.Pi) {
		maxY = center.Y + radius
	}

	return Box{minX, minY, maxX, maxY}
}

// BoundingBox returns the exact axis-aligned bounding box of segment p0-p1.
// Slower than FastApproxBoundingBox for arcs.
func BoundingBox(p0, p1 geom2.Vec2, bulge float64) Box {
	if BulgeIsZero(bulge) {
		return boxFromPoints(p0.X, p0.Y, p1.X, p1.Y)
	}
	return arcBoundingBox(p0, p1, bulge)
}

// Length returns the path length of segment p0-p1.
func Length(p0, p1 geom2.Vec2, bulge float64) float64 {
	if p0.FuzzyEqual(p1) {
		return 0
	}
	if BulgeIsZero(bulge) {
		return p0.DistanceTo(p1)
	}
	radius, center := ArcRadiusAndCenter(p0, p1, bulge)
	startAngle := geom2.Angle(center, p0)
	endAngle := geom2.Angle(center, p1)
	return radius * math.Abs(geom2.DeltaAngle(startAngle, endAngle))
}

// Midpoint returns the midpoint along segment p0-p1.
func Midpoint(p0, p1 geom2.Vec2, bulge float64) geom2.Vec2 {
	if BulgeIsZero(bulge) {
		return geom2.Midpoint(p0, p1)
	}
	radius, center := ArcRadiusAndCenter(p0, p1, bulge)
	angle1 := geom2.Angle(center, p0)
	angle2 := geom2.Angle(center, p1)
	angleOffset := geom2.DeltaAngleSigned(angle1, angle2, bulge < 0) / 2
	return geom2.PointOnCircle(radius, center, angle1+angleOffset)
}

// PointWithinArcSweep reports whether point lies within the angular sweep of
// the arc segment p0-p1 (bulge must be non-zero).
func PointWithinArcSweep(p0, p1, point geom2.Vec2, bulge float64) bool {
	_, center := ArcRadiusAndCenter(p0, p1, bulge)
	return geom2.PointWithinArcSweep(center, p0, p1, bulge < 0, point)
}
