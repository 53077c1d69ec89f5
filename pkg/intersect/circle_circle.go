package intersect

import (
	"math"

	"github.com/chazu/cavalier/pkg/geom2"
)

// CircleCircleKind identifies the shape of a circle-circle intersection
// result.
type CircleCircleKind int

const (
	// CircleCircleNone means no intersects were found.
	CircleCircleNone CircleCircleKind = iota
	// CircleCircleTangent means the circles are tangent at one point.
	CircleCircleTangent
	// CircleCircleTwo means two distinct intersects were found.
	CircleCircleTwo
	// CircleCircleOverlapping means the circles are coincident.
	CircleCircleOverlapping
)

// CircleCircleResult is the result of intersecting two circles.
type CircleCircleResult struct {
	Kind           CircleCircleKind
	Point1, Point2 geom2.Vec2
}

// CircleCircle finds the intersect(s) between two circles, following the
// Paul Bourke two-circle-intersection construction.
func CircleCircle(radius1 float64, center1 geom2.Vec2, radius2 float64, center2 geom2.Vec2, eps float64) CircleCircleResult {
	cv := center2.Sub(center1)
	d2 := cv.Dot(cv)
	d := math.Sqrt(d2)

	if geom2.FuzzyZeroEps(d, eps) {
		if geom2.FuzzyEqualEps(radius1, radius2, eps) {
			return CircleCircleResult{Kind: CircleCircleOverlapping}
		}
		return CircleCircleResult{Kind: CircleCircleNone}
	}

	if geom2.FuzzyGreaterEps(d, radius1+radius2, eps) ||
		geom2.FuzzyLessEps(d, math.Abs(radius1-radius2), eps) {
		return CircleCircleResult{Kind: CircleCircleNone}
	}

	rad1Sq := radius1 * radius1
	a := (rad1Sq - radius2*radius2 + d2) / (2 * d)
	mid := center1.Add(cv.Scale(a / d))
	diff := rad1Sq - a*a

	if diff < 0 {
		return CircleCircleResult{Kind: CircleCircleTangent, Point1: mid}
	}

	h := math.Sqrt(diff)
	hOverD := h / d
	xTerm := hOverD * cv.Y
	yTerm := hOverD * cv.X

	pt1 := geom2.Vec2{X: mid.X + xTerm, Y: mid.Y - yTerm}
	pt2 := geom2.Vec2{X: mid.X - xTerm, Y: mid.Y + yTerm}

	if pt1.FuzzyEqualEps(pt2, eps) {
		return CircleCircleResult{Kind: CircleCircleTangent, Point1: pt1}
	}

	return CircleCircleResult{Kind: CircleCircleTwo, Point1: pt1, Point2: pt2}
}
