package geom2

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// NormalizeRadians normalizes an angle to [0, Tau]; an angle already in that
// range, Tau included, is returned unchanged.
func NormalizeRadians(angle float64) float64 {
	if angle >= 0 && angle <= Tau {
		return angle
	}
	return angle - math.Floor(angle/Tau)*Tau
}

// DeltaAngle returns the smaller signed difference from angle1 to angle2,
// in (-Pi, Pi].
func DeltaAngle(angle1, angle2 float64) float64 {
	diff := NormalizeRadians(angle2 - angle1)
	if diff > math.Pi {
		diff -= Tau
	}
	return diff
}

// DeltaAngleSigned returns the magnitude of DeltaAngle with the sign forced
// to match negative (clockwise sweeps are always negative).
func DeltaAngleSigned(angle1, angle2 float64, negative bool) float64 {
	diff := math.Abs(DeltaAngle(angle1, angle2))
	if negative {
		return -diff
	}
	return diff
}

// AngleBetweenEps reports whether testAngle lies on the counter-clockwise
// sweep from startAngle to endAngle, inclusive within eps.
func AngleBetweenEps(testAngle, startAngle, endAngle, eps float64) bool {
	endSweep := NormalizeRadians(endAngle - startAngle)
	midSweep := NormalizeRadians(testAngle - startAngle)
	return midSweep < endSweep+eps
}

// AngleWithinSweepEps reports whether testAngle lies within the arc sweep of
// sweepAngle (signed; negative sweeps clockwise) starting at startAngle.
func AngleWithinSweepEps(testAngle, startAngle, sweepAngle, eps float64) bool {
	endAngle := startAngle + sweepAngle
	if sweepAngle < 0 {
		return AngleBetweenEps(testAngle, endAngle, startAngle, eps)
	}
	return AngleBetweenEps(testAngle, startAngle, endAngle, eps)
}

// BulgeFromAngle returns the bulge for a given arc sweep angle:
// bulge = tan(sweep / 4).
func BulgeFromAngle(angle float64) float64 {
	return math.Tan(angle / 4)
}

// AngleFromBulge returns the arc sweep angle for a given bulge:
// sweep = 4 * atan(bulge).
func AngleFromBulge(bulge float64) float64 {
	return 4 * math.Atan(bulge)
}

// Angle returns the polar angle of the direction vector from p0 to p1.
func Angle(p0, p1 Vec2) float64 {
	return math.Atan2(p1.Y-p0.Y, p1.X-p0.X)
}

// Midpoint returns the midpoint of the segment p0-p1.
func Midpoint(p0, p1 Vec2) Vec2 {
	return Vec2{(p0.X + p1.X) / 2, (p0.Y + p1.Y) / 2}
}

// PointOnCircle returns the point at the given polar angle on the circle
// with the given radius and center.
func PointOnCircle(radius float64, center Vec2, angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{center.X + radius*c, center.Y + radius*s}
}

// PointFromParametric returns the point on segment p0-p1 at parametric
// value t (t=0 at p0, t=1 at p1).
func PointFromParametric(p0, p1 Vec2, t float64) Vec2 {
	return p0.Add(p1.Sub(p0).Scale(t))
}

// ParametricFromPoint returns the parametric t value of point along segment
// p0-p1, assuming point lies on the (possibly extended) line through p0, p1.
func ParametricFromPoint(p0, p1, point Vec2, eps float64) float64 {
	if FuzzyEqualEps(p0.X, p1.X, eps) {
		return (point.Y - p0.Y) / (p1.Y - p0.Y)
	}
	return (point.X - p0.X) / (p1.X - p0.X)
}

// LineSegClosestPoint returns the closest point on segment p0-p1 to point.
func LineSegClosestPoint(p0, p1, point Vec2) Vec2 {
	v := p1.Sub(p0)
	w := point.Sub(p0)
	c1 := w.Dot(v)
	if c1 < DefaultPosEqualEps {
		return p0
	}
	c2 := v.LengthSquared()
	if c2 < c1+DefaultPosEqualEps {
		return p1
	}
	b := c1 / c2
	return p0.Add(v.Scale(b))
}

func perpDotTestValue(p0, p1, point Vec2) float64 {
	return (p1.X-p0.X)*(point.Y-p0.Y) - (p1.Y-p0.Y)*(point.X-p0.X)
}

// IsLeft reports whether point is strictly left of the direction p1-p0.
func IsLeft(p0, p1, point Vec2) bool {
	return perpDotTestValue(p0, p1, point) > 0
}

// IsLeftOrEqual reports whether point is left of or collinear with p1-p0.
func IsLeftOrEqual(p0, p1, point Vec2) bool {
	return perpDotTestValue(p0, p1, point) >= 0
}

// IsLeftOrCoincidentEps reports whether point is left of, or fuzzy
// coincident with, the direction p1-p0.
func IsLeftOrCoincidentEps(p0, p1, point Vec2, eps float64) bool {
	return perpDotTestValue(p0, p1, point) > -eps
}

// IsRightOrCoincidentEps reports whether point is right of, or fuzzy
// coincident with, the direction p1-p0.
func IsRightOrCoincidentEps(p0, p1, point Vec2, eps float64) bool {
	return perpDotTestValue(p0, p1, point) < eps
}

// PointWithinArcSweep reports whether point lies within the angular region
// swept by an arc from arcStart to arcEnd around center, projected outward
// as an infinite cone.
func PointWithinArcSweep(center, arcStart, arcEnd Vec2, isClockwise bool, point Vec2) bool {
	if isClockwise {
		return IsRightOrCoincidentEps(center, arcStart, point, DefaultPosEqualEps) &&
			IsLeftOrCoincidentEps(center, arcEnd, point, DefaultPosEqualEps)
	}
	return IsLeftOrCoincidentEps(center, arcStart, point, DefaultPosEqualEps) &&
		IsRightOrCoincidentEps(center, arcEnd, point, DefaultPosEqualEps)
}

// QuadraticSolutions returns the two solutions to a*x^2 + b*x + c = 0 given
// the precomputed sqrt of the discriminant, using the numerically stable
// formulation that avoids cancellation error.
func QuadraticSolutions(a, b, c, sqrtDiscriminant float64) (float64, float64) {
	denom := 2 * a
	var sol1 float64
	if b < 0 {
		sol1 = (-b + sqrtDiscriminant) / denom
	} else {
		sol1 = (-b - sqrtDiscriminant) / denom
	}
	sol2 := (c / a) / sol1
	return sol1, sol2
}
