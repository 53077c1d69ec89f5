package intersect

import (
	"math"

	"github.com/chazu/cavalier/pkg/geom2"
)

// LineCircleKind identifies the shape of a line-circle intersection result.
type LineCircleKind int

const (
	// LineCircleNone means no intersect was found.
	LineCircleNone LineCircleKind = iota
	// LineCircleTangent means the line is tangent to the circle.
	LineCircleTangent
	// LineCircleTwo means two distinct intersects were found.
	LineCircleTwo
)

// LineCircleResult is the result of intersecting a line segment with a
// circle, given in the line segment's parametric t space (P(t) = p0 + t*(p1-p0)).
// t outside [0, 1] means the intersect lies on the extended line rather than
// the segment itself.
type LineCircleResult struct {
	Kind   LineCircleKind
	T0, T1 float64
}

// LineCircle finds the intersect(s) between line segment p0->p1 and the
// circle with the given radius and center, using eps for fuzzy comparisons.
func LineCircle(p0, p1 geom2.Vec2, radius float64, center geom2.Vec2, eps float64) LineCircleResult {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	h := center.X
	k := center.Y

	if p0.FuzzyEqualEps(p1, eps) {
		xh := (p0.X+p1.X)/2 - h
		yk := (p0.Y+p1.Y)/2 - k
		if geom2.FuzzyEqualEps(xh*xh+yk*yk, radius*radius, eps) {
			return LineCircleResult{Kind: LineCircleTangent, T0: 0}
		}
		return LineCircleResult{Kind: LineCircleNone}
	}

	// solve in the dominant axis: a steep line is handled with x and y
	// swapped, which leaves the parametric t values unchanged
	if math.Abs(dy) > math.Abs(dx) {
		swap := func(p geom2.Vec2) geom2.Vec2 { return geom2.Vec2{X: p.Y, Y: p.X} }
		return LineCircle(swap(p0), swap(p1), radius, swap(center), eps)
	}

	p0Shifted := p0.Sub(center)
	p1Shifted := p1.Sub(center)

	var a, b, c float64
	if geom2.FuzzyZero(dx) {
		xPos := (p1Shifted.X + p0Shifted.X) / 2
		a, b, c = 1, 0, -xPos
	} else {
		m := dy / dx
		a, b, c = m, -1, p1Shifted.Y-m*p1Shifted.X
	}

	a2 := a * a
	b2 := b * b
	c2 := c * c
	r2 := radius * radius
	a2b2 := a2 + b2

	shortestDist := math.Abs(c) / math.Sqrt(a2b2)

	if shortestDist > radius+eps {
		return LineCircleResult{Kind: LineCircleNone}
	}

	x0 := -a*c/a2b2 + h
	y0 := -b*c/a2b2 + k

	if geom2.FuzzyEqualEps(shortestDist, radius, eps) {
		t := geom2.ParametricFromPoint(p0, p1, geom2.Vec2{X: x0, Y: y0}, eps)
		return LineCircleResult{Kind: LineCircleTangent, T0: t}
	}

	d := r2 - c2/a2b2
	mult := math.Sqrt(math.Abs(d / a2b2))

	xSol1 := x0 + b*mult
	xSol2 := x0 - b*mult
	ySol1 := y0 - a*mult
	ySol2 := y0 + a*mult
	sol1 := geom2.ParametricFromPoint(p0, p1, geom2.Vec2{X: xSol1, Y: ySol1}, eps)
	sol2 := geom2.ParametricFromPoint(p0, p1, geom2.Vec2{X: xSol2, Y: ySol2}, eps)
	t0, t1 := geom2.MinMax(sol1, sol2)
	return LineCircleResult{Kind: LineCircleTwo, T0: t0, T1: t1}
}
