package intersect

import (
	"math"
	"testing"

	"github.com/chazu/cavalier/pkg/geom2"
)

func TestLineLineCrossing(t *testing.T) {
	r := LineLine(geom2.Vec2{X: 0, Y: 0}, geom2.Vec2{X: 10, Y: 0}, geom2.Vec2{X: 5, Y: -5}, geom2.Vec2{X: 5, Y: 5})
	if r.Kind != LineLineTrue {
		t.Fatalf("Kind = %v, want LineLineTrue", r.Kind)
	}
	if !geom2.FuzzyEqualEps(r.Seg1T, 0.5, 1e-9) || !geom2.FuzzyEqualEps(r.Seg2T, 0.5, 1e-9) {
		t.Errorf("Seg1T,Seg2T = %v,%v, want 0.5,0.5", r.Seg1T, r.Seg2T)
	}
}

func TestLineLineParallelNoIntersect(t *testing.T) {
	r := LineLine(geom2.Vec2{X: 0, Y: 0}, geom2.Vec2{X: 10, Y: 0}, geom2.Vec2{X: 0, Y: 1}, geom2.Vec2{X: 10, Y: 1})
	if r.Kind != LineLineNone {
		t.Errorf("Kind = %v, want LineLineNone", r.Kind)
	}
}

func TestLineLineOutsideSegmentBounds(t *testing.T) {
	r := LineLine(geom2.Vec2{X: 0, Y: 0}, geom2.Vec2{X: 1, Y: 0}, geom2.Vec2{X: 5, Y: -5}, geom2.Vec2{X: 5, Y: 5})
	if r.Kind != LineLineFalse {
		t.Errorf("Kind = %v, want LineLineFalse", r.Kind)
	}
}

func TestLineLineCollinearOverlap(t *testing.T) {
	r := LineLine(geom2.Vec2{X: 0, Y: 0}, geom2.Vec2{X: 10, Y: 0}, geom2.Vec2{X: 5, Y: 0}, geom2.Vec2{X: 15, Y: 0})
	if r.Kind != LineLineOverlapping {
		t.Fatalf("Kind = %v, want LineLineOverlapping", r.Kind)
	}
}

func TestLineCircleTwoPoints(t *testing.T) {
	r := LineCircle(geom2.Vec2{X: -5, Y: 0}, geom2.Vec2{X: 5, Y: 0}, 1, geom2.Vec2{X: 0, Y: 0}, geom2.DefaultPosEqualEps)
	if r.Kind != LineCircleTwo {
		t.Fatalf("Kind = %v, want LineCircleTwo", r.Kind)
	}
	lo, hi := geom2.MinMax(r.T0, r.T1)
	p0 := geom2.PointFromParametric(geom2.Vec2{X: -5, Y: 0}, geom2.Vec2{X: 5, Y: 0}, lo)
	p1 := geom2.PointFromParametric(geom2.Vec2{X: -5, Y: 0}, geom2.Vec2{X: 5, Y: 0}, hi)
	if !p0.FuzzyEqualEps(geom2.Vec2{X: -1, Y: 0}, 1e-9) || !p1.FuzzyEqualEps(geom2.Vec2{X: 1, Y: 0}, 1e-9) {
		t.Errorf("intersect points = %v, %v, want (-1,0),(1,0)", p0, p1)
	}
}

func TestLineCircleTangent(t *testing.T) {
	r := LineCircle(geom2.Vec2{X: -5, Y: 1}, geom2.Vec2{X: 5, Y: 1}, 1, geom2.Vec2{X: 0, Y: 0}, geom2.DefaultPosEqualEps)
	if r.Kind != LineCircleTangent {
		t.Fatalf("Kind = %v, want LineCircleTangent", r.Kind)
	}
}

func TestLineCircleNone(t *testing.T) {
	r := LineCircle(geom2.Vec2{X: -5, Y: 5}, geom2.Vec2{X: 5, Y: 5}, 1, geom2.Vec2{X: 0, Y: 0}, geom2.DefaultPosEqualEps)
	if r.Kind != LineCircleNone {
		t.Errorf("Kind = %v, want LineCircleNone", r.Kind)
	}
}

func TestCircleCircleTwoPoints(t *testing.T) {
	r := CircleCircle(1, geom2.Vec2{X: -0.5, Y: 0}, 1, geom2.Vec2{X: 0.5, Y: 0}, geom2.DefaultPosEqualEps)
	if r.Kind != CircleCircleTwo {
		t.Fatalf("Kind = %v, want CircleCircleTwo", r.Kind)
	}
	if !geom2.FuzzyEqualEps(r.Point1.X, 0, 1e-9) || !geom2.FuzzyEqualEps(r.Point2.X, 0, 1e-9) {
		t.Errorf("expected both intersect points on the y axis, got %v, %v", r.Point1, r.Point2)
	}
}

func TestCircleCircleSeparateNoIntersect(t *testing.T) {
	r := CircleCircle(1, geom2.Vec2{X: 0, Y: 0}, 1, geom2.Vec2{X: 10, Y: 0}, geom2.DefaultPosEqualEps)
	if r.Kind != CircleCircleNone {
		t.Errorf("Kind = %v, want CircleCircleNone", r.Kind)
	}
}

func TestCircleCircleCoincidentOverlapping(t *testing.T) {
	r := CircleCircle(1, geom2.Vec2{X: 0, Y: 0}, 1, geom2.Vec2{X: 0, Y: 0}, geom2.DefaultPosEqualEps)
	if r.Kind != CircleCircleOverlapping {
		t.Errorf("Kind = %v, want CircleCircleOverlapping", r.Kind)
	}
}

func TestCircleCircleTangentExternal(t *testing.T) {
	r := CircleCircle(1, geom2.Vec2{X: 0, Y: 0}, 1, geom2.Vec2{X: 2, Y: 0}, geom2.DefaultPosEqualEps)
	if r.Kind != CircleCircleTangent {
		t.Fatalf("Kind = %v, want CircleCircleTangent", r.Kind)
	}
	if !r.Point1.FuzzyEqualEps(geom2.Vec2{X: 1, Y: 0}, 1e-9) {
		t.Errorf("tangent point = %v, want (1,0)", r.Point1)
	}
}

func TestSegLineLineCrossing(t *testing.T) {
	r := Seg(geom2.Vec2{X: 0, Y: 0}, geom2.Vec2{X: 10, Y: 0}, 0, geom2.Vec2{X: 5, Y: -5}, geom2.Vec2{X: 5, Y: 5}, 0)
	if r.Kind != SegSegOne {
		t.Fatalf("Kind = %v, want SegSegOne", r.Kind)
	}
	if !r.Point1.FuzzyEqualEps(geom2.Vec2{X: 5, Y: 0}, 1e-9) {
		t.Errorf("Point1 = %v, want (5,0)", r.Point1)
	}
}

func TestSegLineArcCrossingTwice(t *testing.T) {
	// a horizontal line through a half-circle arc from (1,0) to (-1,0)
	// bulging through (0,1): the line at y=0.5 crosses the arc twice
	r := Seg(
		geom2.Vec2{X: -5, Y: 0.5}, geom2.Vec2{X: 5, Y: 0.5}, 0,
		geom2.Vec2{X: 1, Y: 0}, geom2.Vec2{X: -1, Y: 0}, 1,
	)
	if r.Kind != SegSegTwo {
		t.Fatalf("Kind = %v, want SegSegTwo", r.Kind)
	}
}

func TestSegArcArcCrossing(t *testing.T) {
	// two unit-radius arcs (upper half circles) centered at (-0.5,0) and
	// (0.5,0): their full circles cross at two points, at least one of
	// which lies within both arcs' upper sweep
	r := Seg(
		geom2.Vec2{X: -1.5, Y: 0}, geom2.Vec2{X: 0.5, Y: 0}, 1,
		geom2.Vec2{X: -0.5, Y: 0}, geom2.Vec2{X: 1.5, Y: 0}, 1,
	)
	if r.Kind == SegSegNone {
		t.Fatalf("Kind = %v, want an intersect", r.Kind)
	}
}

func TestSegOverlappingArcsSameDirection(t *testing.T) {
	// full unit circle centered at origin split into two identical
	// half-circle arcs described twice over the same sweep
	v1, v2 := geom2.Vec2{X: 1, Y: 0}, geom2.Vec2{X: -1, Y: 0}
	bulge := 1.0

	r := Seg(v1, v2, bulge, v1, v2, bulge)
	if r.Kind != SegSegOverlappingArcs {
		t.Fatalf("Kind = %v, want SegSegOverlappingArcs", r.Kind)
	}
}

func TestSegOverlappingLinesCollinear(t *testing.T) {
	r := Seg(
		geom2.Vec2{X: 0, Y: 0}, geom2.Vec2{X: 10, Y: 0}, 0,
		geom2.Vec2{X: 5, Y: 0}, geom2.Vec2{X: 15, Y: 0}, 0,
	)
	if r.Kind != SegSegOverlappingLines {
		t.Fatalf("Kind = %v, want SegSegOverlappingLines", r.Kind)
	}
}

func TestSegNoIntersectDisjointSegments(t *testing.T) {
	r := Seg(
		geom2.Vec2{X: 0, Y: 0}, geom2.Vec2{X: 1, Y: 0}, 0,
		geom2.Vec2{X: 0, Y: 5}, geom2.Vec2{X: 1, Y: 5}, 0,
	)
	if r.Kind != SegSegNone {
		t.Errorf("Kind = %v, want SegSegNone", r.Kind)
	}
}

func TestSegLineTangentToArc(t *testing.T) {
	// horizontal line at y=1 tangent to the half-circle arc through (0,1)
	r := Seg(
		geom2.Vec2{X: -5, Y: 1}, geom2.Vec2{X: 5, Y: 1}, 0,
		geom2.Vec2{X: 1, Y: 0}, geom2.Vec2{X: -1, Y: 0}, 1,
	)
	if r.Kind != SegSegTangent {
		t.Fatalf("Kind = %v, want SegSegTangent", r.Kind)
	}
	if !r.Point1.FuzzyEqualEps(geom2.Vec2{X: 0, Y: 1}, 1e-9) {
		t.Errorf("Point1 = %v, want (0,1)", r.Point1)
	}
}

func TestQuarterArcsShareOnlyEndpoint(t *testing.T) {
	// two quarter-circle arcs on the same circle, sharing only their
	// touching endpoint, should not report as an overlap
	bulge := math.Tan(math.Pi / 8)
	r := Seg(
		geom2.Vec2{X: 1, Y: 0}, geom2.Vec2{X: 0, Y: 1}, bulge,
		geom2.Vec2{X: 0, Y: 1}, geom2.Vec2{X: -1, Y: 0}, bulge,
	)
	if r.Kind != SegSegOne && r.Kind != SegSegTangent {
		t.Errorf("Kind = %v, want a single shared-endpoint intersect", r.Kind)
	}
}
