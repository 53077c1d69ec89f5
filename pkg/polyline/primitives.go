package polyline

import (
	"math"

	"github.com/chazu/cavalier/pkg/geom2"
	"github.com/chazu/cavalier/pkg/segment"
)

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// PathLength returns the total path length: the sum of chord lengths for
// line segments and |radius*sweep| for arcs.
func (p *Polyline) PathLength() float64 {
	total := 0.0
	p.IterSegments(func(s Seg) bool {
		total += segment.Length(s.V1.Pos(), s.V2.Pos(), s.V1.Bulge)
		return true
	})
	return total
}

// Area returns the signed closed area of the polyline (shoelace formula
// extended with circular-segment area for arcs). Always 0 for open
// polylines. Positive area means counter-clockwise orientation.
func (p *Polyline) Area() float64 {
	if !p.Closed {
		return 0
	}

	doubleTotal := 0.0
	p.IterSegments(func(s Seg) bool {
		v1, v2 := s.V1, s.V2
		doubleTotal += v1.X*v2.Y - v1.Y*v2.X

		if !v1.BulgeIsZero() {
			b := math.Abs(v1.Bulge)
			sweepAngle := geom2.AngleFromBulge(b)
			triangleBase := v2.Pos().DistanceTo(v1.Pos())
			radius := triangleBase * ((b*b + 1) / (4 * b))
			sagitta := b * triangleBase / 2
			triangleHeight := radius - sagitta
			doubleSectorArea := sweepAngle * radius * radius
			doubleTriangleArea := triangleBase * triangleHeight
			doubleArcArea := doubleSectorArea - doubleTriangleArea
			if v1.BulgeIsNeg() {
				doubleArcArea = -doubleArcArea
			}
			doubleTotal += doubleArcArea
		}
		return true
	})

	return doubleTotal / 2
}

// Orientation values for a closed polyline's Area-derived winding sense.
type Orientation int

const (
	// OrientationOpen is returned for open polylines, which have no
	// meaningful orientation.
	OrientationOpen Orientation = iota
	OrientationCCW
	OrientationCW
)

// Orientation classifies the polyline by the sign of Area. Meaningless if
// the polyline self-intersects.
func (p *Polyline) Orientation() Orientation {
	if !p.Closed {
		return OrientationOpen
	}
	if p.Area() < 0 {
		return OrientationCW
	}
	return OrientationCCW
}

// Extents returns the union of per-segment bounding boxes, with arc boxes
// accounting for quadrant-extreme points within the sweep. Returns
// ErrTooFewVertices if the polyline has fewer than 2 vertices.
func (p *Polyline) Extents() (Box, error) {
	if p.SegmentCount() == 0 {
		return Box{}, ErrTooFewVertices
	}

	v0 := p.Vertices[0]
	result := Box{v0.X, v0.Y, v0.X, v0.Y}

	p.IterSegments(func(s Seg) bool {
		if s.V1.BulgeIsZero() {
			if s.V2.X < result.MinX {
				result.MinX = s.V2.X
			} else if s.V2.X > result.MaxX {
				result.MaxX = s.V2.X
			}
			if s.V2.Y < result.MinY {
				result.MinY = s.V2.Y
			} else if s.V2.Y > result.MaxY {
				result.MaxY = s.V2.Y
			}
			return true
		}

		b := segment.BoundingBox(s.V1.Pos(), s.V2.Pos(), s.V1.Bulge)
		result.MinX = math.Min(result.MinX, b.MinX)
		result.MinY = math.Min(result.MinY, b.MinY)
		result.MaxX = math.Max(result.MaxX, b.MaxX)
		result.MaxY = math.Max(result.MaxY, b.MaxY)
		return true
	})

	return result, nil
}

// WindingNumber returns the signed winding number of the (closed) polyline
// about point: how many times it wraps counter-clockwise (positive) or
// clockwise (negative) around it. Always 0 for open polylines or polylines
// with fewer than 2 vertices.
func (p *Polyline) WindingNumber(point geom2.Vec2) int {
	if !p.Closed || p.VertexCount() < 2 {
		return 0
	}

	winding := 0
	p.IterSegments(func(s Seg) bool {
		if s.V1.BulgeIsZero() {
			winding += processLineWinding(s.V1, s.V2, point)
		} else {
			winding += processArcWinding(s.V1, s.V2, point)
		}
		return true
	})
	return winding
}

func processLineWinding(v1, v2 Vertex, point geom2.Vec2) int {
	p1, p2 := v1.Pos(), v2.Pos()
	if v1.Y <= point.Y {
		if v2.Y > point.Y && geom2.IsLeft(p1, p2, point) {
			return 1
		}
		return 0
	}
	if v2.Y <= point.Y && !geom2.IsLeft(p1, p2, point) {
		return -1
	}
	return 0
}

func processArcWinding(v1, v2 Vertex, point geom2.Vec2) int {
	p1, p2 := v1.Pos(), v2.Pos()
	isCCW := v1.BulgeIsPos()

	var pointIsLeft bool
	if isCCW {
		pointIsLeft = geom2.IsLeft(p1, p2, point)
	} else {
		pointIsLeft = geom2.IsLeftOrEqual(p1, p2, point)
	}

	distLessThanRadius := func() bool {
		radius, center := segment.ArcRadiusAndCenter(p1, p2, v1.Bulge)
		return center.DistanceSquaredTo(point) < radius*radius
	}

	switch {
	case v1.Y <= point.Y:
		if v2.Y > point.Y {
			if isCCW {
				if pointIsLeft {
					return 1
				}
				if distLessThanRadius() {
					return 1
				}
				return 0
			}
			if pointIsLeft && !distLessThanRadius() {
				return 1
			}
			return 0
		}
		if isCCW && !pointIsLeft && p2.X < point.X && point.X < p1.X && distLessThanRadius() {
			return 1
		}
		if !isCCW && pointIsLeft && p1.X < point.X && point.X < p2.X && distLessThanRadius() {
			return -1
		}
		return 0
	case v2.Y <= point.Y:
		if isCCW {
			if !pointIsLeft && !distLessThanRadius() {
				return -1
			}
			return 0
		}
		if pointIsLeft && distLessThanRadius() {
			return -1
		}
		if !pointIsLeft {
			return -1
		}
		return 0
	default:
		if isCCW && !pointIsLeft && p1.X < point.X && point.X < p2.X && distLessThanRadius() {
			return 1
		}
		if !isCCW && pointIsLeft && p2.X < point.X && point.X < p1.X && distLessThanRadius() {
			return -1
		}
		return 0
	}
}
