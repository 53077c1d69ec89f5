// Package aabbindex provides spatial indexes over axis-aligned bounding
// boxes: a packed, Hilbert-curve-sorted static index for fast repeated
// queries over a fixed item set, and an approximate variant backed by a
// dynamic R-tree for callers that only need a broad filter.
package aabbindex

import "math"

// Box is an axis-aligned bounding box associated with an index into the
// caller's item list.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
	Index                  int
}

// enlarge returns the smallest box containing both a and b.
func enlarge(a, b Box) Box {
	return Box{
		MinX: math.Min(a.MinX, b.MinX),
		MinY: math.Min(a.MinY, b.MinY),
		MaxX: math.Max(a.MaxX, b.MaxX),
		MaxY: math.Max(a.MaxY, b.MaxY),
	}
}

// intersects reports whether a and b overlap (touching counts as overlap).
func intersects(a, b Box) bool {
	return a.MinX <= b.MaxX && a.MaxX >= b.MinX && a.MinY <= b.MaxY && a.MaxY >= b.MinY
}

// boundingBox returns the smallest box containing every box in boxes.
func boundingBox(boxes []Box) Box {
	result := boxes[0]
	for _, b := range boxes[1:] {
		result = enlarge(result, b)
	}
	return result
}

// minDist computes the squared distance from point (x, y) to box b, zero if
// the point is contained in b.
//
// Implemented per Definition 2 of "Nearest Neighbor Queries" by
// N. Roussopoulos, S. Kelley and F. Vincent, ACM SIGMOD, pages 71-79, 1995.
func minDist(x, y float64, b Box) float64 {
	sum := 0.0
	if x < b.MinX {
		d := x - b.MinX
		sum += d * d
	} else if x > b.MaxX {
		d := x - b.MaxX
		sum += d * d
	}
	if y < b.MinY {
		d := y - b.MinY
		sum += d * d
	} else if y > b.MaxY {
		d := y - b.MaxY
		sum += d * d
	}
	return sum
}
