// Package polyline is the polyline core: vertex storage with bulge, the
// segment-iteration and primitive queries (area, length, winding number,
// extents), redundant-vertex cleanup, and the non-owning View sub-range
// abstraction (the offset and boolean engines copy vertex runs instead of
// using it).
package polyline

import (
	"github.com/chazu/cavalier/pkg/geom2"
	"github.com/chazu/cavalier/pkg/segment"
)

// Vertex is a polyline vertex: a position plus a bulge describing the arc
// (or line, if zero) to the next vertex.
type Vertex struct {
	X, Y, Bulge float64
}

// Pos returns the vertex's position as a Vec2.
func (v Vertex) Pos() geom2.Vec2 {
	return geom2.Vec2{X: v.X, Y: v.Y}
}

// WithBulge returns a copy of v with Bulge replaced.
func (v Vertex) WithBulge(bulge float64) Vertex {
	return Vertex{X: v.X, Y: v.Y, Bulge: bulge}
}

// BulgeIsZero reports whether v starts a line segment (as opposed to an arc).
func (v Vertex) BulgeIsZero() bool {
	return segment.BulgeIsZero(v.Bulge)
}

// BulgeIsNeg reports whether v starts a clockwise arc.
func (v Vertex) BulgeIsNeg() bool {
	return v.Bulge < 0
}

// BulgeIsPos reports whether v starts a counter-clockwise arc.
func (v Vertex) BulgeIsPos() bool {
	return v.Bulge > 0 && !v.BulgeIsZero()
}

// FuzzyEqual reports whether v and other are equal (position and bulge)
// within DefaultPosEqualEps.
func (v Vertex) FuzzyEqual(other Vertex) bool {
	return v.Pos().FuzzyEqual(other.Pos()) && geom2.FuzzyEqual(v.Bulge, other.Bulge)
}
