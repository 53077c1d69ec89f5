package polyline

import (
	"github.com/pkg/errors"
)

// ErrTooFewVertices is returned by operations that require at least two
// vertices (e.g. Extents) when called on a polyline with fewer.
var ErrTooFewVertices = errors.New("polyline: fewer than 2 vertices")

// Polyline is an ordered sequence of vertices, a closed flag, and an opaque
// user-data list preserved across offset and boolean derivations.
type Polyline struct {
	Vertices []Vertex
	Closed   bool
	UserData []uint64
}

// New returns an empty open polyline.
func New() *Polyline {
	return &Polyline{}
}

// NewClosed returns an empty closed polyline.
func NewClosed() *Polyline {
	return &Polyline{Closed: true}
}

// FromVertices returns a polyline wrapping the given vertices directly (not
// copied).
func FromVertices(vertices []Vertex, closed bool) *Polyline {
	return &Polyline{Vertices: vertices, Closed: closed}
}

// Add appends a new vertex.
func (p *Polyline) Add(x, y, bulge float64) {
	p.Vertices = append(p.Vertices, Vertex{X: x, Y: y, Bulge: bulge})
}

// AddVertex appends v.
func (p *Polyline) AddVertex(v Vertex) {
	p.Vertices = append(p.Vertices, v)
}

// VertexCount returns the number of vertices.
func (p *Polyline) VertexCount() int {
	return len(p.Vertices)
}

// SegmentCount returns the number of segments: VertexCount-1 if open,
// VertexCount if closed (wrapping last to first). Zero if fewer than 2
// vertices (or, when open, fewer than 2).
func (p *Polyline) SegmentCount() int {
	n := len(p.Vertices)
	if n < 2 {
		return 0
	}
	if p.Closed {
		return n
	}
	return n - 1
}

// At returns the vertex at index i, wrapping modulo VertexCount for
// out-of-range i (used by callers iterating cyclically over closed
// polylines).
func (p *Polyline) At(i int) Vertex {
	n := len(p.Vertices)
	return p.Vertices[((i%n)+n)%n]
}

// Clone returns a deep copy of p, including user data.
func (p *Polyline) Clone() *Polyline {
	out := &Polyline{
		Vertices: append([]Vertex(nil), p.Vertices...),
		Closed:   p.Closed,
		UserData: append([]uint64(nil), p.UserData...),
	}
	return out
}

// Seg is a (v1, v2) pair describing one segment of a polyline, where v1's
// bulge describes the arc (or line) from v1 to v2.
type Seg struct {
	V1, V2 Vertex
	// Index is the index of V1 within the source polyline's Vertices slice.
	Index int
}

// IterSegments calls visit once per segment in order. Returns immediately
// (without error) if SegmentCount is zero.
func (p *Polyline) IterSegments(visit func(Seg) bool) {
	n := p.SegmentCount()
	for i := 0; i < n; i++ {
		v1 := p.Vertices[i]
		var v2 Vertex
		if i+1 < len(p.Vertices) {
			v2 = p.Vertices[i+1]
		} else {
			v2 = p.Vertices[0]
		}
		if !visit(Seg{V1: v1, V2: v2, Index: i}) {
			return
		}
	}
}

// Segments returns every segment as a slice (allocates; prefer IterSegments
// in hot paths).
func (p *Polyline) Segments() []Seg {
	out := make([]Seg, 0, p.SegmentCount())
	p.IterSegments(func(s Seg) bool {
		out = append(out, s)
		return true
	})
	return out
}

// InvertDirection reverses vertex order and negates each (now-shifted)
// bulge, in place. Closed flag and user data are preserved.
func (p *Polyline) InvertDirection() {
	n := len(p.Vertices)
	if n == 0 {
		return
	}
	reversed := make([]Vertex, n)
	// the bulge that described the arc from v[i] to v[i+1] now describes the
	// arc from the reversed v[n-1-i] to v[n-2-i], negated.
	for i := 0; i < n; i++ {
		src := p.Vertices[n-1-i]
		var bulge float64
		if i == n-1 {
			bulge = -p.Vertices[n-1].Bulge
		} else {
			bulge = -p.Vertices[n-2-i].Bulge
		}
		reversed[i] = Vertex{X: src.X, Y: src.Y, Bulge: bulge}
	}
	p.Vertices = reversed
}

// Scale scales every vertex position by s in place. Bulges are unchanged
// (arc sweep angle is invariant under uniform scale).
func (p *Polyline) Scale(s float64) {
	for i := range p.Vertices {
		p.Vertices[i].X *= s
		p.Vertices[i].Y *= s
	}
}

// Translate shifts every vertex position by (dx, dy) in place. Bulges are
// unchanged.
func (p *Polyline) Translate(dx, dy float64) {
	for i := range p.Vertices {
		p.Vertices[i].X += dx
		p.Vertices[i].Y += dy
	}
}
