package polyline

// Source is the query interface satisfied by both an owning Polyline and a
// non-owning View, so a sub-range can be iterated without materializing an
// intermediate copy. The offset and boolean packages do not use it; they copy
// vertex runs into offset.Slice values.
type Source interface {
	VertexCount() int
	IsClosed() bool
	At(i int) Vertex
	SegmentCountOf() int
}

// IsClosed reports whether p is a closed polyline.
func (p *Polyline) IsClosed() bool { return p.Closed }

// SegmentCountOf satisfies Source (mirrors SegmentCount).
func (p *Polyline) SegmentCountOf() int { return p.SegmentCount() }

// View is a non-owning, read-only selection of consecutive segments within
// a source polyline: a start/end index range, optional replacement
// endpoints, and whether it's treated as closed. The replacement endpoints,
// when present, must lie on the first/last segment of the range within
// pos_equal_eps.
type View struct {
	Source      *Polyline
	StartIndex  int
	EndIndex    int
	StartPoint  *Vertex // optional override for the first point of the view
	EndPoint    *Vertex // optional override for the last point of the view
	ViewClosed  bool
}

// NewView returns a view over source spanning vertex indices
// [startIndex, endIndex] inclusive (interpreted modulo source vertex count).
func NewView(source *Polyline, startIndex, endIndex int) *View {
	return &View{Source: source, StartIndex: startIndex, EndIndex: endIndex}
}

// VertexCount returns the number of vertices addressed by the view.
func (v *View) VertexCount() int {
	n := v.Source.VertexCount()
	if n == 0 {
		return 0
	}
	span := v.EndIndex - v.StartIndex
	if span < 0 {
		span += n
	}
	return span + 1
}

// IsClosed reports whether the view is treated as closed.
func (v *View) IsClosed() bool { return v.ViewClosed }

// SegmentCountOf returns the number of segments addressed by the view.
func (v *View) SegmentCountOf() int {
	vc := v.VertexCount()
	if vc < 2 {
		return 0
	}
	if v.ViewClosed {
		return vc
	}
	return vc - 1
}

// At returns the i-th vertex within the view (0-indexed from StartIndex),
// applying StartPoint/EndPoint overrides at the boundaries.
func (v *View) At(i int) Vertex {
	vc := v.VertexCount()
	idx := ((i % vc) + vc) % vc
	if idx == 0 && v.StartPoint != nil {
		return *v.StartPoint
	}
	if idx == vc-1 && v.EndPoint != nil {
		return *v.EndPoint
	}
	return v.Source.At(v.StartIndex + idx)
}

// Seg returns the i-th segment of the view as a (V1, V2) pair.
func (v *View) Seg(i int) Seg {
	v1 := v.At(i)
	v2 := v.At(i + 1)
	return Seg{V1: v1, V2: v2, Index: i}
}

// IterSegments calls visit once per segment addressed by the view, in
// order.
func (v *View) IterSegments(visit func(Seg) bool) {
	n := v.SegmentCountOf()
	for i := 0; i < n; i++ {
		if !visit(v.Seg(i)) {
			return
		}
	}
}

// Materialize copies the view's vertices out into a standalone Polyline.
func (v *View) Materialize() *Polyline {
	n := v.VertexCount()
	out := make([]Vertex, n)
	for i := 0; i < n; i++ {
		out[i] = v.At(i)
	}
	return &Polyline{Vertices: out, Closed: v.ViewClosed, UserData: append([]uint64(nil), v.Source.UserData...)}
}
