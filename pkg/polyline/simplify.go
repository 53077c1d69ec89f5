package polyline

import (
	"math"

	"github.com/chazu/cavalier/pkg/geom2"
	"github.com/chazu/cavalier/pkg/segment"
)

// RemoveRepeatPos returns a copy of p with every vertex that repeats the
// previous vertex's position (within eps) dropped, keeping the first and
// carrying the repeat's bulge onto it. Returns ok=false (and a nil result)
// if nothing was removed, to let callers avoid a needless allocation.
func (p *Polyline) RemoveRepeatPos(eps float64) (*Polyline, bool) {
	n := len(p.Vertices)
	if n < 2 {
		return nil, false
	}

	out := make([]Vertex, 0, n)
	prevPos := p.Vertices[0].Pos()
	out = append(out, p.Vertices[0])
	changed := false

	for i := 1; i < n; i++ {
		v := p.Vertices[i]
		if v.Pos().FuzzyEqualEps(prevPos, eps) {
			out[len(out)-1] = out[len(out)-1].WithBulge(v.Bulge)
			changed = true
			continue
		}
		out = append(out, v)
		prevPos = v.Pos()
	}

	if p.Closed && len(out) > 0 && out[len(out)-1].Pos().FuzzyEqualEps(out[0].Pos(), eps) {
		out = out[:len(out)-1]
		changed = true
	}

	if !changed {
		return nil, false
	}
	return &Polyline{Vertices: out, Closed: p.Closed, UserData: append([]uint64(nil), p.UserData...)}, true
}

// RemoveRedundant returns a copy of p with redundant vertices removed:
// vertices on top of their neighbor, collinear straight runs, and
// concentric same-direction arc runs are each collapsed into a single
// vertex/bulge spanning the run. Returns ok=false if nothing changed.
func (p *Polyline) RemoveRedundant(eps float64) (*Polyline, bool) {
	n := len(p.Vertices)
	if n < 2 {
		return nil, false
	}

	if n == 2 {
		if p.Vertices[0].Pos().FuzzyEqualEps(p.Vertices[1].Pos(), eps) {
			return &Polyline{
				Vertices: []Vertex{p.Vertices[1]},
				Closed:   p.Closed,
				UserData: append([]uint64(nil), p.UserData...),
			}, true
		}
		return nil, false
	}

	cur := append([]Vertex(nil), p.Vertices...)
	changedOverall := false

	for pass := 0; pass < n; pass++ {
		next, changed := removeRedundantPass(cur, p.Closed, eps)
		if !changed {
			break
		}
		changedOverall = true
		cur = next
		if len(cur) < 2 {
			break
		}
	}

	if !changedOverall {
		return nil, false
	}
	return &Polyline{Vertices: cur, Closed: p.Closed, UserData: append([]uint64(nil), p.UserData...)}, true
}

func removeRedundantPass(verts []Vertex, closed bool, eps float64) ([]Vertex, bool) {
	n := len(verts)
	if n < 2 {
		return verts, false
	}

	stack := make([]Vertex, 0, n)
	stack = append(stack, verts[0])
	changed := false

	for i := 1; i < n; i++ {
		v3 := verts[i]
		for len(stack) >= 2 {
			v1 := stack[len(stack)-2]
			v2 := stack[len(stack)-1]
			merged, ok := tryMergeTriple(v1, v2, v3, eps)
			if !ok {
				break
			}
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = merged
			changed = true
		}
		stack = append(stack, v3)
	}

	if closed {
		for len(stack) >= 3 {
			k := len(stack)
			merged, ok := tryMergeTriple(stack[k-2], stack[k-1], stack[0], eps)
			if !ok {
				break
			}
			stack = stack[:k-1]
			stack[len(stack)-1] = merged
			changed = true
		}
		for len(stack) >= 3 {
			k := len(stack)
			merged, ok := tryMergeTriple(stack[k-1], stack[0], stack[1], eps)
			if !ok {
				break
			}
			stack[k-1] = stack[k-1].WithBulge(merged.Bulge)
			stack = append(stack[:0:0], stack[1:]...)
			changed = true
		}
	}

	return stack, changed
}

// tryMergeTriple reports whether the middle vertex v2 of a v1->v2->v3 run is
// redundant, returning the merged vertex (v1's position, with a bulge
// spanning directly to v3) when it is.
func tryMergeTriple(v1, v2, v3 Vertex, eps float64) (Vertex, bool) {
	p1, p2, p3 := v1.Pos(), v2.Pos(), v3.Pos()

	if p2.FuzzyEqualEps(p3, eps) {
		return v1.WithBulge(v2.Bulge), true
	}

	v1Line := v1.BulgeIsZero()
	v2Line := v2.BulgeIsZero()

	if v1Line && v2Line {
		collinear := geom2.FuzzyZeroEps(
			p1.X*(p2.Y-p3.Y)+p2.X*(p3.Y-p1.Y)+p3.X*(p1.Y-p2.Y), eps)
		if !collinear {
			return Vertex{}, false
		}
		sameDirection := p3.Sub(p2).Dot(p2.Sub(p1)) > -eps
		if !sameDirection {
			return Vertex{}, false
		}
		return v1.WithBulge(0), true
	}

	if !v1Line && !v2Line {
		if v1.BulgeIsNeg() != v2.BulgeIsNeg() {
			return Vertex{}, false
		}
		_, c1 := segment.ArcRadiusAndCenter(p1, p2, v1.Bulge)
		r2, c2 := segment.ArcRadiusAndCenter(p2, p3, v2.Bulge)
		r1, _ := segment.ArcRadiusAndCenter(p1, p2, v1.Bulge)
		if !c1.FuzzyEqualEps(c2, eps) || !geom2.FuzzyEqualEps(r1, r2, eps) {
			return Vertex{}, false
		}
		theta1 := geom2.AngleFromBulge(v1.Bulge)
		theta2 := geom2.AngleFromBulge(v2.Bulge)
		mergedTheta := theta1 + theta2
		if math.Abs(mergedTheta) > math.Pi+eps {
			// a single segment cannot span more than a half circle
			return Vertex{}, false
		}
		return v1.WithBulge(geom2.BulgeFromAngle(mergedTheta)), true
	}

	return Vertex{}, false
}
