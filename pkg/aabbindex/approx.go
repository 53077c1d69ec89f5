package aabbindex

import "github.com/dhconnelly/rtreego"

const (
	approxMinChildren = 2
	approxMaxChildren = 8
)

// boxSpatial adapts a Box to rtreego.Spatial.
type boxSpatial struct {
	box  Box
	rect rtreego.Rect
}

func (b *boxSpatial) Bounds() rtreego.Rect {
	return b.rect
}

func toRect(b Box) rtreego.Rect {
	lenX := b.MaxX - b.MinX
	lenY := b.MaxY - b.MinY
	if lenX <= 0 {
		lenX = 1e-10
	}
	if lenY <= 0 {
		lenY = 1e-10
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, []float64{lenX, lenY})
	if err != nil {
		// Only reachable if lenX/lenY are non-positive, which is guarded
		// above; treat as a programmer error rather than a runtime one.
		panic(err)
	}
	return rect
}

// Approx is an approximate AABB index: a dynamic R-tree (via rtreego)
// intended for broad-filter queries that tolerate extra candidates, trading
// the packed index's construction cost for fast incremental inserts.
type Approx struct {
	tree *rtreego.Rtree
}

// BuildApprox constructs an approximate index over boxes using a dynamic
// R-tree bulk-inserted one box at a time. Use Build instead for the exact,
// tighter packed index.
func BuildApprox(boxes []Box) *Approx {
	tree := rtreego.NewTree(2, approxMinChildren, approxMaxChildren)
	for _, b := range boxes {
		tree.Insert(&boxSpatial{box: b, rect: toRect(b)})
	}
	return &Approx{tree: tree}
}

// Query visits every box whose conservative bounds intersect queryBox. The
// approximate index may over-report (never under-report) overlaps.
func (a *Approx) Query(queryBox Box, visit Visitor) {
	results := a.tree.SearchIntersect(toRect(queryBox))
	for _, r := range results {
		bs := r.(*boxSpatial)
		if !visit(bs.box) {
			return
		}
	}
}

// QueryAll returns every box whose conservative bounds intersect queryBox.
func (a *Approx) QueryAll(queryBox Box) []Box {
	var out []Box
	a.Query(queryBox, func(b Box) bool {
		out = append(out, b)
		return true
	})
	return out
}
