package aabbindex

import "sort"

// NodeSize is the fixed branching factor of the packed tree.
const NodeSize = 16

// Index is a static, Hilbert-sorted, packed bounding-volume hierarchy over a
// fixed set of boxes. Built once; immutable and safe to share across
// goroutines after Build returns.
type Index struct {
	// levels[0] holds the Hilbert-sorted leaf boxes (Index fields refer back
	// to the caller's original item list); levels[1:] hold internal node
	// boxes, each covering up to NodeSize boxes from the level below.
	levels  [][]Box
	extents Box
}

// Build constructs a packed Hilbert-sorted index over boxes. The Index field
// of each input Box must already hold the caller's item index; Build does
// not mutate Index but does reorder the slice by Hilbert code internally.
func Build(boxes []Box) *Index {
	if len(boxes) == 0 {
		return &Index{levels: nil}
	}

	extents := boundingBox(boxes)

	leaves := make([]Box, len(boxes))
	copy(leaves, boxes)
	sort.Slice(leaves, func(i, j int) bool {
		return hilbertCode(leaves[i], extents) < hilbertCode(leaves[j], extents)
	})

	levels := [][]Box{leaves}
	current := leaves
	for len(current) > 1 {
		next := make([]Box, 0, (len(current)+NodeSize-1)/NodeSize)
		for i := 0; i < len(current); i += NodeSize {
			end := i + NodeSize
			if end > len(current) {
				end = len(current)
			}
			parent := boundingBox(current[i:end])
			// Index is not meaningful for internal nodes; it is left as the
			// index of the first child's leaf for debugging purposes.
			parent.Index = current[i].Index
			next = append(next, parent)
		}
		levels = append(levels, next)
		current = next
	}

	return &Index{levels: levels, extents: extents}
}

// Extents returns the overall bounding box of every item in the index.
func (idx *Index) Extents() Box {
	return idx.extents
}

// Len returns the number of leaf boxes in the index.
func (idx *Index) Len() int {
	if len(idx.levels) == 0 {
		return 0
	}
	return len(idx.levels[0])
}

// Visitor is called once per leaf box overlapping a query; returning false
// stops the query early.
type Visitor func(b Box) bool

// Query visits every leaf box overlapping queryBox, filtering top-down
// through internal node levels. Never allocates beyond the call stack.
func (idx *Index) Query(queryBox Box, visit Visitor) {
	if len(idx.levels) == 0 {
		return
	}
	idx.queryLevel(len(idx.levels)-1, 0, queryBox, visit)
}

// queryLevel recurses from level down to the leaves, restricting to the
// NodeSize-wide span of children under node index nodeIdx at level level+1.
func (idx *Index) queryLevel(level, nodeIdx int, queryBox Box, visit Visitor) bool {
	nodes := idx.levels[level]
	start := nodeIdx * NodeSize
	end := start + NodeSize
	if end > len(nodes) {
		end = len(nodes)
	}

	for i := start; i < end; i++ {
		if !intersects(nodes[i], queryBox) {
			continue
		}
		if level == 0 {
			if !visit(nodes[i]) {
				return false
			}
			continue
		}
		if !idx.queryLevel(level-1, i, queryBox, visit) {
			return false
		}
	}
	return true
}

// QueryAll returns every leaf box overlapping queryBox.
func (idx *Index) QueryAll(queryBox Box) []Box {
	var out []Box
	idx.Query(queryBox, func(b Box) bool {
		out = append(out, b)
		return true
	})
	return out
}

// Nearest returns the leaf box with the smallest minDist to point (x, y),
// found by a linear scan over every leaf box; ok is false if the index is
// empty.
func (idx *Index) Nearest(x, y float64) (Box, bool) {
	if len(idx.levels) == 0 {
		return Box{}, false
	}
	best := Box{}
	bestDist := -1.0
	found := false
	for _, b := range idx.levels[0] {
		d := minDist(x, y, b)
		if !found || d < bestDist {
			best, bestDist, found = b, d, true
		}
	}
	return best, found
}
