package offset

import (
	"math"

	"github.com/chazu/cavalier/pkg/geom2"
	"github.com/chazu/cavalier/pkg/polyline"
)

// stitchEdge is one slice viewed as a graph edge between its two endpoints.
type stitchEdge struct {
	slice Slice
	used  bool
}

// nodeID identifies a cluster of fuzzy-coincident slice endpoints.
type nodeID int

// stitchGraph clusters slice endpoints into nodes (within slice_join_eps)
// and tracks which edges touch which node, mirroring the teacher's
// adjacency-list graph representation.
type stitchGraph struct {
	edges     []*stitchEdge
	nodePos   []geom2.Vec2
	nodeEdges map[nodeID][]int // node -> edge indices touching it (by start or end)
	eps       float64
}

func newStitchGraph(slices []Slice, eps float64) *stitchGraph {
	g := &stitchGraph{
		nodeEdges: make(map[nodeID][]int),
		eps:       eps,
	}
	for _, s := range slices {
		g.edges = append(g.edges, &stitchEdge{slice: s})
	}

	findOrAddNode := func(p geom2.Vec2) nodeID {
		for i, np := range g.nodePos {
			if np.FuzzyEqualEps(p, eps) {
				return nodeID(i)
			}
		}
		g.nodePos = append(g.nodePos, p)
		return nodeID(len(g.nodePos) - 1)
	}

	for i, e := range g.edges {
		start := e.slice.Vertices[0].Pos()
		end := e.slice.Vertices[len(e.slice.Vertices)-1].Pos()
		sNode := findOrAddNode(start)
		eNode := findOrAddNode(end)
		g.nodeEdges[sNode] = append(g.nodeEdges[sNode], i)
		if eNode != sNode {
			g.nodeEdges[eNode] = append(g.nodeEdges[eNode], i)
		}
	}
	return g
}

// edgeDirAt returns the start point of edge edgeIdx and the vertex right
// after it when atStart is true, or its end point and the vertex right
// before it otherwise.
func (g *stitchGraph) edgeDirAt(edgeIdx int, atStart bool) (geom2.Vec2, geom2.Vec2) {
	verts := g.edges[edgeIdx].slice.Vertices
	if atStart {
		return verts[0].Pos(), verts[1].Pos()
	}
	n := len(verts)
	return verts[n-1].Pos(), verts[n-2].Pos()
}

// Stitch greedily traverses the graph, at each node choosing the
// continuation that minimizes turn angle, producing closed polylines when
// traversal returns to the chain's starting node and open polylines
// otherwise. Ties on turn angle prefer the candidate edge with the smaller
// index (a deterministic, order-stable rule).
func Stitch(slices []Slice, eps float64) []*polyline.Polyline {
	g := newStitchGraph(slices, eps)
	var results []*polyline.Polyline

	for startIdx, e := range g.edges {
		if e.used {
			continue
		}
		e.used = true

		chain := append([]polyline.Vertex(nil), e.slice.Vertices...)
		startNode := g.findNode(e.slice.Vertices[0].Pos())
		curNode := g.findNode(e.slice.Vertices[len(e.slice.Vertices)-1].Pos())
		_, prevDirFrom := g.edgeDirAt(startIdx, false)
		prevPoint := e.slice.Vertices[len(e.slice.Vertices)-1].Pos()
		// a lone slice whose own start and end already cluster to the
		// same node is a complete loop before any continuation runs
		closed := curNode == startNode

		for {
			next, nextReversed, ok := g.bestContinuation(curNode, prevDirFrom, prevPoint)
			if !ok {
				break
			}
			g.edges[next].used = true
			verts := g.edges[next].slice.Vertices
			if nextReversed {
				verts = reverseVertexRun(verts)
			}
			// drop the duplicate shared endpoint, carrying its bulge (the
			// first segment of the next slice) onto the chain's last vertex
			chain[len(chain)-1] = chain[len(chain)-1].WithBulge(verts[0].Bulge)
			chain = append(chain, verts[1:]...)

			endPoint := verts[len(verts)-1].Pos()
			newNode := g.findNode(endPoint)
			prevDirFrom = verts[len(verts)-2].Pos()
			prevPoint = endPoint
			curNode = newNode

			if curNode == startNode {
				closed = true
				break
			}
		}

		if closed && len(chain) > 1 {
			chain = chain[:len(chain)-1]
		}

		results = append(results, &polyline.Polyline{Vertices: chain, Closed: closed})
	}

	return results
}

func (g *stitchGraph) findNode(p geom2.Vec2) nodeID {
	for i, np := range g.nodePos {
		if np.FuzzyEqualEps(p, g.eps) {
			return nodeID(i)
		}
	}
	return -1
}

// bestContinuation picks, among unused edges touching curNode, the one
// whose outgoing direction turns least from the incoming direction
// (prevDirFrom -> prevPoint). Returns the edge index, whether it must be
// traversed reversed (entered from its end rather than its start), and
// whether any continuation was found.
func (g *stitchGraph) bestContinuation(curNode nodeID, prevDirFrom, prevPoint geom2.Vec2) (int, bool, bool) {
	incoming := prevPoint.Sub(prevDirFrom)

	best := -1
	bestReversed := false
	bestTurn := math.Inf(1)

	for _, edgeIdx := range g.nodeEdges[curNode] {
		e := g.edges[edgeIdx]
		if e.used {
			continue
		}
		verts := e.slice.Vertices
		start := verts[0].Pos()
		end := verts[len(verts)-1].Pos()

		tryCandidate := func(entersAt geom2.Vec2, nextPoint geom2.Vec2, reversed bool) {
			if !entersAt.FuzzyEqualEps(prevPoint, g.eps) {
				return
			}
			outgoing := nextPoint.Sub(entersAt)
			turn := math.Abs(geom2.DeltaAngle(geom2.Angle(geom2.Vec2{}, incoming), geom2.Angle(geom2.Vec2{}, outgoing)))
			if turn < bestTurn-1e-12 || (turn < bestTurn+1e-12 && (best == -1 || edgeIdx < best)) {
				best, bestReversed, bestTurn = edgeIdx, reversed, turn
			}
		}

		if len(verts) >= 2 {
			tryCandidate(start, verts[1].Pos(), false)
			tryCandidate(end, verts[len(verts)-2].Pos(), true)
		}
	}

	if best == -1 {
		return 0, false, false
	}
	return best, bestReversed, true
}

func reverseVertexRun(verts []polyline.Vertex) []polyline.Vertex {
	n := len(verts)
	out := make([]polyline.Vertex, n)
	for i := 0; i < n; i++ {
		src := verts[n-1-i]
		var bulge float64
		if i < n-1 {
			bulge = -verts[n-2-i].Bulge
		}
		out[i] = polyline.Vertex{X: src.X, Y: src.Y, Bulge: bulge}
	}
	return out
}
