package polyline

import (
	"math"
	"testing"

	"github.com/chazu/cavalier/pkg/geom2"
)

func unitSquare() *Polyline {
	p := NewClosed()
	p.Add(0, 0, 0)
	p.Add(1, 0, 0)
	p.Add(1, 1, 0)
	p.Add(0, 1, 0)
	return p
}

func unitCircle() *Polyline {
	p := NewClosed()
	p.Add(1, 0, 1)
	p.Add(-1, 0, 1)
	return p
}

func TestSegmentCount(t *testing.T) {
	square := unitSquare()
	if got := square.SegmentCount(); got != 4 {
		t.Errorf("SegmentCount() = %d, want 4", got)
	}

	open := New()
	open.Add(0, 0, 0)
	open.Add(1, 0, 0)
	open.Add(2, 0, 0)
	if got := open.SegmentCount(); got != 2 {
		t.Errorf("SegmentCount() (open) = %d, want 2", got)
	}
}

func TestAreaUnitSquareIsOne(t *testing.T) {
	square := unitSquare()
	if got := square.Area(); !geom2.FuzzyEqualEps(got, 1, 1e-9) {
		t.Errorf("Area() = %v, want 1", got)
	}
}

func TestAreaUnitCircleIsPi(t *testing.T) {
	circle := unitCircle()
	if got := circle.Area(); !geom2.FuzzyEqualEps(got, math.Pi, 1e-6) {
		t.Errorf("Area() = %v, want pi", got)
	}
}

func TestOrientationCWNegatesArea(t *testing.T) {
	square := unitSquare()
	if square.Orientation() != OrientationCCW {
		t.Fatalf("expected CCW orientation for square built counter-clockwise")
	}
	square.InvertDirection()
	if square.Orientation() != OrientationCW {
		t.Errorf("expected CW orientation after InvertDirection")
	}
	if !geom2.FuzzyEqualEps(square.Area(), -1, 1e-9) {
		t.Errorf("Area() after invert = %v, want -1", square.Area())
	}
}

func TestOrientationOpenPolyline(t *testing.T) {
	open := New()
	open.Add(0, 0, 0)
	open.Add(1, 0, 0)
	if open.Orientation() != OrientationOpen {
		t.Errorf("Orientation() = %v, want OrientationOpen", open.Orientation())
	}
}

func TestExtentsUnitSquare(t *testing.T) {
	square := unitSquare()
	box, err := square.Extents()
	if err != nil {
		t.Fatalf("Extents() error: %v", err)
	}
	want := Box{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	if box != want {
		t.Errorf("Extents() = %+v, want %+v", box, want)
	}
}

func TestExtentsTooFewVertices(t *testing.T) {
	p := New()
	p.Add(0, 0, 0)
	_, err := p.Extents()
	if err != ErrTooFewVertices {
		t.Errorf("Extents() error = %v, want ErrTooFewVertices", err)
	}
}

func TestWindingNumberInsideSquare(t *testing.T) {
	square := unitSquare()
	if got := square.WindingNumber(geom2.Vec2{X: 0.5, Y: 0.5}); got != 1 {
		t.Errorf("WindingNumber(inside) = %d, want 1", got)
	}
	if got := square.WindingNumber(geom2.Vec2{X: 5, Y: 5}); got != 0 {
		t.Errorf("WindingNumber(outside) = %d, want 0", got)
	}
}

func TestWindingNumberInsideCircle(t *testing.T) {
	circle := unitCircle()
	if got := circle.WindingNumber(geom2.Vec2{X: 0, Y: 0}); got != 1 {
		t.Errorf("WindingNumber(center) = %d, want 1", got)
	}
	if got := circle.WindingNumber(geom2.Vec2{X: 5, Y: 5}); got != 0 {
		t.Errorf("WindingNumber(outside) = %d, want 0", got)
	}
}

func TestWindingNumberOpenPolylineIsZero(t *testing.T) {
	open := New()
	open.Add(0, 0, 0)
	open.Add(1, 0, 0)
	open.Add(1, 1, 0)
	if got := open.WindingNumber(geom2.Vec2{X: 0.5, Y: 0.1}); got != 0 {
		t.Errorf("WindingNumber() on open polyline = %d, want 0", got)
	}
}

func TestInvertDirectionRoundTrip(t *testing.T) {
	circle := unitCircle()
	orig := append([]Vertex(nil), circle.Vertices...)
	circle.InvertDirection()
	circle.InvertDirection()
	if len(circle.Vertices) != len(orig) {
		t.Fatalf("vertex count changed across double invert")
	}
	for i, v := range circle.Vertices {
		if !v.FuzzyEqual(orig[i]) {
			t.Errorf("vertex %d = %+v, want %+v after double invert", i, v, orig[i])
		}
	}
}

func TestPathLengthUnitSquare(t *testing.T) {
	square := unitSquare()
	if got := square.PathLength(); !geom2.FuzzyEqualEps(got, 4, 1e-9) {
		t.Errorf("PathLength() = %v, want 4", got)
	}
}

func TestScaleAndTranslate(t *testing.T) {
	square := unitSquare()
	square.Scale(2)
	square.Translate(1, 1)
	want := []Vertex{{1, 1, 0}, {3, 1, 0}, {3, 3, 0}, {1, 3, 0}}
	for i, v := range square.Vertices {
		if !v.FuzzyEqual(want[i]) {
			t.Errorf("vertex %d = %+v, want %+v", i, v, want[i])
		}
	}
}

func TestRemoveRepeatPosDropsDuplicates(t *testing.T) {
	p := New()
	p.Add(0, 0, 0)
	p.Add(0, 0, 0)
	p.Add(1, 0, 0)

	out, ok := p.RemoveRepeatPos(1e-9)
	if !ok {
		t.Fatal("expected RemoveRepeatPos to report a change")
	}
	if out.VertexCount() != 2 {
		t.Errorf("VertexCount() = %d, want 2", out.VertexCount())
	}
}

func TestRemoveRepeatPosNoChange(t *testing.T) {
	square := unitSquare()
	_, ok := square.RemoveRepeatPos(1e-9)
	if ok {
		t.Error("expected no change on a polyline with no repeated vertices")
	}
}

func TestRemoveRedundantCollapsesCollinearRun(t *testing.T) {
	p := New()
	p.Add(0, 0, 0)
	p.Add(1, 0, 0)
	p.Add(2, 0, 0)
	p.Add(2, 1, 0)

	out, ok := p.RemoveRedundant(1e-9)
	if !ok {
		t.Fatal("expected RemoveRedundant to report a change")
	}
	if out.VertexCount() != 3 {
		t.Errorf("VertexCount() = %d, want 3 (midpoint on the collinear run removed)", out.VertexCount())
	}
}

func TestRemoveRedundantCollapsesConcentricArcs(t *testing.T) {
	// two quarter-circle arcs on the same circle, same direction, merge into
	// a single half-circle arc
	bulge := math.Tan(math.Pi / 8)
	p := New()
	p.Add(1, 0, bulge)
	p.Add(0, 1, bulge)
	p.Add(-1, 0, 0)

	out, ok := p.RemoveRedundant(1e-9)
	if !ok {
		t.Fatal("expected RemoveRedundant to report a change")
	}
	if out.VertexCount() != 2 {
		t.Fatalf("VertexCount() = %d, want 2", out.VertexCount())
	}
	if !geom2.FuzzyEqualEps(out.Vertices[0].Bulge, 1, 1e-6) {
		t.Errorf("merged bulge = %v, want 1 (half circle)", out.Vertices[0].Bulge)
	}
}

func TestRemoveRedundantNoChange(t *testing.T) {
	square := unitSquare()
	_, ok := square.RemoveRedundant(1e-9)
	if ok {
		t.Error("expected no change on a polyline with no redundant vertices")
	}
}

func TestViewMaterializeSubRange(t *testing.T) {
	square := unitSquare()
	view := NewView(square, 1, 2)
	materialized := view.Materialize()

	if materialized.VertexCount() != 2 {
		t.Fatalf("VertexCount() = %d, want 2", materialized.VertexCount())
	}
	if !materialized.Vertices[0].FuzzyEqual(square.Vertices[1]) || !materialized.Vertices[1].FuzzyEqual(square.Vertices[2]) {
		t.Errorf("Materialize() = %+v, want vertices 1 and 2 of the source", materialized.Vertices)
	}
}

func TestViewStartEndPointOverride(t *testing.T) {
	square := unitSquare()
	override := Vertex{X: 0.5, Y: 0, Bulge: 0}
	view := &View{Source: square, StartIndex: 0, EndIndex: 1, StartPoint: &override}

	if got := view.At(0); !got.FuzzyEqual(override) {
		t.Errorf("At(0) = %+v, want override %+v", got, override)
	}
	if got := view.At(1); !got.FuzzyEqual(square.Vertices[1]) {
		t.Errorf("At(1) = %+v, want source vertex 1", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	square := unitSquare()
	clone := square.Clone()
	clone.Vertices[0].X = 99

	if square.Vertices[0].X == 99 {
		t.Error("mutating a clone's vertices should not affect the original")
	}
}
