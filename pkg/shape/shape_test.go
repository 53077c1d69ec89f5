package shape

import (
	"math"
	"testing"

	"github.com/chazu/cavalier/pkg/geom2"
	"github.com/chazu/cavalier/pkg/polyline"
)

func squareCCW(minX, minY, maxX, maxY float64) *polyline.Polyline {
	p := polyline.NewClosed()
	p.Add(minX, minY, 0)
	p.Add(maxX, minY, 0)
	p.Add(maxX, maxY, 0)
	p.Add(minX, maxY, 0)
	return p
}

func squareCW(minX, minY, maxX, maxY float64) *polyline.Polyline {
	p := squareCCW(minX, minY, maxX, maxY)
	p.InvertDirection()
	return p
}

func TestNewClassifiesByOrientation(t *testing.T) {
	outer := squareCCW(0, 0, 10, 10)
	island := squareCW(2, 2, 3, 3)

	s := New([]*polyline.Polyline{outer, island})
	if len(s.CCWPlines) != 1 {
		t.Errorf("len(CCWPlines) = %d, want 1", len(s.CCWPlines))
	}
	if len(s.CWPlines) != 1 {
		t.Errorf("len(CWPlines) = %d, want 1", len(s.CWPlines))
	}
}

func TestParallelOffsetSingleBoundaryShrinksInward(t *testing.T) {
	outer := squareCCW(0, 0, 10, 10)
	s := New([]*polyline.Polyline{outer})

	result := s.ParallelOffset(1, DefaultOptions())
	if len(result.CCWPlines) != 1 {
		t.Fatalf("len(CCWPlines) = %d, want 1", len(result.CCWPlines))
	}
	if got := math.Abs(result.CCWPlines[0].Area()); !geom2.FuzzyEqualEps(got, 64, 1e-6) {
		t.Errorf("Area() = %v, want 64 (8x8 square)", got)
	}
}

func TestParallelOffsetBoundaryWithIslandPrunesOverlap(t *testing.T) {
	outer := squareCCW(0, 0, 10, 10)
	island := squareCW(3, 3, 7, 7)
	s := New([]*polyline.Polyline{outer, island})

	result := s.ParallelOffset(0.5, DefaultOptions())
	if len(result.CCWPlines) != 1 {
		t.Errorf("len(CCWPlines) = %d, want 1 (outer boundary, shrunk)", len(result.CCWPlines))
	}
	if len(result.CWPlines) != 1 {
		t.Errorf("len(CWPlines) = %d, want 1 (island, grown)", len(result.CWPlines))
	}
}

func TestParallelOffsetCollapsingBoundaryYieldsEmptyShape(t *testing.T) {
	outer := squareCCW(0, 0, 1, 1)
	s := New([]*polyline.Polyline{outer})

	result := s.ParallelOffset(1, DefaultOptions())
	if len(result.CCWPlines) != 0 || len(result.CWPlines) != 0 {
		t.Errorf("expected an empty shape when the offset collapses the boundary entirely, got %d CCW, %d CW", len(result.CCWPlines), len(result.CWPlines))
	}
}
