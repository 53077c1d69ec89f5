package aabbindex

import "testing"

func boxesGrid() []Box {
	// a 4x4 grid of unit boxes at (0,0), (2,0), (4,0), ... spaced apart so
	// queries can target a known subset
	var boxes []Box
	idx := 0
	for gy := 0; gy < 4; gy++ {
		for gx := 0; gx < 4; gx++ {
			x := float64(gx * 2)
			y := float64(gy * 2)
			boxes = append(boxes, Box{MinX: x, MinY: y, MaxX: x + 1, MaxY: y + 1, Index: idx})
			idx++
		}
	}
	return boxes
}

func TestBuildEmpty(t *testing.T) {
	idx := Build(nil)
	if idx.Len() != 0 {
		t.Errorf("Len() = %d, want 0", idx.Len())
	}
	idx.Query(Box{MinX: -100, MinY: -100, MaxX: 100, MaxY: 100}, func(b Box) bool {
		t.Error("expected no visits on an empty index")
		return true
	})
}

func TestBuildSingle(t *testing.T) {
	idx := Build([]Box{{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1, Index: 7}})
	if idx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", idx.Len())
	}
	hits := idx.QueryAll(Box{MinX: 0.5, MinY: 0.5, MaxX: 0.5, MaxY: 0.5})
	if len(hits) != 1 || hits[0].Index != 7 {
		t.Errorf("QueryAll() = %+v, want one hit with Index 7", hits)
	}
}

func TestQueryFindsOnlyOverlapping(t *testing.T) {
	idx := Build(boxesGrid())

	hits := idx.QueryAll(Box{MinX: -0.5, MinY: -0.5, MaxX: 1.5, MaxY: 1.5})
	if len(hits) != 1 || hits[0].Index != 0 {
		t.Errorf("QueryAll() = %+v, want just box 0", hits)
	}
}

func TestQueryCoveringEverything(t *testing.T) {
	idx := Build(boxesGrid())
	hits := idx.QueryAll(idx.Extents())
	if len(hits) != 16 {
		t.Errorf("QueryAll(Extents()) returned %d hits, want 16", len(hits))
	}
}

func TestQueryNoOverlap(t *testing.T) {
	idx := Build(boxesGrid())
	hits := idx.QueryAll(Box{MinX: 100, MinY: 100, MaxX: 101, MaxY: 101})
	if len(hits) != 0 {
		t.Errorf("QueryAll() = %+v, want no hits", hits)
	}
}

func TestQueryEarlyStop(t *testing.T) {
	idx := Build(boxesGrid())
	count := 0
	idx.Query(idx.Extents(), func(b Box) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("expected query to stop after the first visit, got %d visits", count)
	}
}

func TestNearest(t *testing.T) {
	idx := Build(boxesGrid())
	box, ok := idx.Nearest(5.9, 5.9)
	if !ok {
		t.Fatal("Nearest() returned ok=false on a non-empty index")
	}
	// (6,6)-(7,7) is the grid box closest to (5.9, 5.9)
	want := Box{MinX: 6, MinY: 6, MaxX: 7, MaxY: 7}
	if box.MinX != want.MinX || box.MinY != want.MinY {
		t.Errorf("Nearest() = %+v, want box at (6,6)", box)
	}
}

func TestNearestEmptyIndex(t *testing.T) {
	idx := Build(nil)
	_, ok := idx.Nearest(0, 0)
	if ok {
		t.Error("Nearest() on empty index should return ok=false")
	}
}

func TestExtentsCoversAllBoxes(t *testing.T) {
	idx := Build(boxesGrid())
	ext := idx.Extents()
	if ext.MinX != 0 || ext.MinY != 0 || ext.MaxX != 7 || ext.MaxY != 7 {
		t.Errorf("Extents() = %+v, want (0,0)-(7,7)", ext)
	}
}

func TestApproxQueryFindsOverlapping(t *testing.T) {
	approx := BuildApprox(boxesGrid())
	hits := approx.QueryAll(Box{MinX: -0.5, MinY: -0.5, MaxX: 1.5, MaxY: 1.5})
	found := false
	for _, b := range hits {
		if b.Index == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("QueryAll() = %+v, expected to find box 0", hits)
	}
}

func TestApproxQueryNoOverlap(t *testing.T) {
	approx := BuildApprox(boxesGrid())
	hits := approx.QueryAll(Box{MinX: 100, MinY: 100, MaxX: 101, MaxY: 101})
	if len(hits) != 0 {
		t.Errorf("QueryAll() = %+v, want no hits", hits)
	}
}
