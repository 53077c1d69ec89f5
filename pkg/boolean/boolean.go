package boolean

import (
	"github.com/pkg/errors"

	"github.com/chazu/cavalier/pkg/aabbindex"
	"github.com/chazu/cavalier/pkg/offset"
	"github.com/chazu/cavalier/pkg/polyline"
	"github.com/chazu/cavalier/pkg/segment"
)

// ErrNotClosed is returned when either input polyline is not closed.
var ErrNotClosed = errors.New("boolean: both polylines must be closed")

func buildIndex(p *polyline.Polyline) *aabbindex.Index {
	segs := p.Segments()
	boxes := make([]aabbindex.Box, len(segs))
	for i, s := range segs {
		b := segment.BoundingBox(s.V1.Pos(), s.V2.Pos(), s.V1.Bulge)
		boxes[i] = aabbindex.Box{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY, Index: i}
	}
	return aabbindex.Build(boxes)
}

// Boolean computes op(pline1, pline2), following the containment shortcut
// when the polylines don't intersect and otherwise slicing both at their
// pairwise intersect points and reassembling per op.
func Boolean(pline1, pline2 *polyline.Polyline, op Op, opts Options) (Result, error) {
	if op < Or || op > Xor {
		return Result{}, ErrUnknownOperator
	}
	if !pline1.Closed || !pline2.Closed {
		return Result{}, ErrNotClosed
	}

	index1 := opts.Pline1Index
	if index1 == nil {
		index1 = buildIndex(pline1)
	}

	cuts1, cuts2, sawOverlap := findPairwiseCuts(pline1, pline2, index1)

	if len(cuts1) == 0 && len(cuts2) == 0 {
		return assembleDisjoint(pline1, pline2, op)
	}

	slices1 := cutAtPoints(pline1, cuts1, opts.PosEqualEps)
	slices2 := cutAtPoints(pline2, cuts2, opts.PosEqualEps)

	inside1, outside1 := classify(slices1, pline2)
	inside2, outside2 := classify(slices2, pline1)

	info := NoIntersect
	if sawOverlap {
		info = Overlapping
	}

	result := Result{Info: info}

	switch op {
	case Or:
		kept := append(append([]offset.Slice(nil), outside1...), outside2...)
		result.Positive = stitchNonEmpty(kept, opts)
	case And:
		kept := append(append([]offset.Slice(nil), inside1...), inside2...)
		result.Positive = stitchNonEmpty(kept, opts)
	case Not:
		kept := append(append([]offset.Slice(nil), outside1...), invertSlices(inside2)...)
		result.Positive = stitchNonEmpty(kept, opts)
	case Xor:
		pos := append(append([]offset.Slice(nil), outside1...), outside2...)
		neg := append(append([]offset.Slice(nil), inside1...), inside2...)
		result.Positive = stitchNonEmpty(pos, opts)
		result.Negative = stitchNonEmpty(neg, opts)
	}

	return result, nil
}

func stitchNonEmpty(slices []offset.Slice, opts Options) []*polyline.Polyline {
	if len(slices) == 0 {
		return nil
	}
	stitched := offset.Stitch(slices, opts.PosEqualEps)
	out := stitched[:0]
	for _, pl := range stitched {
		if pl.Closed {
			area := pl.Area()
			if area < 0 {
				area = -area
			}
			if area < opts.CollapsedAreaEps {
				continue
			}
		}
		out = append(out, pl)
	}
	return out
}

// assembleDisjoint handles the no-intersects case: classify containment by
// testing one vertex of each polyline against the other's winding number,
// then apply the documented operator laws for disjoint/contained inputs.
func assembleDisjoint(pline1, pline2 *polyline.Polyline, op Op) (Result, error) {
	p1InP2 := pline2.WindingNumber(pline1.Vertices[0].Pos()) != 0
	p2InP1 := pline1.WindingNumber(pline2.Vertices[0].Pos()) != 0

	switch {
	case p1InP2:
		return assembleContained(pline1, pline2, op, Pline1InsidePline2), nil
	case p2InP1:
		return assembleContained(pline2, pline1, op, Pline2InsidePline1), nil
	default:
		return assembleDisjointPair(pline1, pline2, op), nil
	}
}

func assembleDisjointPair(pline1, pline2 *polyline.Polyline, op Op) Result {
	switch op {
	case Or:
		return Result{Positive: []*polyline.Polyline{pline1.Clone(), pline2.Clone()}, Info: Disjoint}
	case And:
		return Result{Info: Disjoint}
	case Not:
		return Result{Positive: []*polyline.Polyline{pline1.Clone()}, Info: Disjoint}
	case Xor:
		return Result{Positive: []*polyline.Polyline{pline1.Clone(), pline2.Clone()}, Info: Disjoint}
	}
	return Result{}
}

// assembleContained handles the case where inner lies entirely within
// outer, with info identifying which polyline is the inner one.
func assembleContained(inner, outer *polyline.Polyline, op Op, info Info) Result {
	innerIsPline1 := info == Pline1InsidePline2
	switch op {
	case Or:
		return Result{Positive: []*polyline.Polyline{outer.Clone()}, Info: info}
	case And:
		return Result{Positive: []*polyline.Polyline{inner.Clone()}, Info: info}
	case Not:
		if innerIsPline1 {
			// pline1 (inner) minus pline2 (outer) that contains it: empty.
			return Result{Info: info}
		}
		// pline1 (outer) minus pline2 (inner): outer with inner as a hole.
		holed := inner.Clone()
		holed.InvertDirection()
		return Result{Positive: []*polyline.Polyline{outer.Clone()}, Negative: []*polyline.Polyline{holed}, Info: info}
	case Xor:
		if innerIsPline1 {
			holed := inner.Clone()
			holed.InvertDirection()
			return Result{Positive: []*polyline.Polyline{outer.Clone()}, Negative: []*polyline.Polyline{holed}, Info: info}
		}
		holed := inner.Clone()
		holed.InvertDirection()
		return Result{Positive: []*polyline.Polyline{outer.Clone()}, Negative: []*polyline.Polyline{holed}, Info: info}
	}
	return Result{}
}
