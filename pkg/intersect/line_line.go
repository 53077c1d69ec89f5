// Package intersect implements the low-level line/circle intersection
// kernel: line-line, line-circle and circle-circle solvers, composed by
// segment-segment dispatch used throughout self-intersect detection and
// parallel offsetting.
package intersect

import (
	"math"

	"github.com/chazu/cavalier/pkg/geom2"
)

// LineLineKind identifies the shape of a line-line intersection result.
type LineLineKind int

const (
	// LineLineNone means no intersect was found: the segments are parallel
	// and not collinear, collinear without overlap, or degenerate without a
	// common point.
	LineLineNone LineLineKind = iota
	// LineLineTrue means a true intersect exists within both segments.
	LineLineTrue
	// LineLineOverlapping means the segments are collinear and overlap.
	LineLineOverlapping
	// LineLineFalse means the (infinite) lines intersect but the point
	// falls outside one or both segments.
	LineLineFalse
)

// LineLineResult is the result of intersecting two line segments.
type LineLineResult struct {
	Kind LineLineKind
	// Seg1T, Seg2T are the parametric intersect values for True/False kinds.
	Seg1T, Seg2T float64
	// Seg2T0, Seg2T1 bound the overlap region (in seg2 parametric space) for
	// the Overlapping kind.
	Seg2T0, Seg2T1 float64
}

// LineLine finds the intersect between line segments v1->v2 and u1->u2,
// handling the parallel, collinear and degenerate (zero-length) cases.
func LineLine(v1, v2, u1, u2 geom2.Vec2) LineLineResult {
	v := v2.Sub(v1)
	u := u2.Sub(u1)
	vPdotU := v.PerpDot(u)
	w := v1.Sub(u1)

	if !geom2.FuzzyZero(vPdotU) {
		seg1T := u.PerpDot(w) / vPdotU
		seg2T := v.PerpDot(w) / vPdotU
		if !geom2.FuzzyInRangeEps(seg1T, 0, 1, geom2.DefaultPosEqualEps) ||
			!geom2.FuzzyInRangeEps(seg2T, 0, 1, geom2.DefaultPosEqualEps) {
			return LineLineResult{Kind: LineLineFalse, Seg1T: seg1T, Seg2T: seg2T}
		}
		return LineLineResult{Kind: LineLineTrue, Seg1T: seg1T, Seg2T: seg2T}
	}

	vPdotW := v.PerpDot(w)
	uPdotW := u.PerpDot(w)

	if !geom2.FuzzyZero(vPdotW) || !geom2.FuzzyZero(uPdotW) {
		return LineLineResult{Kind: LineLineNone}
	}

	vIsPoint := v1.FuzzyEqual(v2)
	uIsPoint := u1.FuzzyEqual(u2)

	if vIsPoint && uIsPoint {
		if v1.FuzzyEqual(u1) {
			return LineLineResult{Kind: LineLineTrue, Seg1T: 0, Seg2T: 0}
		}
		return LineLineResult{Kind: LineLineNone}
	}

	if vIsPoint {
		seg2T := geom2.ParametricFromPoint(u1, u2, v1, geom2.DefaultPosEqualEps)
		if geom2.FuzzyInRangeEps(seg2T, 0, 1, geom2.DefaultPosEqualEps) {
			return LineLineResult{Kind: LineLineTrue, Seg1T: 0, Seg2T: seg2T}
		}
		return LineLineResult{Kind: LineLineNone}
	}

	if uIsPoint {
		seg1T := geom2.ParametricFromPoint(v1, v2, u1, geom2.DefaultPosEqualEps)
		if geom2.FuzzyInRangeEps(seg1T, 0, 1, geom2.DefaultPosEqualEps) {
			return LineLineResult{Kind: LineLineTrue, Seg1T: seg1T, Seg2T: 0}
		}
		return LineLineResult{Kind: LineLineNone}
	}

	w2 := v2.Sub(u1)
	var seg2T0, seg2T1 float64
	if geom2.FuzzyZero(u.X) {
		seg2T0, seg2T1 = w.Y/u.Y, w2.Y/u.Y
	} else {
		seg2T0, seg2T1 = w.X/u.X, w2.X/u.X
	}
	if seg2T0 > seg2T1 {
		seg2T0, seg2T1 = seg2T1, seg2T0
	}

	if !geom2.FuzzyLessEps(seg2T0, 1, geom2.DefaultPosEqualEps) ||
		!geom2.FuzzyGreaterEps(seg2T1, 0, geom2.DefaultPosEqualEps) {
		return LineLineResult{Kind: LineLineNone}
	}

	seg2T0 = math.Max(seg2T0, 0)
	seg2T1 = math.Min(seg2T1, 1)

	if geom2.FuzzyZero(seg2T1 - seg2T0) {
		seg1T := 1.0
		if v1.FuzzyEqual(u1) || v1.FuzzyEqual(u2) {
			seg1T = 0.0
		}
		return LineLineResult{Kind: LineLineTrue, Seg1T: seg1T, Seg2T: seg2T0}
	}

	return LineLineResult{Kind: LineLineOverlapping, Seg2T0: seg2T0, Seg2T1: seg2T1}
}
