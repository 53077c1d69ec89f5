package boolean

import (
	"github.com/pkg/errors"

	"github.com/chazu/cavalier/pkg/polyline"
)

// Op identifies a boolean set operator.
type Op int

const (
	// Or is the union: pline1 ∪ pline2.
	Or Op = iota
	// And is the intersection: pline1 ∩ pline2.
	And
	// Not is the difference: pline1 − pline2.
	Not
	// Xor is the symmetric difference: pline1 △ pline2.
	Xor
)

// ErrUnknownOperator is returned when Op does not name one of Or/And/Not/Xor.
var ErrUnknownOperator = errors.New("boolean: unknown operator")

// Info describes the overall disposition of a boolean call.
type Info int

const (
	// NoIntersect is reported when the polylines' boundaries do intersect
	// and no coincident overlapping slice influenced the result (compare
	// Overlapping); inputs that do not intersect get Disjoint or one of the
	// containment values instead.
	NoIntersect Info = iota
	// Pline1InsidePline2 means pline1 lies entirely within pline2 with no
	// boundary intersects.
	Pline1InsidePline2
	// Pline2InsidePline1 means pline2 lies entirely within pline1 with no
	// boundary intersects.
	Pline2InsidePline1
	// Disjoint means the two polylines do not intersect and neither contains
	// the other; both polylines are fully outside each other.
	Disjoint
	// Overlapping means the polylines intersect and at least one coincident
	// overlapping slice influenced the result.
	Overlapping
)

// Result is the output of Boolean: the positive result polylines, the
// negative (hole) result polylines, and a classification of the overall
// disposition.
type Result struct {
	Positive []*polyline.Polyline
	Negative []*polyline.Polyline
	Info     Info
}
