package grid

import "fmt"

// Offset is a non-negative grid distance from a line's P0, measured
// in grid units along the line's own tangent.
type Offset Coord

// Part is a closed-open sub-range [Begin, End) of a line, addressed in
// offset units. Begin must be strictly less than End; a Part is only
// meaningful relative to the Line it was cut from.
type Part struct {
	Begin, End Offset
}

func (p Part) String() string {
	return fmt.Sprintf("[%d, %d)", p.Begin, p.End)
}

// valid reports whether p is a well-formed, non-empty part.
func (p Part) valid() bool {
	return p.Begin < p.End
}

// Equal is a_equal_b: p and o denote the same sub-range.
func (p Part) Equal(o Part) bool {
	return p.Begin == o.Begin && p.End == o.End
}

// Contains is a_inside_b(p, o): p lies entirely inside o.
func (p Part) Contains(o Part) bool {
	return o.Begin <= p.Begin && p.End <= o.End
}

// TouchingOneSide is a_inside_b_touching_one_side(p, o): p is inside o
// and shares exactly one of o's two boundaries.
func (p Part) TouchingOneSide(o Part) bool {
	if !p.Contains(o) {
		return false
	}
	beginShared := p.Begin == o.Begin
	endShared := p.End == o.End
	return beginShared != endShared
}

// NotTouching is a_inside_b_not_touching(p, o): p is strictly interior
// to o, sharing neither boundary.
func (p Part) NotTouching(o Part) bool {
	return p.Contains(o) && p.Begin > o.Begin && p.End < o.End
}

// Overlaps reports whether p and o share a sub-range of positive
// length. Parts that only touch at a shared boundary (p.End ==
// o.Begin or o.End == p.Begin) do not overlap.
func (p Part) Overlaps(o Part) bool {
	return p.Begin < o.End && o.Begin < p.End
}

// DiffCase classifies full against removed for the part-algebra
// dispatch used by move, remove, and valid-part edits (spec.md §4.1,
// design note "three-case geometric dispatch").
type DiffCase int

const (
	// DiffEqual: removed spans the whole of full.
	DiffEqual DiffCase = iota
	// DiffTouchingOneSide: removed is inside full and shares exactly
	// one boundary; a single remainder part survives.
	DiffTouchingOneSide
	// DiffSplitting: removed is strictly interior; two remainder parts
	// survive, one on each side.
	DiffSplitting
)

// Classify returns the DiffCase of removed against full. removed must
// be inside full; violating that is an argument violation (spec.md
// §7(1)) and panics.
func Classify(full, removed Part) DiffCase {
	if !removed.valid() || !removed.Contains(full) {
		panic(fmt.Sprintf("grid: %v is not a part of %v", removed, full))
	}
	switch {
	case removed.Equal(full):
		return DiffEqual
	case removed.TouchingOneSide(full):
		return DiffTouchingOneSide
	default:
		return DiffSplitting
	}
}

// DifferenceTouchingOneSide returns the single remaining part of full
// after removing removed, which must touch full on exactly one side.
// Panics otherwise (argument violation).
func DifferenceTouchingOneSide(full, removed Part) Part {
	if !removed.TouchingOneSide(full) {
		panic(fmt.Sprintf("grid: %v does not touch %v on exactly one side", removed, full))
	}
	if removed.Begin == full.Begin {
		return Part{Begin: removed.End, End: full.End}
	}
	return Part{Begin: full.Begin, End: removed.Begin}
}

// DifferenceNotTouching splits full into the two parts on either side
// of the strictly-interior removed part. Panics if removed does not
// sit strictly inside full (argument violation).
func DifferenceNotTouching(full, removed Part) (left, right Part) {
	if !removed.NotTouching(full) {
		panic(fmt.Sprintf("grid: %v is not strictly interior to %v", removed, full))
	}
	return Part{Begin: full.Begin, End: removed.Begin}, Part{Begin: removed.End, End: full.End}
}

// OverlapsAny is a_overlaps_any_of_b: tests whether p overlaps any
// part in a sorted, pairwise-disjoint set of parts. The set is assumed
// sorted by Begin; this scans it linearly, stopping at the first part
// that begins at or after p.End.
func OverlapsAny(p Part, parts []Part) bool {
	// Find the first part whose End is > p.Begin; if it starts before
	// p.End, they overlap. Linear scan is fine here since valid_parts
	// sets are small per segment; a binary search variant is used in
	// PartSet for the hot path.
	for _, o := range parts {
		if p.Overlaps(o) {
			return true
		}
		if o.Begin >= p.End {
			break
		}
	}
	return false
}
