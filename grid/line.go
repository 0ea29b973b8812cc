package grid

import "fmt"

// Line is a closed orthogonal segment between two distinct grid
// points, normalized so that P0 <= P1 lexicographically and exactly
// one of X or Y differs between the endpoints (strictly orthogonal,
// non-degenerate). Construct with NewLine rather than a literal so the
// invariant is enforced at the boundary.
type Line struct {
	P0, P1 Point
}

// NewLine builds the ordered_line_t for the two endpoints, panicking
// if they are not axis-aligned and distinct. This "cannot happen"
// check belongs to the argument-violation tier of spec.md §7(1): the
// caller is expected to never construct a diagonal or zero-length
// line.
func NewLine(a, b Point) Line {
	horizontal := a.Y == b.Y
	vertical := a.X == b.X
	if horizontal == vertical {
		panic(fmt.Sprintf("grid: NewLine(%v, %v) is not a single non-degenerate orthogonal span", a, b))
	}
	if b.Less(a) {
		a, b = b, a
	}
	return Line{P0: a, P1: b}
}

// Orientation reports whether l runs Horizontal or Vertical.
func (l Line) Orientation() Orientation {
	if l.P0.Y == l.P1.Y {
		return Horizontal
	}
	return Vertical
}

// Length returns the line's extent in grid units, always positive.
func (l Line) Length() Coord {
	if l.Orientation() == Horizontal {
		return l.P1.X - l.P0.X
	}
	return l.P1.Y - l.P0.Y
}

// PointAt returns the grid point at offset units from P0 along l.
// Panics if off is outside [0, Length()]: callers are expected to
// clamp parts to the line's own range before calling this (an
// argument-violation if they don't).
func (l Line) PointAt(off Offset) Point {
	if off < 0 || Coord(off) > l.Length() {
		panic(fmt.Sprintf("grid: PointAt(%d) out of range for line of length %d", off, l.Length()))
	}
	if l.Orientation() == Horizontal {
		return Point{X: l.P0.X + Coord(off), Y: l.P0.Y}
	}
	return Point{X: l.P0.X, Y: l.P0.Y + Coord(off)}
}

// OffsetOf is the inverse of PointAt: the offset of p along l's
// tangent, measured from P0. It does not verify that p actually lies
// on l; callers that need that check should use Contains first.
func (l Line) OffsetOf(p Point) Offset {
	if l.Orientation() == Horizontal {
		return Offset(p.X - l.P0.X)
	}
	return Offset(p.Y - l.P0.Y)
}

// Contains reports whether p lies on the closed span of l.
func (l Line) Contains(p Point) bool {
	if l.Orientation() == Horizontal {
		return p.Y == l.P0.Y && p.X >= l.P0.X && p.X <= l.P1.X
	}
	return p.X == l.P0.X && p.Y >= l.P0.Y && p.Y <= l.P1.Y
}

// FullPart returns the part spanning the whole line, [0, Length()).
// Length() itself is an inclusive endpoint (part_t is closed-open over
// offsets, but the line's own far endpoint is still representable as
// the part boundary End == Length()).
func (l Line) FullPart() Part {
	return Part{Begin: 0, End: Offset(l.Length())}
}

// Sub returns the sub-line of l denoted by part. Panics if part is not
// inside l's full part.
func (l Line) Sub(part Part) Line {
	full := l.FullPart()
	if !part.Contains(full) {
		panic(fmt.Sprintf("grid: part %v is not inside line %v", part, l))
	}
	return Line{P0: l.PointAt(part.Begin), P1: l.PointAt(part.End)}
}

// Overlaps reports whether l and o are collinear (same infinite line)
// and their closed spans intersect in more than a single point.
func (l Line) Overlaps(o Line) bool {
	if !l.collinearWith(o) {
		return false
	}
	aBegin, aEnd := l.collinearOffsets(l)
	bBegin, bEnd := l.collinearOffsets(o)
	return aBegin < bEnd && bBegin < aEnd
}

// Touches reports whether l and o are collinear and share exactly one
// endpoint, with no interior overlap.
func (l Line) Touches(o Line) bool {
	if !l.collinearWith(o) {
		return false
	}
	aBegin, aEnd := l.collinearOffsets(l)
	bBegin, bEnd := l.collinearOffsets(o)
	return aEnd == bBegin || bEnd == aBegin
}

// collinearWith reports whether l and o lie on the same infinite
// orthogonal line (same orientation and same fixed coordinate).
func (l Line) collinearWith(o Line) bool {
	if l.Orientation() != o.Orientation() {
		return false
	}
	if l.Orientation() == Horizontal {
		return l.P0.Y == o.P0.Y
	}
	return l.P0.X == o.P0.X
}

// collinearOffsets projects o onto l's own coordinate axis, returning
// offsets comparable to l.FullPart(). l and o must be collinear.
func (l Line) collinearOffsets(o Line) (begin, end Offset) {
	if l.Orientation() == Horizontal {
		return Offset(o.P0.X - l.P0.X), Offset(o.P1.X - l.P0.X)
	}
	return Offset(o.P0.Y - l.P0.Y), Offset(o.P1.Y - l.P0.Y)
}

// DirectionFrom reports the cardinal direction l departs p in, given
// p is one of l's two endpoints (used by fix_and_merge_segments' tie
// break, spec.md §4.5). Panics if p is not an endpoint of l.
func (l Line) DirectionFrom(p Point) Orientation {
	switch {
	case p.Equal(l.P0):
		if l.Orientation() == Horizontal {
			return East
		}
		return South
	case p.Equal(l.P1):
		if l.Orientation() == Horizontal {
			return West
		}
		return North
	default:
		panic(fmt.Sprintf("grid: %v is not an endpoint of %v", p, l))
	}
}

func (l Line) String() string {
	return fmt.Sprintf("%v-%v", l.P0, l.P1)
}
