// Package grid defines the vocabulary types of the wire-grid editor:
// integer grid coordinates, orthogonal lines, sub-range parts, and the
// endpoint-type tags attached to segments.
package grid

import "fmt"

// Coord is a signed grid coordinate. The editor only ever places
// segments at integer coordinates; Non-goal: non-integer geometry.
type Coord int32

// Bound is the largest representable magnitude of a Coord in either
// direction. Arithmetic that would leave this range fails soft (see
// Point.Translate) rather than wrapping.
const Bound Coord = 1 << 15

// Point is a location on the grid.
type Point struct {
	X, Y Coord
}

// Less implements the lexicographic order used to normalize lines
// (x first, then y).
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// Equal reports whether p and o denote the same grid point.
func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Translate moves p by (dx, dy). ok is false if the result would
// overflow Bound; p is returned unchanged in that case. This is the
// "representability failure" of spec.md §7(3): callers are expected to
// downgrade the operation (e.g. delete instead of move) rather than
// treat it as fatal.
func (p Point) Translate(dx, dy Coord) (result Point, ok bool) {
	x, y := int64(p.X)+int64(dx), int64(p.Y)+int64(dy)
	if x > int64(Bound) || x < -int64(Bound) || y > int64(Bound) || y < -int64(Bound) {
		return p, false
	}
	return Point{X: Coord(x), Y: Coord(y)}, true
}
