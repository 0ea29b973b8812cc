package grid

import "fmt"

// PointType tags one endpoint of a segment (spec.md §3
// SegmentPointType). Input, Output, Corner, and Cross are the
// "connecting" types that show up in collision queries; Shadow is a
// non-connecting internal marker; Unknown is transitory and must never
// survive to a final state (P2).
type PointType int

const (
	Unknown PointType = iota
	Input
	Output
	Corner
	Cross
	Shadow
)

var pointTypeNames = [...]string{
	Unknown: "Unknown",
	Input:   "Input",
	Output:  "Output",
	Corner:  "Corner",
	Cross:   "Cross",
	Shadow:  "Shadow",
}

func (t PointType) String() string {
	if int(t) >= 0 && int(t) < len(pointTypeNames) {
		return pointTypeNames[t]
	}
	return fmt.Sprintf("PointType(%d)", int(t))
}

// Connecting reports whether t is one of the four types visible to
// collision queries (Input, Output, Corner, Cross).
func (t PointType) Connecting() bool {
	switch t {
	case Input, Output, Corner, Cross:
		return true
	default:
		return false
	}
}

// Endpoints holds the pair of endpoint-type tags for a segment's P0
// and P1.
type Endpoints struct {
	P0Type, P1Type PointType
}

// TypeAt returns the tag for whichever of l's endpoints P0/P1 equals
// p. Panics if p is neither endpoint.
func (e Endpoints) TypeAt(l Line, p Point) PointType {
	switch {
	case p.Equal(l.P0):
		return e.P0Type
	case p.Equal(l.P1):
		return e.P1Type
	default:
		panic(fmt.Sprintf("grid: %v is not an endpoint of %v", p, l))
	}
}

// TypeAtIfEndpoint is TypeAt but returns Unknown instead of panicking
// when p is not one of l's two endpoints (e.g. an interior crossing
// point queried speculatively by a collision index).
func (e Endpoints) TypeAtIfEndpoint(l Line, p Point) PointType {
	switch {
	case p.Equal(l.P0):
		return e.P0Type
	case p.Equal(l.P1):
		return e.P1Type
	default:
		return Unknown
	}
}

// WithTypeAt returns a copy of e with the tag at p replaced by t.
func (e Endpoints) WithTypeAt(l Line, p Point, t PointType) Endpoints {
	switch {
	case p.Equal(l.P0):
		e.P0Type = t
	case p.Equal(l.P1):
		e.P1Type = t
	default:
		panic(fmt.Sprintf("grid: %v is not an endpoint of %v", p, l))
	}
	return e
}
