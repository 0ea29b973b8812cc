package editing

import (
	"fmt"
	"sort"

	"github.com/sarchlab/wiregrid/circuit/message"
	"github.com/sarchlab/wiregrid/circuit/undo"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/segment"
	"github.com/sarchlab/wiregrid/wire"
)

// FixAndMergeSegments is fix_and_merge_segments (spec.md §4.5), called
// after any edit that may have left p with stale local topology: a
// dangling free end, a straight-through line that now passes through
// p instead of ending there, two collinear pieces that should be one
// segment, or a corner/cross that needs its endpoint tags set.
func (c *Context) FixAndMergeSegments(p grid.Point) {
	segs := c.Spatial.QueryPoint(p)
	switch len(segs) {
	case 0:
		return
	case 1:
		c.fixOne(p, segs[0])
	case 2:
		c.fixTwo(p, segs[0], segs[1])
	case 3, 4:
		c.fixManyAt(p, segs)
	default:
		panic(fmt.Sprintf("editing: %d segments through %v, at most 4 are possible", len(segs), p))
	}
}

// throughIndexOf returns the index into segs of the one segment p is
// strictly interior to (not an endpoint of), or -1 if every segment in
// segs meets p at an endpoint.
func (c *Context) throughIndexOf(p grid.Point, segs []wire.Segment) int {
	for i, s := range segs {
		line := c.info(s).Line
		if line.P0.Equal(p) || line.P1.Equal(p) {
			continue
		}
		return i
	}
	return -1
}

func (c *Context) fixOne(p grid.Point, seg wire.Segment) {
	info := c.info(seg)
	if !info.Line.P0.Equal(p) && !info.Line.P1.Equal(p) {
		// A lone through-segment at p has nothing to fix: p is not one
		// of its own endpoints, so there is no free end to classify.
		return
	}
	cur := info.Endpoints.TypeAt(info.Line, p)
	if cur.Connecting() {
		return
	}
	newType := grid.Output
	if _, ok := c.Inputs.Find(p); ok {
		newType = grid.Input
	}
	c.setEndpointType(seg, p, newType)
}

func (c *Context) fixTwo(p grid.Point, a, b wire.Segment) {
	segs := []wire.Segment{a, b}
	if i := c.throughIndexOf(p, segs); i >= 0 {
		c.SplitSegmentAt(segs[i], p)
		c.FixAndMergeSegments(p)
		return
	}

	lineA, lineB := c.info(a).Line, c.info(b).Line
	if lineA.Orientation() == lineB.Orientation() {
		keep, remove := c.orderByDirection(p, a, b)
		c.MergeSegments(keep, remove)
		c.FixAndMergeSegments(p)
		return
	}

	// Perpendicular: a corner. The first in tie-break order becomes the
	// corner point; the other's endpoint at p becomes a shadow.
	first, second := c.orderByDirection(p, a, b)
	c.setEndpointType(first, p, grid.Corner)
	c.setEndpointType(second, p, grid.Shadow)
}

func (c *Context) fixManyAt(p grid.Point, segs []wire.Segment) {
	if i := c.throughIndexOf(p, segs); i >= 0 {
		c.SplitSegmentAt(segs[i], p)
		c.FixAndMergeSegments(p)
		return
	}

	ordered := c.orderAllByDirection(p, segs)
	c.setEndpointType(ordered[0], p, grid.Cross)
	for _, s := range ordered[1:] {
		c.setEndpointType(s, p, grid.Shadow)
	}
}

// orderByDirection returns a, b (or b, a) so the first element departs
// p in the direction that sorts earliest in grid.FixAndMergeOrder.
func (c *Context) orderByDirection(p grid.Point, a, b wire.Segment) (first, second wire.Segment) {
	ordered := c.orderAllByDirection(p, []wire.Segment{a, b})
	return ordered[0], ordered[1]
}

// OrderAllByDirection is orderAllByDirection exported for circuit's
// public-operation layer (regularize_temporary_selection needs the
// same tie-break order when grouping a junction's segments).
func (c *Context) OrderAllByDirection(p grid.Point, segs []wire.Segment) []wire.Segment {
	return c.orderAllByDirection(p, segs)
}

// orderAllByDirection sorts segs by the cardinal direction each
// departs p in, per grid.FixAndMergeOrder (spec.md §4.5's "tie-breaks
// use a fixed orientation order (right, left, up, down)").
func (c *Context) orderAllByDirection(p grid.Point, segs []wire.Segment) []wire.Segment {
	rank := func(s wire.Segment) int {
		dir := c.info(s).Line.DirectionFrom(p)
		for i, o := range grid.FixAndMergeOrder {
			if o == dir {
				return i
			}
		}
		panic(fmt.Sprintf("editing: %v is not a cardinal direction", dir))
	}
	out := append([]wire.Segment(nil), segs...)
	sort.SliceStable(out, func(i, j int) bool { return rank(out[i]) < rank(out[j]) })
	return out
}

// SetEndpointType is setEndpointType exported for circuit's
// public-operation layer (regularize_temporary_selection tags
// cross-points and shadows directly, outside the fix-and-merge flow).
func (c *Context) SetEndpointType(seg wire.Segment, p grid.Point, t grid.PointType) {
	c.setEndpointType(seg, p, t)
}

// setEndpointType retags the endpoint of seg at p, pushing its undo
// inverse.
func (c *Context) setEndpointType(seg wire.Segment, p grid.Point, t grid.PointType) {
	info := c.info(seg)
	old := info.Endpoints
	newEndpoints := old.WithTypeAt(info.Line, p, t)
	if newEndpoints == old {
		return
	}
	key := c.key(seg)
	c.Table.Tree(seg.Wire).UpdateSegment(seg.Index, segment.Info{Line: info.Line, Endpoints: newEndpoints})
	c.Bus.EndpointsUpdated(message.EndpointsUpdated{Segment: seg, Old: old, New: newEndpoints})
	c.Undo.Push(undo.SetEndpoints{Key: key, Endpoints: old})
}
