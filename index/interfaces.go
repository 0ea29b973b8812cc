// Package index defines the external collaborators the editable-wire
// core consumes (spec.md §2.5/§6) — spatial, collision, logic-item,
// and key lookups — as interfaces, plus in-memory default
// implementations sufficient to exercise the core end to end. The
// core only ever reads these through the interfaces in this file; it
// never assumes a particular implementation.
package index

import (
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/wire"
)

// Spatial answers "what segments pass through this point" queries
// (spec.md §6 SpatialIndex.query_line_segments). At most 4 segments
// can meet at a point in a valid orthogonal planar layout (one per
// cardinal direction); QueryPoint returns however many currently do,
// in FixAndMergeOrder-compatible order where that matters to the
// caller (fix_and_merge_segments, spec.md §4.5).
type Spatial interface {
	QueryPoint(p grid.Point) []wire.Segment
}

// CollisionQuery is the result of CollisionIndex.query for one point
// (spec.md §6).
type CollisionQuery struct {
	IsWireCornerPoint bool
	IsWireConnection  bool
	IsWireCrossPoint  bool
}

// Collision answers "is this geometry free, and what already occupies
// it" questions against the set of inserted wires (spec.md §6
// CollisionIndex).
type Collision interface {
	// GetFirstWire returns the inserted wire whose segment passes
	// through point, or ok=false if none does.
	GetFirstWire(point grid.Point) (id wire.ID, ok bool)
	// IsColliding reports whether line overlaps any inserted segment.
	IsColliding(line grid.Line) bool
	// IsWiresCrossing reports whether exactly two distinct inserted
	// wires cross at point (as opposed to one tree meeting itself).
	IsWiresCrossing(point grid.Point) bool
	// IsWireCrossPoint reports whether point is already a marked
	// cross-point of a single inserted tree.
	IsWireCrossPoint(point grid.Point) bool
	// Query returns the full classification of point.
	Query(point grid.Point) CollisionQuery
}

// LogicItemRef identifies a logic item and the orientation its pin
// faces, as returned by the input/output locators (spec.md §6).
type LogicItemRef struct {
	LogicItem   int
	Orientation grid.Orientation
}

// LogicItemInputs locates a logic item's input pin at a grid point.
type LogicItemInputs interface {
	Find(point grid.Point) (LogicItemRef, bool)
}

// LogicItemOutputs locates a logic item's output pin at a grid point.
type LogicItemOutputs interface {
	Find(point grid.Point) (LogicItemRef, bool)
}

// Keys tracks the stable segment_key_t -> segment_t correspondence
// across edits (spec.md §6 KeyIndex, design note §9 "key <-> index
// duality").
type Keys interface {
	Get(seg wire.Segment) (grid.SegmentKey, bool)
	KeyToSegment(key grid.SegmentKey) (wire.Segment, bool)
	SetKey(seg wire.Segment, key grid.SegmentKey)
	SwapKey(a, b wire.Segment)
	Forget(seg wire.Segment)
}

// SplitPoints indexes candidate split points by the line they fall on,
// used by split_temporary_before_insert (spec.md §4.8) so repeated
// regularization passes do not rescan the whole selection. Grounded on
// original_source's caches/split_point_cache.{h,cpp}.
type SplitPoints interface {
	Add(line grid.Line, point grid.Point)
	PointsOn(line grid.Line) []grid.Point
	Clear()
}
