// Package undo records the inverse of every public edit-wire
// operation, to be consumed elsewhere (outside this module, per
// spec.md §1 Non-goals) to replay undo/redo (spec.md §6).
package undo

import (
	"github.com/sarchlab/wiregrid/grid"
)

// Record is one of the ten undo-record shapes of spec.md §6. It is a
// closed sum type dispatched by a type switch, per design note §9
// ("polymorphism over ... undo entries: tagged sum types with
// exhaustive dispatch").
type Record interface {
	isUndoRecord()
}

// CreateTemporary undoes a delete: re-creates a temporary segment with
// the given line and endpoint tags under key.
type CreateTemporary struct {
	Key       grid.SegmentKey
	Line      grid.Line
	Endpoints grid.Endpoints
}

// DeleteTemporary undoes a create: deletes the temporary segment keyed
// by Key.
type DeleteTemporary struct {
	Key grid.SegmentKey
}

// MoveTemporary undoes a translation: moves the temporary segment
// keyed by Key by Delta (dx, dy).
type MoveTemporary struct {
	Key        grid.SegmentKey
	DeltaX, DeltaY grid.Coord
}

// CollidingToTemporary undoes a temporary->colliding transition.
type CollidingToTemporary struct {
	Key  grid.SegmentKey
	Part grid.Part
}

// TemporaryToColliding undoes a colliding->temporary transition.
type TemporaryToColliding struct {
	Key  grid.SegmentKey
	Part grid.Part
}

// CollidingToInsert undoes an insert->colliding transition.
type CollidingToInsert struct {
	Key  grid.SegmentKey
	Part grid.Part
}

// InsertToColliding undoes a colliding->insert transition.
type InsertToColliding struct {
	Key  grid.SegmentKey
	Part grid.Part
}

// SetEndpoints undoes an endpoint-type change by restoring Endpoints.
type SetEndpoints struct {
	Key       grid.SegmentKey
	Endpoints grid.Endpoints
}

// Merge undoes a merge by re-splitting: KeepKey is the segment that
// absorbed DeleteKey's span.
type Merge struct {
	KeepKey, DeleteKey grid.SegmentKey
}

// Split undoes a split by re-merging: SourceKey is the original
// segment, NewKey is the piece that was split off at SplitOffset.
type Split struct {
	SourceKey, NewKey grid.SegmentKey
	SplitOffset       grid.Offset
}

func (CreateTemporary) isUndoRecord()      {}
func (DeleteTemporary) isUndoRecord()      {}
func (MoveTemporary) isUndoRecord()        {}
func (CollidingToTemporary) isUndoRecord() {}
func (TemporaryToColliding) isUndoRecord() {}
func (CollidingToInsert) isUndoRecord()    {}
func (InsertToColliding) isUndoRecord()    {}
func (SetEndpoints) isUndoRecord()         {}
func (Merge) isUndoRecord()                {}
func (Split) isUndoRecord()                {}

// Stack is an append-only log of undo records, one push per primitive
// that mutates committed state (spec.md §2.8's "inverse recording onto
// the undo stack"). It is the sole side effect the edit-wire public
// operations have beyond the wire table and the message bus, and is
// itself the interface consumed elsewhere to replay inverses — this
// module specifies only what is pushed, never how it is drained (per
// spec.md's Non-goal on undo/redo stack framing).
type Stack struct {
	records []Record
}

// NewStack returns an empty undo stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push appends r as the most recent inverse.
func (s *Stack) Push(r Record) {
	s.records = append(s.records, r)
}

// Len returns the number of records pushed so far.
func (s *Stack) Len() int {
	return len(s.records)
}

// Records returns the stack's contents in push order. The returned
// slice must not be mutated by the caller.
func (s *Stack) Records() []Record {
	return s.records
}
