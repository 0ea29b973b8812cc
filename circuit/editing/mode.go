package editing

import (
	"github.com/sarchlab/wiregrid/circuit/undo"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/wire"
)

// ChangeWireInsertionMode is change_wire_insertion_mode / the
// insertion-mode state machine (spec.md §4.6). oldModes is sp's
// current InsertionMode(s) as reported by wire.Modes (one element, or
// two if sp straddles the valid/normal boundary); newMode is the
// requested target. Each of the four ordered stages is a no-op if its
// precondition does not hold.
func (c *Context) ChangeWireInsertionMode(sp wire.Part, oldModes []wire.Mode, newMode wire.Mode) wire.Part {
	key := c.key(sp.Segment)

	// Stage 1: temporary -> colliding.
	if wire.HasMode(oldModes, wire.ModeTemporary) {
		line := c.info(sp.Segment).Line
		if c.Collision.IsColliding(line) {
			res := c.MoveSegmentBetweenTrees(sp, wire.Colliding, grid.NewSegmentKey())
			sp = wire.Part{Segment: res.Destination, Part: c.info(res.Destination).Line.FullPart()}
			c.setEndpointType(sp.Segment, line.P0, grid.Shadow)
			c.setEndpointType(sp.Segment, line.P1, grid.Shadow)
		} else {
			dest := c.InsertUninsertedSegment(sp)
			sp = wire.Part{Segment: dest, Part: c.info(dest).Line.FullPart()}
			c.markValid(sp)
		}
		c.Undo.Push(undo.CollidingToTemporary{Key: key, Part: sp.Part})
	}

	// Stage 2: colliding -> insert (only meaningful when new == insert_or_discard).
	if newMode == wire.ModeInsertOrDiscard {
		if wire.IsInserted(sp.Segment.Wire) {
			c.unmarkValid(sp)
			c.Undo.Push(undo.InsertToColliding{Key: key, Part: sp.Part})
			return sp
		}
		// Actually colliding (not inserted): nothing more is done here.
		// Stage 3 does not apply and stage 4 runs only for
		// ModeTemporary, so the segment stays on the colliding wire; it
		// is neither moved to temporary nor deleted.
	}

	// Stage 3: insert -> colliding.
	if wire.HasMode(oldModes, wire.ModeInsertOrDiscard) {
		c.markValid(sp)
		c.Undo.Push(undo.CollidingToInsert{Key: key, Part: sp.Part})
	}

	// Stage 4: colliding -> temporary.
	if newMode == wire.ModeTemporary {
		line := c.info(sp.Segment).Line
		wasInserted := wire.IsInserted(sp.Segment.Wire)
		sourceWire := sp.Segment.Wire
		if wasInserted {
			c.unmarkValid(sp)
		}
		res := c.MoveSegmentBetweenTrees(sp, wire.Temporary, grid.NewSegmentKey())
		sp = wire.Part{Segment: res.Destination, Part: c.info(res.Destination).Line.FullPart()}

		if wasInserted {
			if c.Table.Tree(sourceWire).Len() == 0 {
				movedFrom, moved := c.Table.SwapAndDeleteWire(sourceWire)
				if moved {
					c.renumberWire(movedFrom, sourceWire)
				}
			} else {
				c.FixAndMergeSegments(line.P0)
				c.FixAndMergeSegments(line.P1)
				c.SplitBrokenTree(sourceWire)
			}
		}

		c.setEndpointType(sp.Segment, line.P0, grid.Shadow)
		c.setEndpointType(sp.Segment, line.P1, grid.Shadow)
		c.Undo.Push(undo.TemporaryToColliding{Key: key, Part: sp.Part})
	}

	return sp
}

// markValid marks sp.Part valid on its inserted wire, a no-op for
// aggregate wires.
func (c *Context) markValid(sp wire.Part) {
	if !wire.IsInserted(sp.Segment.Wire) {
		return
	}
	c.Table.Tree(sp.Segment.Wire).MarkValid(sp.Segment.Index, sp.Part)
}

// unmarkValid is markValid's inverse.
func (c *Context) unmarkValid(sp wire.Part) {
	if !wire.IsInserted(sp.Segment.Wire) {
		return
	}
	c.Table.Tree(sp.Segment.Wire).UnmarkValid(sp.Segment.Index, sp.Part)
}
