package editing

import (
	"fmt"

	"github.com/sarchlab/wiregrid/circuit/check"
	"github.com/sarchlab/wiregrid/circuit/message"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/wire"
)

// InsertUninsertedSegment is insert_uninserted_segment (spec.md §4.7):
// sp is currently colliding-free but not yet living in an inserted
// wire. It picks (or creates) the target inserted wire, forces
// endpoints that land on a logic-item output to input, moves sp
// there, and repairs local topology at both new endpoints.
func (c *Context) InsertUninsertedSegment(sp wire.Part) wire.Segment {
	line := c.info(sp.Segment).Line

	target := c.chooseInsertionTarget(line)

	// Reset both endpoints to shadow first (each push of their own
	// undo.SetEndpoints record), then force whichever land on a
	// logic-item output back to input (spec.md §4.7 steps 3-4).
	c.setEndpointType(sp.Segment, line.P0, grid.Shadow)
	c.setEndpointType(sp.Segment, line.P1, grid.Shadow)

	for _, p := range [2]grid.Point{line.P0, line.P1} {
		if _, ok := c.Outputs.Find(p); ok {
			c.setEndpointType(sp.Segment, p, grid.Input)
		}
	}

	result := c.MoveSegmentBetweenTrees(sp, target, grid.NewSegmentKey())

	c.FixAndMergeSegments(line.P0)
	c.FixAndMergeSegments(line.P1)

	if violations := check.IsContiguousTreeWithCorrectEndpoints(c.Table.Tree(target), true); len(violations) > 0 {
		panic(fmt.Sprintf("editing: wire %d is not a contiguous tree with correct endpoints after insert: %v", target, violations))
	}

	return result.Destination
}

// chooseInsertionTarget implements step 2 of spec.md §4.7: query the
// collision index at both endpoints of line for the first inserted
// wire touching each. Zero candidates creates a fresh inserted wire;
// one candidate uses it; two candidates are merged first (always into
// the lower id) and the survivor is used.
func (c *Context) chooseInsertionTarget(line grid.Line) wire.ID {
	w0, ok0 := c.Collision.GetFirstWire(line.P0)
	w1, ok1 := c.Collision.GetFirstWire(line.P1)

	switch {
	case ok0 && ok1 && w0 != w1:
		return c.mergeAndDeleteTree(w0, w1)
	case ok0:
		return w0
	case ok1:
		return w1
	default:
		return c.Table.AddWire()
	}
}

// MergeAndDeleteTree is merge_and_delete_tree, exported so circuit's
// public operations (toggle_wire_crosspoint) can call it directly
// without going through chooseInsertionTarget.
func (c *Context) MergeAndDeleteTree(a, b wire.ID) wire.ID {
	return c.mergeAndDeleteTree(a, b)
}

// mergeAndDeleteTree merges the two inserted wires' trees, always into
// the lower id, and deletes the higher one (spec.md §4.7 step 2:
// "merge_and_delete_tree(min,max) ... emitting id-updated messages per
// segment of the deleted wire"). Returns the surviving id.
func (c *Context) mergeAndDeleteTree(a, b wire.ID) wire.ID {
	lo, hi := a, b
	if hi < lo {
		lo, hi = hi, lo
	}

	srcTree := c.Table.Tree(hi)
	destTree := c.Table.Tree(lo)
	n := srcTree.Len()
	newIdx := destTree.AddTree(srcTree)

	for i := 0; i < n; i++ {
		old := wire.Segment{Wire: hi, Index: grid.Index(i)}
		new := wire.Segment{Wire: lo, Index: newIdx[i]}
		if key, ok := c.Keys.Get(old); ok {
			c.Keys.SetKey(new, key)
			c.Keys.Forget(old)
		}
		c.Bus.IDUpdated(message.IDUpdated{Old: old, New: new})
		c.Bus.InsertedIDUpdated(message.InsertedIDUpdated{Old: old, New: new})
	}

	// Drain the source tree now that every record has a home in dest;
	// deleting from the end keeps each SwapAndDeleteSegment a true
	// no-op (nothing left to relocate) since no index below it is
	// touched again.
	for srcTree.Len() > 0 {
		srcTree.SwapAndDeleteSegment(grid.Index(srcTree.Len() - 1))
	}

	movedFrom, moved := c.Table.SwapAndDeleteWire(hi)
	if moved {
		c.renumberWire(movedFrom, hi)
	}

	return lo
}

// renumberWire is called after SwapAndDeleteWire relocates the last
// wire (movedFrom) into the slot that used to hold deleted: every
// key-index entry and every live reference under the old id must
// follow it to the new one.
func (c *Context) renumberWire(movedFrom, deleted wire.ID) {
	tree := c.Table.Tree(deleted)
	for i := 0; i < tree.Len(); i++ {
		old := wire.Segment{Wire: movedFrom, Index: grid.Index(i)}
		new := wire.Segment{Wire: deleted, Index: grid.Index(i)}
		if key, ok := c.Keys.Get(old); ok {
			c.Keys.SetKey(new, key)
			c.Keys.Forget(old)
		}
		c.Bus.IDUpdated(message.IDUpdated{Old: old, New: new})
		c.Bus.InsertedIDUpdated(message.InsertedIDUpdated{Old: old, New: new})
	}
}
