package editing

import (
	"github.com/sarchlab/wiregrid/circuit/message"
	"github.com/sarchlab/wiregrid/circuit/undo"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/wire"
)

// SplitSegmentAt splits the segment at seg into two at point, which
// must be strictly interior to its line (spec.md §4.7's "split a
// segment at a grid point"). The left piece keeps seg's address and
// key; the right piece is a new segment with a fresh key. Both
// endpoints at point become Shadow (fix_and_merge_segments, which
// always calls this right before reclassifying point, is responsible
// for giving them their real type).
func (c *Context) SplitSegmentAt(seg wire.Segment, point grid.Point) (left, right wire.Segment) {
	tree := c.Table.Tree(seg.Wire)
	info := c.info(seg)
	off := info.Line.OffsetOf(point)
	full := info.Line.FullPart()
	leftPart := grid.Part{Begin: full.Begin, End: off}
	rightPart := grid.Part{Begin: off, End: full.End}

	srcKey := c.key(seg)
	rightIdx := tree.CopySegment(tree, seg.Index, &rightPart)
	rightSeg := wire.Segment{Wire: seg.Wire, Index: rightIdx}
	rightKey := grid.NewSegmentKey()
	c.Keys.SetKey(rightSeg, rightKey)
	c.publishCreated(rightSeg, rightKey)
	if wire.IsInserted(seg.Wire) {
		c.Bus.Inserted(message.Inserted{Segment: rightSeg})
	}

	tree.ShrinkSegment(seg.Index, leftPart)

	c.Bus.PartMoved(message.PartMoved{
		Source:      seg,
		SourceInfo:  c.info(seg),
		Destination: rightSeg,
		DestInfo:    c.info(rightSeg),
		CreateDestination: true,
		DeleteSource:      false,
	})
	c.Undo.Push(undo.Split{SourceKey: srcKey, NewKey: rightKey, SplitOffset: off})

	return seg, rightSeg
}

// MergeSegments merges two collinear, touching segments into one,
// occupying keep's address (spec.md §4.2 swap_and_merge_segment,
// §4.5's "if they are parallel, merge them"). keep's key is
// preserved; remove's key is retired ("preserves earlier key; the
// other's key is retired or reused per the merge rule", spec.md §4.5).
// Returns the address the merged segment now lives at (see
// segment.Tree.SwapAndMergeSegment's index-relocation note).
func (c *Context) MergeSegments(keep, remove wire.Segment) wire.Segment {
	if keep.Wire != remove.Wire {
		panic("editing: cannot merge segments from different wires")
	}
	tree := c.Table.Tree(keep.Wire)

	keepKey := c.key(keep)
	removeKey := c.key(remove)
	removedLine := c.info(remove).Line

	// Forget remove's key before mutating the tree: the record it
	// names is about to stop existing, and whatever the swap-delete
	// relocates into its slot needs its own key moved there instead,
	// not clobbered by remove's.
	c.Keys.Forget(remove)

	mergedIdx, movedFrom, moved := tree.SwapAndMergeSegment(keep.Index, remove.Index)
	merged := wire.Segment{Wire: keep.Wire, Index: mergedIdx}

	if moved {
		old := wire.Segment{Wire: keep.Wire, Index: movedFrom}
		new := wire.Segment{Wire: keep.Wire, Index: remove.Index}
		c.Keys.SwapKey(old, new)
		c.Bus.IDUpdated(message.IDUpdated{Old: old, New: new})
		if wire.IsInserted(keep.Wire) {
			c.Bus.InsertedIDUpdated(message.InsertedIDUpdated{Old: old, New: new})
		}
	}
	c.Keys.SetKey(merged, keepKey)

	c.Bus.PartDeleted(message.PartDeleted{Segment: remove, Part: removedLine.FullPart(), Line: removedLine})
	c.Bus.EndpointsUpdated(message.EndpointsUpdated{Segment: merged, New: c.info(merged).Endpoints})
	c.Undo.Push(undo.Merge{KeepKey: keepKey, DeleteKey: removeKey})

	return merged
}
