package editing

import (
	"github.com/sarchlab/wiregrid/circuit/message"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/wire"
)

// MoveResult reports where a moved segment_part ended up, since the
// dispatch in MoveSegmentBetweenTrees can relocate, split, or shrink
// its source (spec.md §4.3).
type MoveResult struct {
	// Destination is where sp.Part now lives.
	Destination wire.Segment
}

// MoveSegmentBetweenTrees is move_segment_between_trees (spec.md
// §4.3): classifies sp.Part against its segment's full part and
// dispatches to the Full/TouchingOneSide/Splitting case. destKey, if
// non-zero, is the key assigned to a newly created destination piece
// (a fresh key is drawn when it is zero); callers that don't care pass
// grid.NewSegmentKey(). It is not used when the whole segment moves
// (the destination keeps the source's key), nor when the moved part is
// the leading piece of a touching-one-side move (the destination takes
// the source's key and the remainder gets a fresh one).
func (c *Context) MoveSegmentBetweenTrees(sp wire.Part, destWire wire.ID, destKey grid.SegmentKey) MoveResult {
	srcInfo := c.info(sp.Segment)
	full := srcInfo.Line.FullPart()

	if sp.Part.Equal(full) {
		return c.moveFull(sp.Segment, destWire, destKey)
	}

	switch grid.Classify(full, sp.Part) {
	case grid.DiffTouchingOneSide:
		return c.moveTouchingOneSide(sp, destWire, destKey)
	default:
		return c.moveSplitting(sp, destWire, destKey)
	}
}

func (c *Context) moveFull(src wire.Segment, destWire wire.ID, destKey grid.SegmentKey) MoveResult {
	if destWire == src.Wire {
		return MoveResult{Destination: src}
	}

	srcInfo := c.info(src)
	srcKey := c.key(src)
	destTree := c.Table.Tree(destWire)
	newIdx := destTree.AddSegmentWithKey(srcInfo, srcKey)
	dest := wire.Segment{Wire: destWire, Index: newIdx}
	c.Keys.SetKey(dest, srcKey)
	if !destKey.IsZero() {
		// Caller supplied an explicit key for the destination: this
		// only happens when the source key is meant to stay with the
		// leftover piece elsewhere (never the full-move case), so it
		// is ignored here; full-move always carries the source key.
		_ = destKey
	}

	wasInserted := wire.IsInserted(src.Wire)
	willInsert := wire.IsInserted(destWire)

	c.swapDeleteAndAnnounce(src.Wire, src.Index)
	c.Bus.IDUpdated(message.IDUpdated{Old: src, New: dest})
	if wasInserted && willInsert {
		c.Bus.InsertedIDUpdated(message.InsertedIDUpdated{Old: src, New: dest})
	} else if willInsert {
		c.Bus.Inserted(message.Inserted{Segment: dest})
	} else if wasInserted {
		c.Bus.Uninserted(message.Uninserted{Segment: dest})
	}
	return MoveResult{Destination: dest}
}

func (c *Context) moveTouchingOneSide(sp wire.Part, destWire wire.ID, destKey grid.SegmentKey) MoveResult {
	srcTree := c.Table.Tree(sp.Segment.Wire)
	destTree := c.Table.Tree(destWire)

	if destKey.IsZero() {
		destKey = grid.NewSegmentKey()
	}
	destIdx := destTree.CopySegment(srcTree, sp.Segment.Index, &sp.Part)
	dest := wire.Segment{Wire: destWire, Index: destIdx}
	c.Keys.SetKey(dest, destKey)
	c.publishCreated(dest, destKey)
	if wire.IsInserted(destWire) {
		c.Bus.Inserted(message.Inserted{Segment: dest})
	}

	full := c.info(sp.Segment).Line.FullPart()
	kept := grid.DifferenceTouchingOneSide(full, sp.Part)
	srcKey := c.key(sp.Segment)
	srcTree.ShrinkSegment(sp.Segment.Index, kept)

	// The source's key follows whichever resulting piece is the
	// earlier (lower-offset) one on the original line: if the kept
	// remainder begins at 0 it is earlier, so it keeps srcKey;
	// otherwise srcKey travels with the destination copy and the
	// shrunken remainder gets a fresh key (spec.md §4.3).
	if kept.Begin != 0 {
		newSrcKey := grid.NewSegmentKey()
		c.Keys.SetKey(sp.Segment, newSrcKey)
		c.Keys.SetKey(dest, srcKey)
	}

	c.Bus.PartMoved(message.PartMoved{
		Source:      sp.Segment,
		SourceInfo:  c.info(sp.Segment),
		Destination: dest,
		DestInfo:    c.info(dest),
		CreateDestination: true,
		DeleteSource:      false,
	})
	if kept.Begin != 0 {
		c.Bus.PartMoved(message.PartMoved{
			Source:      sp.Segment,
			SourceInfo:  c.info(sp.Segment),
			Destination: sp.Segment,
			DestInfo:    c.info(sp.Segment),
			CreateDestination: false,
			DeleteSource:      false,
		})
	}
	if wire.IsInserted(sp.Segment.Wire) != wire.IsInserted(destWire) {
		if wire.IsInserted(sp.Segment.Wire) {
			c.Bus.Inserted(message.Inserted{Segment: sp.Segment})
		}
	}

	return MoveResult{Destination: dest}
}

func (c *Context) moveSplitting(sp wire.Part, destWire wire.ID, destKey grid.SegmentKey) MoveResult {
	srcTree := c.Table.Tree(sp.Segment.Wire)
	destTree := c.Table.Tree(destWire)
	full := c.info(sp.Segment).Line.FullPart()
	left, right := grid.DifferenceNotTouching(full, sp.Part)

	srcKey := c.key(sp.Segment)

	// Right-hand leftover becomes a brand-new segment in the source
	// wire (spec.md §4.3: "copy the right-hand leftover to a new
	// segment within the source wire (preserves the earlier key's
	// association with the leftmost piece)").
	rightIdx := srcTree.CopySegment(srcTree, sp.Segment.Index, &right)
	rightSeg := wire.Segment{Wire: sp.Segment.Wire, Index: rightIdx}
	rightKey := grid.NewSegmentKey()
	c.Keys.SetKey(rightSeg, rightKey)
	c.publishCreated(rightSeg, rightKey)

	if destKey.IsZero() {
		destKey = grid.NewSegmentKey()
	}
	destIdx := destTree.CopySegment(srcTree, sp.Segment.Index, &sp.Part)
	dest := wire.Segment{Wire: destWire, Index: destIdx}
	c.Keys.SetKey(dest, destKey)
	c.publishCreated(dest, destKey)
	if wire.IsInserted(destWire) {
		c.Bus.Inserted(message.Inserted{Segment: dest})
	}

	srcTree.ShrinkSegment(sp.Segment.Index, left)
	c.Keys.SetKey(sp.Segment, srcKey) // leftmost piece keeps the original key

	c.Bus.PartMoved(message.PartMoved{
		Source:      sp.Segment,
		SourceInfo:  c.info(sp.Segment),
		Destination: dest,
		DestInfo:    c.info(dest),
		CreateDestination: true,
		DeleteSource:      false,
	})
	c.Bus.PartMoved(message.PartMoved{
		Source:      sp.Segment,
		SourceInfo:  c.info(sp.Segment),
		Destination: rightSeg,
		DestInfo:    c.info(rightSeg),
		CreateDestination: true,
		DeleteSource:      false,
	})

	return MoveResult{Destination: dest}
}
