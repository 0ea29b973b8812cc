package editing

import (
	"fmt"

	"github.com/sarchlab/wiregrid/circuit/message"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/wire"
)

// RemoveSegmentFromTree is remove_segment_from_tree (spec.md §4.4).
// sp.Segment.Wire must be Temporary or Colliding; removing from an
// inserted wire through this primitive is an argument violation
// (spec.md §7(1)) and panics — inserted wires are only ever shrunk via
// the insertion-mode state machine, never deleted from directly.
func (c *Context) RemoveSegmentFromTree(sp wire.Part) {
	if wire.IsInserted(sp.Segment.Wire) {
		panic(fmt.Sprintf("editing: cannot remove from inserted wire %d via remove_segment_from_tree", sp.Segment.Wire))
	}

	full := c.info(sp.Segment).Line.FullPart()
	if sp.Part.Equal(full) {
		c.removeFull(sp.Segment)
		return
	}

	switch grid.Classify(full, sp.Part) {
	case grid.DiffTouchingOneSide:
		c.removeTouchingOneSide(sp)
	default:
		c.removeSplitting(sp)
	}
}

func (c *Context) removeFull(seg wire.Segment) {
	line := c.info(seg).Line
	c.Keys.Forget(seg)
	c.Bus.PartDeleted(message.PartDeleted{Segment: seg, Part: line.FullPart(), Line: line})
	c.swapDeleteAndAnnounce(seg.Wire, seg.Index)
}

func (c *Context) removeTouchingOneSide(sp wire.Part) {
	tree := c.Table.Tree(sp.Segment.Wire)
	full := c.info(sp.Segment).Line.FullPart()
	removedLine := c.info(sp.Segment).Line.Sub(sp.Part)
	kept := grid.DifferenceTouchingOneSide(full, sp.Part)

	c.Bus.PartDeleted(message.PartDeleted{Segment: sp.Segment, Part: sp.Part, Line: removedLine})
	tree.ShrinkSegment(sp.Segment.Index, kept)

	c.Bus.PartMoved(message.PartMoved{
		Source:      sp.Segment,
		SourceInfo:  c.info(sp.Segment),
		Destination: sp.Segment,
		DestInfo:    c.info(sp.Segment),
		CreateDestination: false,
		DeleteSource:      false,
	})
}

func (c *Context) removeSplitting(sp wire.Part) {
	tree := c.Table.Tree(sp.Segment.Wire)
	full := c.info(sp.Segment).Line.FullPart()
	removedLine := c.info(sp.Segment).Line.Sub(sp.Part)
	left, right := grid.DifferenceNotTouching(full, sp.Part)

	rightIdx := tree.CopySegment(tree, sp.Segment.Index, &right)
	rightSeg := wire.Segment{Wire: sp.Segment.Wire, Index: rightIdx}
	rightKey := grid.NewSegmentKey()
	c.Keys.SetKey(rightSeg, rightKey)
	c.publishCreated(rightSeg, rightKey)

	c.Bus.PartDeleted(message.PartDeleted{Segment: sp.Segment, Part: sp.Part, Line: removedLine})
	tree.ShrinkSegment(sp.Segment.Index, left)

	c.Bus.PartMoved(message.PartMoved{
		Source:      sp.Segment,
		SourceInfo:  c.info(sp.Segment),
		Destination: rightSeg,
		DestInfo:    c.info(rightSeg),
		CreateDestination: true,
		DeleteSource:      false,
	})
}
