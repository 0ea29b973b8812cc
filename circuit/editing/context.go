// Package editing implements the low-level edit-wire primitives of
// spec.md §4.3-§4.7: moving and removing segments between trees,
// splitting and merging at a point, and inserting a newly-valid
// segment into the right inserted wire. These are never called
// directly by an application; circuit's public operations (spec.md
// §4.8) sequence them.
package editing

import (
	"fmt"

	"github.com/sarchlab/wiregrid/circuit/message"
	"github.com/sarchlab/wiregrid/circuit/undo"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/index"
	"github.com/sarchlab/wiregrid/segment"
	"github.com/sarchlab/wiregrid/wire"
)

// Context bundles everything a detail primitive needs: the wire
// table it mutates, the message bus it publishes to, the undo stack
// it pushes inverses onto, and the external collaborators it queries
// (spec.md §2.5). circuit.Data holds one *Context per instance; detail
// primitives are methods on *Context so they can be unit-tested
// without the public-operation layer.
type Context struct {
	Table *wire.Table
	Bus   *message.Bus
	Undo  *undo.Stack

	Keys    index.Keys
	Spatial index.Spatial
	Collision index.Collision
	Inputs  index.LogicItemInputs
	Outputs index.LogicItemOutputs
}

// info is a small helper: the current Info of a segment address.
func (c *Context) info(seg wire.Segment) segment.Info {
	return c.Table.Tree(seg.Wire).Info(seg.Index)
}

// Info is info exported for circuit's public-operation layer.
func (c *Context) Info(seg wire.Segment) segment.Info { return c.info(seg) }

func (c *Context) key(seg wire.Segment) grid.SegmentKey {
	k, ok := c.Keys.Get(seg)
	if !ok {
		panic(fmt.Sprintf("editing: segment %+v has no key", seg))
	}
	return k
}

// Key is key exported for circuit's public-operation layer.
func (c *Context) Key(seg wire.Segment) grid.SegmentKey { return c.key(seg) }

// publishCreated announces a brand-new record at seg.
func (c *Context) publishCreated(seg wire.Segment, key grid.SegmentKey) {
	c.Bus.Created(message.Created{Segment: seg, Key: key, Info: c.info(seg)})
}

// swapDeleteAndAnnounce performs SwapAndDeleteSegment on tree id at i
// and emits the id-updated message for whatever got relocated into the
// hole, per spec.md §4.2's contract ("its caller emits
// segment_id_updated(last->index) then segment_part_deleted(index)").
func (c *Context) swapDeleteAndAnnounce(id wire.ID, i grid.Index) {
	tree := c.Table.Tree(id)
	movedFrom, moved := tree.SwapAndDeleteSegment(i)
	if moved {
		old := wire.Segment{Wire: id, Index: movedFrom}
		new := wire.Segment{Wire: id, Index: i}
		c.Bus.IDUpdated(message.IDUpdated{Old: old, New: new})
		if wire.IsInserted(id) {
			c.Bus.InsertedIDUpdated(message.InsertedIDUpdated{Old: old, New: new})
		}
		c.Keys.SwapKey(old, new)
	}
}
