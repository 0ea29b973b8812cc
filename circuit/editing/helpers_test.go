package editing_test

import (
	"github.com/sarchlab/wiregrid/circuit/editing"
	"github.com/sarchlab/wiregrid/circuit/message"
	"github.com/sarchlab/wiregrid/circuit/undo"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/index"
	"github.com/sarchlab/wiregrid/segment"
	"github.com/sarchlab/wiregrid/wire"
)

// newContext builds an editing.Context wired to fresh in-memory
// indices subscribed to a fresh bus, the same assembly
// circuit.DataBuilder.Build performs for Data.
func newContext() *editing.Context {
	bus := message.NewBus()
	geom := index.NewGeometryIndex()
	bus.SubscribeFunc(geom.Handle)
	keys := index.NewKeyIndex()
	bus.SubscribeFunc(keys.Handle)
	locator := index.NewLogicItemLocator()

	return &editing.Context{
		Table:     wire.NewTable(),
		Bus:       bus,
		Undo:      undo.NewStack(),
		Keys:      keys,
		Spatial:   geom,
		Collision: geom,
		Inputs:    locator,
		Outputs:   locator,
	}
}

func gpt(x, y int) grid.Point {
	return grid.Point{X: grid.Coord(x), Y: grid.Coord(y)}
}

// addTemporarySegment adds a fresh segment to the temporary wire with
// shadow endpoints and a minted key, returning its address.
func addTemporarySegment(c *editing.Context, l grid.Line) wire.Segment {
	tree := c.Table.Tree(wire.Temporary)
	info := segment.Info{Line: l, Endpoints: grid.Endpoints{P0Type: grid.Shadow, P1Type: grid.Shadow}}
	idx := tree.AddSegment(info)
	seg := wire.Segment{Wire: wire.Temporary, Index: idx}
	key := grid.NewSegmentKey()
	c.Keys.SetKey(seg, key)
	c.Bus.Created(message.Created{Segment: seg, Key: key, Info: info})
	return seg
}
