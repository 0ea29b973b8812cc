// Package circuit sequences the low-level edit-wire primitives of
// circuit/editing into the public operations contract (spec.md §4.8):
// the only entry points an application is meant to call.
package circuit

import (
	"github.com/sarchlab/wiregrid/circuit/editing"
	"github.com/sarchlab/wiregrid/circuit/message"
	"github.com/sarchlab/wiregrid/circuit/undo"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/index"
	"github.com/sarchlab/wiregrid/segment"
	"github.com/sarchlab/wiregrid/wire"
)

// Data is the editable-wire core (spec.md §2 OVERVIEW): a wire table,
// the indices that keep themselves coherent off the message bus, and
// the undo stack, wrapped around the editing.Context that does the
// actual mutation.
type Data struct {
	ctx *editing.Context
}

// Table exposes the underlying wire table for read-only inspection
// (dumping, invariant checking).
func (d *Data) Table() *wire.Table { return d.ctx.Table }

// Bus exposes the message bus so callers can subscribe their own
// indices or UI projections in addition to the defaults.
func (d *Data) Bus() *message.Bus { return d.ctx.Bus }

// Undo exposes the undo stack (read-only per spec.md's Non-goal on
// replaying it; this module only ever appends).
func (d *Data) Undo() *undo.Stack { return d.ctx.Undo }

// AddWireSegment is add_wire_segment (spec.md §4.8): adds line to the
// temporary aggregate with shadow endpoints, then transitions it to
// mode. Panics if line is degenerate (grid.NewLine's own invariant).
func (d *Data) AddWireSegment(line grid.Line, mode wire.Mode) wire.Part {
	tempTree := d.ctx.Table.Tree(wire.Temporary)
	info := segment.Info{Line: line, Endpoints: grid.Endpoints{P0Type: grid.Shadow, P1Type: grid.Shadow}}
	idx := tempTree.AddSegment(info)
	key := grid.NewSegmentKey()

	seg := wire.Segment{Wire: wire.Temporary, Index: idx}
	d.ctx.Keys.SetKey(seg, key)
	d.ctx.Bus.Created(message.Created{Segment: seg, Key: key, Info: tempTree.Info(idx)})
	d.ctx.Undo.Push(undo.DeleteTemporary{Key: key})

	sp := wire.Part{Segment: seg, Part: line.FullPart()}
	if mode == wire.ModeTemporary {
		return sp
	}
	return d.ctx.ChangeWireInsertionMode(sp, []wire.Mode{wire.ModeTemporary}, mode)
}

// DeleteTemporaryWireSegment is delete_temporary_wire_segment (spec.md
// §4.8). sp.Segment.Wire must be Temporary.
func (d *Data) DeleteTemporaryWireSegment(sp wire.Part) {
	if sp.Segment.Wire != wire.Temporary {
		panic("circuit: delete_temporary_wire_segment requires a temporary segment")
	}

	full := d.ctx.Info(sp.Segment).Line.FullPart()
	if !sp.Part.Equal(full) {
		point := d.ctx.Info(sp.Segment).Line.PointAt(sp.Part.Begin)
		_, right := d.ctx.SplitSegmentAt(sp.Segment, point)
		sp = wire.Part{Segment: right, Part: grid.Part{Begin: 0, End: sp.Part.End - sp.Part.Begin}}
	}

	info := d.ctx.Info(sp.Segment)
	key := d.ctx.Key(sp.Segment)
	d.ctx.Undo.Push(undo.CreateTemporary{Key: key, Line: info.Line, Endpoints: info.Endpoints})
	d.ctx.RemoveSegmentFromTree(sp)
}

// MoveOrDeleteTemporaryWire is move_or_delete_temporary_wire (spec.md
// §4.8). If the translation would overflow the grid, the segment is
// deleted instead of moved.
func (d *Data) MoveOrDeleteTemporaryWire(sp wire.Part, dx, dy grid.Coord) {
	info := d.ctx.Info(sp.Segment)
	p0, ok0 := info.Line.P0.Translate(dx, dy)
	p1, ok1 := info.Line.P1.Translate(dx, dy)
	if !ok0 || !ok1 {
		d.DeleteTemporaryWireSegment(wire.Part{Segment: sp.Segment, Part: info.Line.FullPart()})
		return
	}

	full := info.Line.FullPart()
	target := sp.Segment
	if !sp.Part.Equal(full) {
		point := info.Line.PointAt(sp.Part.Begin)
		_, right := d.ctx.SplitSegmentAt(sp.Segment, point)
		target = right
		info = d.ctx.Info(target)
		p0, _ = info.Line.P0.Translate(dx, dy)
		p1, _ = info.Line.P1.Translate(dx, dy)
	}

	key := d.ctx.Key(target)
	newLine := grid.NewLine(p0, p1)
	d.ctx.Table.Tree(target.Wire).SetLine(target.Index, newLine)
	d.ctx.Undo.Push(undo.MoveTemporary{Key: key, DeltaX: -dx, DeltaY: -dy})
}

// ChangeWireInsertionMode is change_wire_insertion_mode (spec.md
// §4.8): runs the §4.6 state machine.
func (d *Data) ChangeWireInsertionMode(sp wire.Part, newMode wire.Mode) wire.Part {
	tree := d.ctx.Table.Tree(sp.Segment.Wire)
	oldModes := wire.Modes(sp, tree.ValidParts(sp.Segment.Index))
	return d.ctx.ChangeWireInsertionMode(sp, oldModes, newMode)
}

// DataBuilder builds a Data. The defaults are a fresh, empty wire
// table and the in-memory index implementations of package index;
// WithKeys/WithGeometry/WithLogicItems let a
// caller substitute their own (e.g. a persistence-backed Keys), as
// long as whatever is substituted for Spatial/Collision still
// subscribes itself to the bus.
type DataBuilder struct {
	keys      index.Keys
	spatial   index.Spatial
	collision index.Collision
	inputs    index.LogicItemInputs
	outputs   index.LogicItemOutputs
}

// WithKeys overrides the default in-memory KeyIndex.
func (b DataBuilder) WithKeys(keys index.Keys) DataBuilder {
	b.keys = keys
	return b
}

// WithGeometry overrides the default in-memory GeometryIndex used for
// both Spatial and Collision queries. geom must also be subscribed to
// the Data's bus (Build does this automatically for the default
// GeometryIndex; a caller-supplied one must subscribe itself before
// Build, since Build cannot know it still needs to).
func (b DataBuilder) WithGeometry(geom interface {
	index.Spatial
	index.Collision
}) DataBuilder {
	b.spatial = geom
	b.collision = geom
	return b
}

// WithLogicItems overrides the default in-memory LogicItemLocator used
// for both input and output pin lookups.
func (b DataBuilder) WithLogicItems(locator interface {
	index.LogicItemInputs
	index.LogicItemOutputs
}) DataBuilder {
	b.inputs = locator
	b.outputs = locator
	return b
}

// Build assembles a Data: a fresh wire table, the bus, the undo stack,
// and whichever indices were configured (or their in-memory defaults),
// subscribing the default GeometryIndex and KeyIndex to the bus so
// they stay coherent across edits without the caller wiring that by
// hand.
func (b DataBuilder) Build() *Data {
	bus := message.NewBus()

	if b.spatial == nil || b.collision == nil {
		geom := index.NewGeometryIndex()
		bus.SubscribeFunc(geom.Handle)
		if b.spatial == nil {
			b.spatial = geom
		}
		if b.collision == nil {
			b.collision = geom
		}
	}
	if b.keys == nil {
		keys := index.NewKeyIndex()
		bus.SubscribeFunc(keys.Handle)
		b.keys = keys
	}
	if b.inputs == nil || b.outputs == nil {
		locator := index.NewLogicItemLocator()
		if b.inputs == nil {
			b.inputs = locator
		}
		if b.outputs == nil {
			b.outputs = locator
		}
	}

	ctx := &editing.Context{
		Table:     wire.NewTable(),
		Bus:       bus,
		Undo:      undo.NewStack(),
		Keys:      b.keys,
		Spatial:   b.spatial,
		Collision: b.collision,
		Inputs:    b.inputs,
		Outputs:   b.outputs,
	}
	return &Data{ctx: ctx}
}
