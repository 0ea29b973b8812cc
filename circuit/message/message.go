// Package message implements the core's notification bus: a
// synchronous, direct call graph that visits every subscribed index
// (and any live selection) in registration order on each edit (spec.md
// §2.6/§6). It is built on akita's Hookable mechanism, the same
// mechanism the teacher's core.Port uses to notify subscribers on
// Send/Deliver/Retrieve — a good fit because both describe a
// synchronous, non-reentrant, in-process call graph rather than
// anything resembling a message queue.
//
// Every message carries enough geometry (line, endpoint tags) for a
// subscriber to update its own cache without querying back into the
// core — re-entering the core during message delivery is forbidden
// (spec.md §5).
package message

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/segment"
	"github.com/sarchlab/wiregrid/wire"
)

// Kind identifies one of the notification shapes of spec.md §2.6.
type Kind int

const (
	KindCreated Kind = iota
	KindIDUpdated
	KindInsertedIDUpdated
	KindPartMoved
	KindPartDeleted
	KindInserted
	KindUninserted
	KindEndpointsUpdated
)

var hookPos = map[Kind]*sim.HookPos{
	KindCreated:           {Name: "segment created"},
	KindIDUpdated:         {Name: "segment id updated"},
	KindInsertedIDUpdated: {Name: "inserted segment id updated"},
	KindPartMoved:         {Name: "segment part moved"},
	KindPartDeleted:       {Name: "segment part deleted"},
	KindInserted:          {Name: "segment inserted"},
	KindUninserted:        {Name: "segment uninserted"},
	KindEndpointsUpdated:  {Name: "segment endpoints updated"},
}

// Created is delivered when a brand-new segment record is appended to
// a tree (e.g. by add_wire_segment).
type Created struct {
	Segment wire.Segment
	Key     grid.SegmentKey
	Info    segment.Info
}

// IDUpdated is delivered whenever a segment's (wire, index) address
// changes without changing its identity — most commonly the
// swap-delete "last index fills the hole" relocation. Geometry is
// unchanged; subscribers relabel their cached entry's address.
type IDUpdated struct {
	Old, New wire.Segment
}

// InsertedIDUpdated is IDUpdated restricted to a relocation where both
// the old and new address are on an inserted wire; emitted alongside
// IDUpdated so subscribers that only care about inserted-wire topology
// do not have to re-check IsInserted themselves.
type InsertedIDUpdated struct {
	Old, New wire.Segment
}

// PartMoved is delivered when a sub-range of a segment is relocated,
// possibly creating a new destination record and/or shrinking the
// source in place.
type PartMoved struct {
	Source      wire.Segment
	SourceInfo  segment.Info // meaningful only if !DeleteSource
	Destination wire.Segment
	DestInfo    segment.Info
	CreateDestination bool
	DeleteSource      bool
}

// PartDeleted is delivered when a sub-range of a segment is removed
// without being relocated anywhere. Line is the geometry of the
// removed part, for indices to retract.
type PartDeleted struct {
	Segment wire.Segment
	Part    grid.Part
	Line    grid.Line
}

// Inserted is delivered when a segment (or a surviving piece of one)
// becomes part of an inserted wire. Geometry is unchanged.
type Inserted struct {
	Segment wire.Segment
}

// Uninserted is delivered when a segment stops being part of an
// inserted wire (moved to temporary or colliding). Geometry is
// unchanged.
type Uninserted struct {
	Segment wire.Segment
}

// EndpointsUpdated is delivered when a segment's endpoint-type tags
// change without its line changing.
type EndpointsUpdated struct {
	Segment  wire.Segment
	Old, New grid.Endpoints
}

// Bus delivers each message synchronously to every subscriber, whatever
// the message's Kind, in registration order. A subscriber must
// not re-enter the core (submit an edit) or publish another message
// while handling one (spec.md §5).
type Bus struct {
	sim.HookableBase
}

// NewBus returns an empty, unsubscribed bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers hook to receive every message published on the
// bus, regardless of Kind; hook is expected to switch on ctx.Item's
// dynamic type. This mirrors how a single akita Port accepts hooks for
// all of its HookPos values.
func (b *Bus) Subscribe(hook sim.Hook) {
	b.AcceptHook(hook)
}

// HandlerFunc adapts a plain func(item any) into an sim.Hook, for
// subscribers (like index.GeometryIndex) that would rather expose a
// single dispatch method than implement sim.Hook's Func(HookCtx)
// signature directly.
type HandlerFunc func(item any)

// Func implements sim.Hook.
func (f HandlerFunc) Func(ctx sim.HookCtx) {
	f(ctx.Item)
}

// SubscribeFunc is Subscribe for a plain func(item any).
func (b *Bus) SubscribeFunc(fn func(item any)) {
	b.Subscribe(HandlerFunc(fn))
}

// publish delivers item under kind to every subscriber.
func (b *Bus) publish(kind Kind, item any) {
	b.InvokeHook(sim.HookCtx{
		Domain: b,
		Pos:    hookPos[kind],
		Item:   item,
	})
}

func (b *Bus) Created(m Created)                     { b.publish(KindCreated, m) }
func (b *Bus) IDUpdated(m IDUpdated)                 { b.publish(KindIDUpdated, m) }
func (b *Bus) InsertedIDUpdated(m InsertedIDUpdated) { b.publish(KindInsertedIDUpdated, m) }
func (b *Bus) PartMoved(m PartMoved)                 { b.publish(KindPartMoved, m) }
func (b *Bus) PartDeleted(m PartDeleted)             { b.publish(KindPartDeleted, m) }
func (b *Bus) Inserted(m Inserted)                   { b.publish(KindInserted, m) }
func (b *Bus) Uninserted(m Uninserted)               { b.publish(KindUninserted, m) }
func (b *Bus) EndpointsUpdated(m EndpointsUpdated)   { b.publish(KindEndpointsUpdated, m) }
