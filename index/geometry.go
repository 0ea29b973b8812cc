package index

import (
	"sort"

	"github.com/sarchlab/wiregrid/circuit/message"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/segment"
	"github.com/sarchlab/wiregrid/wire"
)

// entry is one geometry record tracked by GeometryIndex: a segment's
// current address, line, endpoint tags, and whether it currently
// belongs to an inserted wire.
type entry struct {
	seg       wire.Segment
	info      segment.Info
	inserted  bool
}

// rowCol is one collinear-run record used for the per-coordinate
// sorted slices that back point queries.
type rowCol struct {
	begin, end grid.Coord // inclusive grid coordinates along the line
	seg        wire.Segment
}

// GeometryIndex is a default, in-memory implementation of both
// Spatial and Collision, kept coherent purely by subscribing to the
// message bus (spec.md §2.5 "consumed, not owned by the core"). It
// never queries back into the core; every message it needs carries
// enough geometry to update its own state (see package message's doc
// comment).
//
// Grounded on original_source/src/editable_circuit/caches.cpp and
// cache.cpp: a point -> segment lookup plus a line-overlap collision
// test, maintained incrementally as segments move.
type GeometryIndex struct {
	byAddr map[wire.Segment]*entry

	// rows[y] holds horizontal segments at that y, sorted by begin.
	rows map[grid.Coord][]*rowCol
	// cols[x] holds vertical segments at that x, sorted by begin.
	cols map[grid.Coord][]*rowCol
}

// NewGeometryIndex returns an empty index.
func NewGeometryIndex() *GeometryIndex {
	return &GeometryIndex{
		byAddr: make(map[wire.Segment]*entry),
		rows:   make(map[grid.Coord][]*rowCol),
		cols:   make(map[grid.Coord][]*rowCol),
	}
}

func (g *GeometryIndex) bucket(line grid.Line) (map[grid.Coord][]*rowCol, grid.Coord) {
	if line.Orientation() == grid.Horizontal {
		return g.rows, line.P0.Y
	}
	return g.cols, line.P0.X
}

func (g *GeometryIndex) insertGeometry(seg wire.Segment, line grid.Line) {
	m, key := g.bucket(line)
	var begin, end grid.Coord
	if line.Orientation() == grid.Horizontal {
		begin, end = line.P0.X, line.P1.X
	} else {
		begin, end = line.P0.Y, line.P1.Y
	}
	rc := &rowCol{begin: begin, end: end, seg: seg}
	list := m[key]
	i := sort.Search(len(list), func(i int) bool { return list[i].begin >= begin })
	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = rc
	m[key] = list
}

func (g *GeometryIndex) removeGeometry(seg wire.Segment, line grid.Line) {
	m, key := g.bucket(line)
	list := m[key]
	for i, rc := range list {
		if rc.seg == seg {
			m[key] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// track records (or re-records) seg's current geometry.
func (g *GeometryIndex) track(seg wire.Segment, info segment.Info, inserted bool) {
	if old, ok := g.byAddr[seg]; ok {
		g.removeGeometry(seg, old.info.Line)
	}
	g.byAddr[seg] = &entry{seg: seg, info: info, inserted: inserted}
	g.insertGeometry(seg, info.Line)
}

// untrack removes all knowledge of seg.
func (g *GeometryIndex) untrack(seg wire.Segment) {
	if old, ok := g.byAddr[seg]; ok {
		g.removeGeometry(seg, old.info.Line)
		delete(g.byAddr, seg)
	}
}

// relabel moves the entry at old to new without touching geometry.
func (g *GeometryIndex) relabel(old, new wire.Segment) {
	e, ok := g.byAddr[old]
	if !ok {
		return
	}
	delete(g.byAddr, old)
	e.seg = new
	g.byAddr[new] = e
	m, key := g.bucket(e.info.Line)
	for _, rc := range m[key] {
		if rc.seg == old {
			rc.seg = new
		}
	}
}

func (g *GeometryIndex) setInserted(seg wire.Segment, inserted bool) {
	if e, ok := g.byAddr[seg]; ok {
		e.inserted = inserted
	}
}

func (g *GeometryIndex) setEndpoints(seg wire.Segment, ep grid.Endpoints) {
	if e, ok := g.byAddr[seg]; ok {
		e.info.Endpoints = ep
	}
}

// Handle is the single entry point GeometryIndex registers with the
// bus (via NewGeometryHook), dispatching on the message's dynamic
// type. It is exported directly (rather than via sim.Hook) so tests
// can drive the index without a real bus.
func (g *GeometryIndex) Handle(item any) {
	switch m := item.(type) {
	case message.Created:
		g.track(m.Segment, m.Info, wire.IsInserted(m.Segment.Wire))
	case message.IDUpdated:
		g.relabel(m.Old, m.New)
	case message.PartMoved:
		if m.DeleteSource {
			g.untrack(m.Source)
		} else {
			g.track(m.Source, m.SourceInfo, wire.IsInserted(m.Source.Wire))
		}
		if m.CreateDestination {
			g.track(m.Destination, m.DestInfo, wire.IsInserted(m.Destination.Wire))
		}
	case message.PartDeleted:
		// Full-segment deletes are reported via PartDeleted with a
		// part equal to the segment's own full span; the caller is
		// expected to have already relabeled survivors via
		// IDUpdated. Geometry-wise we simply stop tracking the
		// deleted address.
		g.untrack(m.Segment)
	case message.Inserted:
		g.setInserted(m.Segment, true)
	case message.Uninserted:
		g.setInserted(m.Segment, false)
	case message.EndpointsUpdated:
		g.setEndpoints(m.Segment, m.New)
	}
}

// QueryPoint implements Spatial.
func (g *GeometryIndex) QueryPoint(p grid.Point) []wire.Segment {
	var out []wire.Segment
	for _, rc := range g.rows[p.Y] {
		if p.X >= rc.begin && p.X <= rc.end {
			out = append(out, rc.seg)
		}
	}
	for _, rc := range g.cols[p.X] {
		if p.Y >= rc.begin && p.Y <= rc.end {
			out = append(out, rc.seg)
		}
	}
	if len(out) > 4 {
		out = out[:4]
	}
	return out
}

// GetFirstWire implements Collision.
func (g *GeometryIndex) GetFirstWire(point grid.Point) (wire.ID, bool) {
	for _, seg := range g.QueryPoint(point) {
		if e := g.byAddr[seg]; e != nil && e.inserted {
			return seg.Wire, true
		}
	}
	return 0, false
}

// IsColliding implements Collision.
func (g *GeometryIndex) IsColliding(line grid.Line) bool {
	m, key := g.bucket(line)
	var begin, end grid.Coord
	if line.Orientation() == grid.Horizontal {
		begin, end = line.P0.X, line.P1.X
	} else {
		begin, end = line.P0.Y, line.P1.Y
	}
	for _, rc := range m[key] {
		if e := g.byAddr[rc.seg]; e == nil || !e.inserted {
			continue
		}
		if rc.begin < end && begin < rc.end {
			return true
		}
	}
	return false
}

// insertedSegmentsAt returns the distinct inserted wires and the
// number of inserted segments incident to point.
func (g *GeometryIndex) insertedSegmentsAt(point grid.Point) (segs []wire.Segment, wires map[wire.ID]bool) {
	wires = make(map[wire.ID]bool)
	for _, seg := range g.QueryPoint(point) {
		e := g.byAddr[seg]
		if e == nil || !e.inserted {
			continue
		}
		segs = append(segs, seg)
		wires[seg.Wire] = true
	}
	return segs, wires
}

// inputCountOfWire counts the Input-tagged endpoints among the
// segments currently tracked for id.
func (g *GeometryIndex) inputCountOfWire(id wire.ID) int {
	n := 0
	for seg, e := range g.byAddr {
		if seg.Wire != id {
			continue
		}
		if e.info.Endpoints.P0Type == grid.Input {
			n++
		}
		if e.info.Endpoints.P1Type == grid.Input {
			n++
		}
	}
	return n
}

// IsWiresCrossing implements Collision. Two wires crossing at point is
// only a valid merge candidate when the merged tree would still carry
// at most one input (spec.md §4.8).
func (g *GeometryIndex) IsWiresCrossing(point grid.Point) bool {
	segs, wires := g.insertedSegmentsAt(point)
	if len(wires) != 2 || len(segs) != 2 {
		return false
	}
	for _, seg := range segs {
		e := g.byAddr[seg]
		if e.info.Line.P0.Equal(point) || e.info.Line.P1.Equal(point) {
			return false // must pass through, not terminate
		}
	}
	totalInputs := 0
	for id := range wires {
		totalInputs += g.inputCountOfWire(id)
	}
	if totalInputs > 1 {
		return false
	}
	return true
}

// IsWireCrossPoint implements Collision.
func (g *GeometryIndex) IsWireCrossPoint(point grid.Point) bool {
	segs, wires := g.insertedSegmentsAt(point)
	if len(wires) != 1 {
		return false
	}
	for _, seg := range segs {
		e := g.byAddr[seg]
		if e.info.Endpoints.TypeAtIfEndpoint(e.info.Line, point) == grid.Cross {
			return true
		}
	}
	return false
}

// Query implements Collision.
func (g *GeometryIndex) Query(point grid.Point) CollisionQuery {
	segs, wires := g.insertedSegmentsAt(point)
	q := CollisionQuery{}
	if len(segs) >= 3 {
		q.IsWireConnection = true
		q.IsWireCrossPoint = len(wires) == 1
	} else if len(segs) == 2 {
		q.IsWireConnection = true
		if len(wires) == 1 {
			q.IsWireCornerPoint = true
		}
	}
	return q
}
