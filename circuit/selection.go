package circuit

import (
	"sort"

	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/wire"
)

// ToggleWireCrosspoint is toggle_wire_crosspoint (spec.md §4.8).
func (d *Data) ToggleWireCrosspoint(p grid.Point) {
	coll := d.ctx.Collision
	switch {
	case coll.IsWiresCrossing(p):
		d.connectCrossing(p)
	case coll.IsWireCrossPoint(p):
		d.disconnectCrossing(p)
	}
}

// connectCrossing handles the "wires crossing here" case: two
// disjoint inserted trees each pass straight through p without being
// electrically connected. Splitting both at p and merging their trees
// turns the geometric crossing into a connected cross-point.
func (d *Data) connectCrossing(p grid.Point) {
	segs := d.ctx.Spatial.QueryPoint(p)
	if len(segs) != 2 {
		return
	}

	wires := make(map[wire.ID]bool, 2)
	for _, s := range segs {
		d.ctx.SplitSegmentAt(s, p)
		wires[s.Wire] = true
	}
	if len(wires) != 2 {
		return
	}
	ids := make([]wire.ID, 0, 2)
	for id := range wires {
		ids = append(ids, id)
	}
	d.ctx.MergeAndDeleteTree(ids[0], ids[1])
	d.ctx.FixAndMergeSegments(p)
}

// disconnectCrossing handles the "cross point" case: a single tree
// has four segments meeting at p as a marked crossing. Merging the two
// straight-through pairs removes the junction; if p was the only link
// between what are now two independent loops, SplitBrokenTree divides
// the tree in two.
func (d *Data) disconnectCrossing(p grid.Point) {
	segs := d.ctx.Spatial.QueryPoint(p)
	if len(segs) != 4 {
		return
	}
	id := segs[0].Wire

	byAxis := map[bool][]wire.Segment{}
	for _, s := range segs {
		info := d.ctx.Info(s)
		horizontal := info.Line.Orientation() == grid.Horizontal
		byAxis[horizontal] = append(byAxis[horizontal], s)
	}
	for _, pair := range byAxis {
		if len(pair) != 2 {
			continue
		}
		d.ctx.MergeSegments(pair[0], pair[1])
	}
	d.ctx.SplitBrokenTree(id)
}

// endpointMapEntry is one grid point's incident selection segments,
// used by RegularizeTemporarySelection (spec.md §4.8).
type endpointMapEntry struct {
	point    grid.Point
	segments []wire.Segment
}

// RegularizeTemporarySelection is regularize_temporary_selection
// (spec.md §4.8). trueCrossPoints, if non-nil, are pre-split before
// the endpoint map is built. Returns the points marked as genuine
// cross-points.
func (d *Data) RegularizeTemporarySelection(selection []wire.Segment, trueCrossPoints []grid.Point) []grid.Point {
	for _, p := range trueCrossPoints {
		d.splitSelectionAt(selection, p)
	}

	endpointMap := d.buildEndpointMap(selection)

	var crossings []grid.Point
	trueSet := make(map[grid.Point]bool, len(trueCrossPoints))
	for _, p := range trueCrossPoints {
		trueSet[p] = true
	}

	type mergePair struct{ a, b wire.Segment }
	var toMerge []mergePair

	for _, entry := range endpointMap {
		n := len(entry.segments)
		if n != 3 && n != 4 {
			continue
		}
		if n == 3 || trueSet[entry.point] {
			ordered := d.ctx.OrderAllByDirection(entry.point, entry.segments)
			d.ctx.SetEndpointType(ordered[0], entry.point, grid.Cross)
			for _, s := range ordered[1:] {
				d.ctx.SetEndpointType(s, entry.point, grid.Shadow)
			}
			crossings = append(crossings, entry.point)
			continue
		}

		ordered := d.ctx.OrderAllByDirection(entry.point, entry.segments)
		// ordered is East, West, North, South per grid.FixAndMergeOrder:
		// pair (right,left) and (up,down).
		if len(ordered) == 4 {
			toMerge = append(toMerge, mergePair{ordered[0], ordered[1]})
			toMerge = append(toMerge, mergePair{ordered[2], ordered[3]})
		}
	}

	for _, m := range toMerge {
		if m.a.Wire == m.b.Wire {
			d.ctx.MergeSegments(m.a, m.b)
		}
	}

	sortPoints(crossings)
	return crossings
}

// splitSelectionAt splits whichever segment in selection contains p
// as an interior point.
func (d *Data) splitSelectionAt(selection []wire.Segment, p grid.Point) {
	for _, s := range selection {
		info := d.ctx.Info(s)
		if info.Line.Contains(p) && !info.Line.P0.Equal(p) && !info.Line.P1.Equal(p) {
			d.ctx.SplitSegmentAt(s, p)
			return
		}
	}
}

// buildEndpointMap groups selection by each grid point appearing as
// one of its segments' endpoints.
func (d *Data) buildEndpointMap(selection []wire.Segment) []endpointMapEntry {
	byPoint := map[grid.Point][]wire.Segment{}
	var order []grid.Point
	for _, s := range selection {
		info := d.ctx.Info(s)
		for _, p := range [2]grid.Point{info.Line.P0, info.Line.P1} {
			if _, ok := byPoint[p]; !ok {
				order = append(order, p)
			}
			byPoint[p] = append(byPoint[p], s)
		}
	}
	entries := make([]endpointMapEntry, 0, len(order))
	for _, p := range order {
		entries = append(entries, endpointMapEntry{point: p, segments: byPoint[p]})
	}
	return entries
}

// SplitTemporaryBeforeInsert is split_temporary_before_insert
// (spec.md §4.8): split_temporary_segments(selection,
// new-split-points(selection)).
func (d *Data) SplitTemporaryBeforeInsert(selection []wire.Segment) {
	points := d.newSplitPoints(selection)
	// Descending order so earlier splits never shift the offsets a
	// later split still needs to find.
	sort.Slice(points, func(i, j int) bool {
		return points[i].offset > points[j].offset
	})
	for _, sp := range points {
		d.ctx.SplitSegmentAt(sp.segment, sp.point)
	}
}

type splitCandidate struct {
	segment wire.Segment
	point   grid.Point
	offset  grid.Offset
}

// newSplitPoints finds every point strictly interior to a selection
// line where the collision index indicates a wire corner, connection,
// or cross.
func (d *Data) newSplitPoints(selection []wire.Segment) []splitCandidate {
	var out []splitCandidate
	for _, s := range selection {
		info := d.ctx.Info(s)
		full := info.Line.FullPart()
		for off := full.Begin + 1; off < full.End; off++ {
			p := info.Line.PointAt(off)
			q := d.ctx.Collision.Query(p)
			if q.IsWireCornerPoint || q.IsWireConnection || q.IsWireCrossPoint {
				out = append(out, splitCandidate{segment: s, point: p, offset: off})
			}
		}
	}
	return out
}

// GetInsertedCrossPoints is get_inserted_cross_points (spec.md §4.8):
// sorted unique grid points of selection's segments that are already
// marked Cross.
func (d *Data) GetInsertedCrossPoints(selection []wire.Segment) []grid.Point {
	seen := map[grid.Point]bool{}
	var out []grid.Point
	for _, s := range selection {
		info := d.ctx.Info(s)
		for _, p := range [2]grid.Point{info.Line.P0, info.Line.P1} {
			if info.Endpoints.TypeAt(info.Line, p) == grid.Cross && !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	sortPoints(out)
	return out
}

// GetTemporarySelectionSplitpoints is
// get_temporary_selection_splitpoints (spec.md §4.8): sorted unique
// grid points returned by newSplitPoints.
func (d *Data) GetTemporarySelectionSplitpoints(selection []wire.Segment) []grid.Point {
	seen := map[grid.Point]bool{}
	var out []grid.Point
	for _, c := range d.newSplitPoints(selection) {
		if !seen[c.point] {
			seen[c.point] = true
			out = append(out, c.point)
		}
	}
	sortPoints(out)
	return out
}

func sortPoints(pts []grid.Point) {
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
}
