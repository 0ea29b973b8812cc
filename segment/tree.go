// Package segment implements the per-wire SegmentTree: a flat
// container of segment records, each with its line, endpoint-type
// tags, and its valid_parts sub-range set (spec.md §2.3/§4.2).
package segment

import (
	"fmt"

	"github.com/sarchlab/wiregrid/grid"
)

// Info is segment_info_t: a line plus its two endpoint-type tags.
type Info struct {
	Line      grid.Line
	Endpoints grid.Endpoints
}

// record is the tree's internal per-segment storage.
type record struct {
	info  Info
	valid grid.PartSet
	key   grid.SegmentKey
}

// Tree is the SegmentTree of one wire. It is a flat, append/swap-
// delete container; Tree does not know which wire it belongs to or
// what wire_id means (that is the wire package's concern) — it only
// maintains the per-tree invariants of spec.md §3: non-overlapping
// lines, at most one Input endpoint, and a coherent input counter.
type Tree struct {
	records      []record
	inputCount   int
	inputIndex   grid.Index
	outputCount  int
}

// New returns an empty segment tree.
func New() *Tree {
	return &Tree{inputIndex: -1}
}

// Len returns the number of segments currently stored.
func (t *Tree) Len() int {
	return len(t.records)
}

// Info returns the segment_info_t stored at index i.
func (t *Tree) Info(i grid.Index) Info {
	return t.records[i].info
}

// Key returns the stable key of the segment at index i.
func (t *Tree) Key(i grid.Index) grid.SegmentKey {
	return t.records[i].key
}

// ValidParts returns the valid_parts set of the segment at index i.
// The returned pointer aliases the tree's own storage and may be
// mutated in place via MarkValid/UnmarkValid below, but callers must
// not hold onto it across any operation that might swap-delete i.
func (t *Tree) ValidParts(i grid.Index) *grid.PartSet {
	return &t.records[i].valid
}

// InputCount is the cached input_count counter (P5: must stay 0 or 1).
func (t *Tree) InputCount() int {
	return t.inputCount
}

// OutputCount is the cached output count.
func (t *Tree) OutputCount() int {
	return t.outputCount
}

// InputIndex returns the index of the segment holding the tree's
// single Input endpoint, or -1 if none.
func (t *Tree) InputIndex() grid.Index {
	return t.inputIndex
}

func countDelta(e grid.Endpoints, want grid.PointType) int {
	n := 0
	if e.P0Type == want {
		n++
	}
	if e.P1Type == want {
		n++
	}
	return n
}

func (t *Tree) applyCounters(old, new grid.Endpoints, idx grid.Index) {
	t.inputCount += countDelta(new, grid.Input) - countDelta(old, grid.Input)
	t.outputCount += countDelta(new, grid.Output) - countDelta(old, grid.Output)
	if t.inputCount < 0 || t.inputCount > 1 {
		panic(fmt.Sprintf("segment: input_count invariant violated: %d", t.inputCount))
	}
	if countDelta(new, grid.Input) > 0 {
		t.inputIndex = idx
	} else if t.inputIndex == idx && countDelta(old, grid.Input) > 0 {
		t.inputIndex = -1
	}
}

// AddSegment appends a new segment and returns its index
// (add_segment).
func (t *Tree) AddSegment(info Info) grid.Index {
	return t.addSegmentWithKey(info, grid.NewSegmentKey())
}

// AddSegmentWithKey is AddSegment but assigns a caller-supplied key
// instead of minting a fresh one; used when a primitive must preserve
// a specific key across a copy (spec.md §4.3's key-migration rules).
func (t *Tree) AddSegmentWithKey(info Info, key grid.SegmentKey) grid.Index {
	return t.addSegmentWithKey(info, key)
}

func (t *Tree) addSegmentWithKey(info Info, key grid.SegmentKey) grid.Index {
	idx := grid.Index(len(t.records))
	t.records = append(t.records, record{info: info, key: key})
	t.applyCounters(grid.Endpoints{}, info.Endpoints, idx)
	return idx
}

// SwapAndDeleteSegment removes the segment at index i by swapping the
// last segment into its place and popping (spec.md §4.2
// swap_and_delete_segment). It returns the index that the former last
// segment now occupies (i itself, unless i was already the last
// index, in which case there is nothing to report) and whether a swap
// actually moved a segment (false when i was the last element).
func (t *Tree) SwapAndDeleteSegment(i grid.Index) (movedFrom grid.Index, moved bool) {
	last := grid.Index(len(t.records) - 1)
	removed := t.records[i]
	t.applyCounters(removed.info.Endpoints, grid.Endpoints{}, i)

	if i != last {
		t.records[i] = t.records[last]
		if t.inputIndex == last {
			t.inputIndex = i
		}
		moved = true
		movedFrom = last
	}
	t.records = t.records[:last]
	return movedFrom, moved
}

// CopySegment appends a new segment equal to the source segment at
// srcIndex (optionally sliced to srcPart), with sliced endpoints
// forced to Shadow (spec.md §4.2 copy_segment). Passing a nil part
// copies the segment in full, preserving its endpoint tags.
func (t *Tree) CopySegment(src *Tree, srcIndex grid.Index, srcPart *grid.Part) grid.Index {
	rec := src.records[srcIndex]
	if srcPart == nil {
		idx := t.addSegmentWithKey(rec.info, grid.NewSegmentKey())
		*t.ValidParts(idx) = *rec.valid.Clone()
		return idx
	}

	full := rec.info.Line.FullPart()
	line := rec.info.Line.Sub(*srcPart)
	ends := grid.Endpoints{P0Type: grid.Shadow, P1Type: grid.Shadow}
	if srcPart.Begin == full.Begin {
		ends.P0Type = rec.info.Endpoints.P0Type
	}
	if srcPart.End == full.End {
		ends.P1Type = rec.info.Endpoints.P1Type
	}
	idx := t.addSegmentWithKey(Info{Line: line, Endpoints: ends}, grid.NewSegmentKey())
	sliced := rec.valid.Clone()
	sliced.Shrink(*srcPart)
	sliced.Translate(-srcPart.Begin)
	*t.ValidParts(idx) = *sliced
	return idx
}

// ShrinkSegment narrows the segment at i to kept, which must be inside
// its current full part (spec.md §4.2 shrink_segment). Endpoints
// outside kept become Shadow unless the full original span was
// retained on that side; valid_parts is intersected with kept and
// re-based to the new line's own offsets.
func (t *Tree) ShrinkSegment(i grid.Index, kept grid.Part) {
	rec := &t.records[i]
	full := rec.info.Line.FullPart()
	if !kept.Contains(full) {
		panic(fmt.Sprintf("segment: kept part %v is not inside %v", kept, full))
	}

	newEnds := grid.Endpoints{P0Type: grid.Shadow, P1Type: grid.Shadow}
	if kept.Begin == full.Begin {
		newEnds.P0Type = rec.info.Endpoints.P0Type
	}
	if kept.End == full.End {
		newEnds.P1Type = rec.info.Endpoints.P1Type
	}

	newLine := rec.info.Line.Sub(kept)
	oldEnds := rec.info.Endpoints
	rec.info = Info{Line: newLine, Endpoints: newEnds}
	t.applyCounters(oldEnds, newEnds, i)

	rec.valid.Shrink(kept)
	rec.valid.Translate(-kept.Begin)
}

// UpdateSegment replaces the info at i with newInfo, which must have
// the same line, and recomputes the input/output counters (spec.md
// §4.2 update_segment). Used for endpoint-type changes that do not
// move or resize the segment.
func (t *Tree) UpdateSegment(i grid.Index, newInfo Info) {
	if newInfo.Line != t.records[i].info.Line {
		panic("segment: UpdateSegment must not change the line; use ShrinkSegment/move instead")
	}
	old := t.records[i].info.Endpoints
	t.records[i].info.Endpoints = newInfo.Endpoints
	t.applyCounters(old, newInfo.Endpoints, i)
}

// SetLine relocates the segment at i to a new line of the same length
// and orientation, preserving endpoint tags and valid_parts layout.
// Used by move_or_delete_temporary_wire's translation step.
func (t *Tree) SetLine(i grid.Index, newLine grid.Line) {
	t.records[i].info.Line = newLine
}

// MarkValid adds part to the valid_parts set of the segment at i
// (spec.md §4.2 mark_valid).
func (t *Tree) MarkValid(i grid.Index, part grid.Part) {
	t.records[i].valid.Mark(part)
}

// UnmarkValid removes part from the valid_parts set of the segment at
// i (spec.md §4.2 unmark_valid).
func (t *Tree) UnmarkValid(i grid.Index, part grid.Part) {
	t.records[i].valid.Unmark(part)
}

// SwapAndMergeSegment merges the segment at remove into the segment at
// keep (spec.md §4.2 swap_and_merge_segment): the two must be
// collinear and touch. The resulting segment occupies their union,
// with endpoint types taken from the two non-shared ends and
// valid_parts unioned (re-based into the merged line's coordinates).
// remove is then swap-deleted. Returns the index the merged segment
// now lives at (keep, adjusted if remove's swap moved it) and the
// swap-delete report for the caller to emit id-updated messages.
func (t *Tree) SwapAndMergeSegment(keep, remove grid.Index) (mergedAt grid.Index, movedFrom grid.Index, moved bool) {
	k := t.records[keep]
	r := t.records[remove]
	if !k.info.Line.Touches(r.info.Line) {
		panic(fmt.Sprintf("segment: cannot merge non-touching lines %v and %v", k.info.Line, r.info.Line))
	}

	var mergedP0, mergedP1 grid.Point
	var p0Type, p1Type grid.PointType
	if k.info.Line.P1.Equal(r.info.Line.P0) {
		mergedP0, p0Type = k.info.Line.P0, k.info.Endpoints.P0Type
		mergedP1, p1Type = r.info.Line.P1, r.info.Endpoints.P1Type
	} else if r.info.Line.P1.Equal(k.info.Line.P0) {
		mergedP0, p0Type = r.info.Line.P0, r.info.Endpoints.P0Type
		mergedP1, p1Type = k.info.Line.P1, k.info.Endpoints.P1Type
	} else {
		panic(fmt.Sprintf("segment: %v and %v do not share an endpoint", k.info.Line, r.info.Line))
	}

	mergedLine := grid.NewLine(mergedP0, mergedP1)
	rebase := func(ps *grid.PartSet, srcLine grid.Line) *grid.PartSet {
		offset := grid.Offset(0)
		if srcLine.P0 != mergedLine.P0 {
			offset = mergedLine.OffsetOf(srcLine.P0)
		}
		c := ps.Clone()
		c.Translate(offset)
		return c
	}

	merged := rebase(&k.valid, k.info.Line)
	merged.Union(rebase(&r.valid, r.info.Line))

	oldEnds := t.records[keep].info.Endpoints
	newEnds := grid.Endpoints{P0Type: p0Type, P1Type: p1Type}
	t.records[keep].info = Info{Line: mergedLine, Endpoints: newEnds}
	t.records[keep].valid = *merged
	t.applyCounters(oldEnds, newEnds, keep)

	movedFrom, moved = t.SwapAndDeleteSegment(remove)
	mergedAt = keep
	if moved && movedFrom == keep {
		// keep was the last record and got swapped into remove's slot
		// by the delete above: the merged segment now lives at remove.
		mergedAt = remove
	}
	return mergedAt, movedFrom, moved
}

// AddTree appends all of other's segments to the end of t
// (add_tree), used to fold an aggregate or a to-be-deleted inserted
// wire's segments into another tree.
func (t *Tree) AddTree(other *Tree) []grid.Index {
	newIdx := make([]grid.Index, other.Len())
	for i := range other.records {
		rec := other.records[i]
		idx := t.addSegmentWithKey(rec.info, rec.key)
		*t.ValidParts(idx) = *rec.valid.Clone()
		newIdx[i] = idx
	}
	return newIdx
}
