package grid

import (
	"fmt"
	"sort"
)

// PartSet is a disjoint, sorted set of Parts of one line — the
// representation of a segment's valid_parts (spec.md §3). It
// maintains P3: every member lies inside the segment's full part,
// members are pairwise disjoint, and they stay sorted by Begin.
type PartSet struct {
	parts []Part
}

// Parts returns the set's members in sorted order. The returned slice
// must not be mutated by the caller.
func (s *PartSet) Parts() []Part {
	return s.parts
}

// Contains reports whether p lies entirely inside some member.
func (s *PartSet) Contains(p Part) bool {
	i := s.indexNotBefore(p.Begin)
	return i < len(s.parts) && p.Contains(s.parts[i])
}

// OverlapsAny reports whether p overlaps any member of the set.
func (s *PartSet) OverlapsAny(p Part) bool {
	i := s.indexNotBefore(p.Begin)
	if i > 0 && s.parts[i-1].Overlaps(p) {
		return true
	}
	return i < len(s.parts) && s.parts[i].Overlaps(p)
}

// indexNotBefore returns the index of the first member whose End is
// greater than begin (i.e. the first member that could possibly
// contain or overlap a part starting at begin).
func (s *PartSet) indexNotBefore(begin Offset) int {
	return sort.Search(len(s.parts), func(i int) bool {
		return s.parts[i].End > begin
	})
}

// Mark adds p to the set (mark_valid), merging it with any adjacent or
// overlapping members so the disjointness invariant holds.
func (s *PartSet) Mark(p Part) {
	if !p.valid() {
		panic(fmt.Sprintf("grid: cannot mark invalid part %v", p))
	}
	merged := Part{Begin: p.Begin, End: p.End}
	out := s.parts[:0:0]
	inserted := false
	for _, o := range s.parts {
		if o.End < merged.Begin {
			out = append(out, o)
			continue
		}
		if o.Begin > merged.End {
			if !inserted {
				out = append(out, merged)
				inserted = true
			}
			out = append(out, o)
			continue
		}
		// o touches or overlaps merged: fold it in.
		if o.Begin < merged.Begin {
			merged.Begin = o.Begin
		}
		if o.End > merged.End {
			merged.End = o.End
		}
	}
	if !inserted {
		out = append(out, merged)
	}
	s.parts = out
}

// Unmark removes p from the set (unmark_valid). p need not align with
// existing member boundaries: members overlapping p are trimmed or
// split (via DifferenceTouchingOneSide/DifferenceNotTouching) so the
// result remains the set minus p.
func (s *PartSet) Unmark(p Part) {
	if !p.valid() {
		panic(fmt.Sprintf("grid: cannot unmark invalid part %v", p))
	}
	var out []Part
	for _, o := range s.parts {
		if !o.Overlaps(p) {
			out = append(out, o)
			continue
		}
		switch {
		case o.Contains(p):
			// o fully removed.
		case p.NotTouching(o):
			left, right := DifferenceNotTouching(o, p)
			out = append(out, left, right)
		case p.TouchingOneSide(o):
			out = append(out, DifferenceTouchingOneSide(o, p))
		default:
			// p and o partially overlap without one containing the
			// other: trim o down to the piece outside p.
			if o.Begin < p.Begin {
				out = append(out, Part{Begin: o.Begin, End: p.Begin})
			}
			if o.End > p.End {
				out = append(out, Part{Begin: p.End, End: o.End})
			}
		}
	}
	s.parts = out
}

// Shrink narrows the set to its intersection with kept, dropping
// members (or the parts of members) outside kept. Used when a segment
// is shrunk to a kept sub-range (spec.md §4.2 shrink_segment).
func (s *PartSet) Shrink(kept Part) {
	var out []Part
	for _, o := range s.parts {
		if !o.Overlaps(kept) {
			continue
		}
		begin, end := o.Begin, o.End
		if begin < kept.Begin {
			begin = kept.Begin
		}
		if end > kept.End {
			end = kept.End
		}
		out = append(out, Part{Begin: begin, End: end})
	}
	s.parts = out
}

// Translate shifts every member by delta offset units, used when a
// kept remainder is relocated onto new coordinates after a shrink.
func (s *PartSet) Translate(delta Offset) {
	for i := range s.parts {
		s.parts[i].Begin += delta
		s.parts[i].End += delta
	}
}

// Union appends o's members into the set, used by
// swap_and_merge_segment's valid_parts union. The two sets must
// already be expressed in the merged segment's coordinate space.
func (s *PartSet) Union(o *PartSet) {
	for _, p := range o.parts {
		s.Mark(p)
	}
}

// Clone returns an independent copy of s.
func (s *PartSet) Clone() *PartSet {
	c := &PartSet{parts: make([]Part, len(s.parts))}
	copy(c.parts, s.parts)
	return c
}

// Empty reports whether the set has no members.
func (s *PartSet) Empty() bool {
	return len(s.parts) == 0
}
