package check

import (
	"sort"

	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/segment"
)

// axisKey identifies one infinite orthogonal line: its orientation and
// the coordinate that stays fixed along it.
type axisKey struct {
	horizontal bool
	fixed      grid.Coord
}

func keyOf(l grid.Line) axisKey {
	if l.Orientation() == grid.Horizontal {
		return axisKey{horizontal: true, fixed: l.P0.Y}
	}
	return axisKey{horizontal: false, fixed: l.P0.X}
}

// span is a merged run of collinear segments, [lo, hi] in the shared
// axis's free coordinate.
type span struct {
	lo, hi grid.Coord
}

func (a axisKey) lineOf(s span) grid.Line {
	if a.horizontal {
		return grid.NewLine(grid.Point{X: s.lo, Y: a.fixed}, grid.Point{X: s.hi, Y: a.fixed})
	}
	return grid.NewLine(grid.Point{X: a.fixed, Y: s.lo}, grid.Point{X: a.fixed, Y: s.hi})
}

func (a axisKey) freeCoord(p grid.Point) grid.Coord {
	if a.horizontal {
		return p.X
	}
	return p.Y
}

// Normalize merges colinear overlapping or touching segments of t and
// splits at every point that is an endpoint of at least one merged span
// or an interior crossing of two merged spans (spec.md §4.9: "Segment
// normalization is computed by merging colinear overlapping lines,
// then splitting at each point that is an endpoint of at least one
// segment or an interior crossing of two"). Endpoint tags on the
// result are not meaningful; callers that need the normalized
// geometry's own endpoints recompute them via fix_and_merge_segments.
func Normalize(t *segment.Tree) *segment.Tree {
	groups := make(map[axisKey][]span)
	allPoints := make(map[grid.Point]bool)

	for i := 0; i < t.Len(); i++ {
		line := t.Info(grid.Index(i)).Line
		k := keyOf(line)
		lo, hi := k.freeCoord(line.P0), k.freeCoord(line.P1)
		if lo > hi {
			lo, hi = hi, lo
		}
		groups[k] = append(groups[k], span{lo: lo, hi: hi})
	}

	merged := make(map[axisKey][]span, len(groups))
	for k, spans := range groups {
		merged[k] = mergeSpans(spans)
	}
	for k, spans := range merged {
		for _, s := range spans {
			line := k.lineOf(s)
			allPoints[line.P0] = true
			allPoints[line.P1] = true
		}
	}

	out := segment.New()
	for k, spans := range merged {
		for _, s := range spans {
			line := k.lineOf(s)
			cuts := cutPointsOn(k, s, merged, allPoints)
			pieces := splitAt(line, cuts)
			for _, piece := range pieces {
				ends := grid.Endpoints{P0Type: grid.Shadow, P1Type: grid.Shadow}
				out.AddSegment(segment.Info{Line: piece, Endpoints: ends})
			}
		}
	}
	return out
}

// mergeSpans merges overlapping or touching spans on the same axis
// into maximal runs.
func mergeSpans(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })
	var out []span
	for _, s := range spans {
		if len(out) > 0 && s.lo <= out[len(out)-1].hi {
			if s.hi > out[len(out)-1].hi {
				out[len(out)-1].hi = s.hi
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

// cutPointsOn finds every offset strictly interior to k's span s where
// a split is required: an endpoint of another merged span, or a
// crossing with a perpendicular merged span.
func cutPointsOn(k axisKey, s span, merged map[axisKey][]span, spanEndpoints map[grid.Point]bool) []grid.Coord {
	var cuts []grid.Coord
	line := k.lineOf(s)
	for p := range spanEndpoints {
		if !line.Contains(p) {
			continue
		}
		c := k.freeCoord(p)
		if c > s.lo && c < s.hi {
			cuts = append(cuts, c)
		}
	}
	for ok, spans := range merged {
		if ok.horizontal == k.horizontal {
			continue
		}
		for _, o := range spans {
			// o is perpendicular: its fixed coordinate is the
			// candidate crossing point's coordinate on k's axis, and
			// k's fixed coordinate must fall inside o's own span.
			c := ok.fixed
			if c <= s.lo || c >= s.hi {
				continue
			}
			if k.fixed > o.lo && k.fixed < o.hi {
				cuts = append(cuts, c)
			}
		}
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i] < cuts[j] })
	return dedupCoords(cuts)
}

func dedupCoords(cs []grid.Coord) []grid.Coord {
	var out []grid.Coord
	for i, c := range cs {
		if i == 0 || c != cs[i-1] {
			out = append(out, c)
		}
	}
	return out
}

// splitAt cuts line into consecutive pieces at each interior coord in
// cuts (already sorted, already filtered to line's interior).
func splitAt(line grid.Line, cuts []grid.Coord) []grid.Line {
	if len(cuts) == 0 {
		return []grid.Line{line}
	}
	k := keyOf(line)
	boundaries := []grid.Point{line.P0}
	for _, c := range cuts {
		if k.horizontal {
			boundaries = append(boundaries, grid.Point{X: c, Y: k.fixed})
		} else {
			boundaries = append(boundaries, grid.Point{X: k.fixed, Y: c})
		}
	}
	boundaries = append(boundaries, line.P1)

	pieces := make([]grid.Line, 0, len(boundaries)-1)
	for i := 0; i < len(boundaries)-1; i++ {
		pieces = append(pieces, grid.NewLine(boundaries[i], boundaries[i+1]))
	}
	return pieces
}
