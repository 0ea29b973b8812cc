package index

import "github.com/sarchlab/wiregrid/grid"

// SplitPointIndex is the default SplitPoints implementation, grounded
// on original_source/src/editable_circuit/caches/split_point_cache.h:
// a point -> candidate-split-point cache, queried per line so
// split_temporary_before_insert does not have to rescan the whole
// selection for every line it considers (spec.md §4.8).
type SplitPointIndex struct {
	points map[grid.Point]bool
}

// NewSplitPointIndex returns an empty index.
func NewSplitPointIndex() *SplitPointIndex {
	return &SplitPointIndex{points: make(map[grid.Point]bool)}
}

// Add registers point as a split candidate. line is accepted for
// interface symmetry with PointsOn but is not otherwise needed by this
// implementation, since membership is purely point-based.
func (s *SplitPointIndex) Add(line grid.Line, point grid.Point) {
	_ = line
	s.points[point] = true
}

// PointsOn returns every registered split point that lies strictly
// inside line, sorted by offset from line.P0.
func (s *SplitPointIndex) PointsOn(line grid.Line) []grid.Point {
	full := line.FullPart()
	var out []grid.Point
	for p := range s.points {
		if !line.Contains(p) {
			continue
		}
		off := line.OffsetOf(p)
		if off <= full.Begin || off >= full.End {
			continue // endpoints are not split points
		}
		out = append(out, p)
	}
	sortPointsByOffset(out, line)
	return out
}

// Clear empties the index.
func (s *SplitPointIndex) Clear() {
	s.points = make(map[grid.Point]bool)
}

func sortPointsByOffset(pts []grid.Point, line grid.Line) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && line.OffsetOf(pts[j-1]) > line.OffsetOf(pts[j]); j-- {
			pts[j-1], pts[j] = pts[j], pts[j-1]
		}
	}
}
