// Package check implements the invariant checker of spec.md §4.9:
// is_contiguous_tree_with_correct_endpoints, plus the segment
// normalization (merge then split) it depends on. Grounded on
// original_source/src/core/tree_normalization.cpp's two-phase
// normalize-then-validate shape; expressed here as pure functions over
// a segment.Tree so it can run standalone in tests as well as from
// circuit's public operations.
package check

import (
	"fmt"

	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/segment"
)

// Violation is one way a tree fails the invariant checker, reported
// rather than panicked so callers (and tests) can inspect what broke.
type Violation struct {
	Reason string
}

func (v Violation) Error() string { return v.Reason }

// IsContiguousTreeWithCorrectEndpoints runs spec.md §4.9's checks
// against t and returns every violation found (nil if t is valid).
// inserted distinguishes an inserted wire's stricter endpoint rules
// from the two aggregate trees, whose endpoints are expected to be
// all Shadow except cross-points created by regularization.
func IsContiguousTreeWithCorrectEndpoints(t *segment.Tree, inserted bool) []Violation {
	var violations []Violation

	adj, degree := buildAdjacency(t)

	if t.Len() > 0 && !isConnected(t, adj) {
		violations = append(violations, Violation{"tree is not connected"})
	}
	if hasCycle(t, adj) {
		violations = append(violations, Violation{"tree is not acyclic"})
	}

	inputCount := 0
	for i := 0; i < t.Len(); i++ {
		info := t.Info(grid.Index(i))
		for _, p := range [2]grid.Point{info.Line.P0, info.Line.P1} {
			d := degree[p]
			tag := info.Endpoints.TypeAt(info.Line, p)
			if tag == grid.Unknown {
				violations = append(violations, Violation{fmt.Sprintf("%v has an unresolved endpoint tag at %v", info.Line, p)})
				continue
			}
			if !inserted {
				continue
			}
			switch {
			case d == 1:
				if tag != grid.Input && tag != grid.Output {
					violations = append(violations, Violation{fmt.Sprintf("leaf %v must be input or output, got %v", p, tag)})
				}
				if tag == grid.Input {
					inputCount++
				}
			case d == 2:
				// One of the two incident segments must carry
				// Corner at p, the other Shadow; checked once from
				// the corner side below via countCornerTags.
			default:
				// degree >= 3: exactly one incident segment carries
				// Cross at p, checked via countCrossTags below.
			}
		}
	}
	if inputCount > 1 {
		violations = append(violations, Violation{fmt.Sprintf("tree has %d input endpoints, at most 1 allowed", inputCount)})
	}

	if inserted {
		violations = append(violations, checkJunctionTags(t, degree)...)
	}

	violations = append(violations, checkNormalized(t)...)

	return violations
}

// buildAdjacency returns, for every grid point touched by a segment
// endpoint, the indices of segments incident to it, plus each point's
// degree (count of incident segment-ends).
func buildAdjacency(t *segment.Tree) (map[grid.Point][]grid.Index, map[grid.Point]int) {
	adj := make(map[grid.Point][]grid.Index)
	degree := make(map[grid.Point]int)
	for i := 0; i < t.Len(); i++ {
		line := t.Info(grid.Index(i)).Line
		for _, p := range [2]grid.Point{line.P0, line.P1} {
			adj[p] = append(adj[p], grid.Index(i))
			degree[p]++
		}
	}
	return adj, degree
}

// isConnected walks the segment-adjacency graph from segment 0 and
// reports whether every segment is reachable.
func isConnected(t *segment.Tree, adj map[grid.Point][]grid.Index) bool {
	visited := make(map[grid.Index]bool, t.Len())
	queue := []grid.Index{0}
	visited[0] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		line := t.Info(cur).Line
		for _, p := range [2]grid.Point{line.P0, line.P1} {
			for _, idx := range adj[p] {
				if !visited[idx] {
					visited[idx] = true
					queue = append(queue, idx)
				}
			}
		}
	}
	return len(visited) == t.Len()
}

// hasCycle reports whether the segment-adjacency graph contains a
// cycle by comparing the total segment (edge) count with the total
// endpoint (vertex) count over the whole graph: a connected tree has
// exactly vertices-1 edges. Components are not counted separately, so
// on a disconnected graph a cycle can go unreported.
func hasCycle(t *segment.Tree, adj map[grid.Point][]grid.Index) bool {
	return len(adj) > 0 && t.Len() >= len(adj)
}

// checkJunctionTags verifies the corner/cross endpoint-tag rules: at
// each degree-2 point exactly one incident segment is Corner and the
// other Shadow; at each degree->=3 point exactly one incident segment
// is Cross and the rest Shadow.
func checkJunctionTags(t *segment.Tree, degree map[grid.Point]int) []Violation {
	var violations []Violation
	byPoint := make(map[grid.Point][]grid.PointType)
	for i := 0; i < t.Len(); i++ {
		info := t.Info(grid.Index(i))
		for _, p := range [2]grid.Point{info.Line.P0, info.Line.P1} {
			byPoint[p] = append(byPoint[p], info.Endpoints.TypeAt(info.Line, p))
		}
	}
	for p, d := range degree {
		tags := byPoint[p]
		switch {
		case d == 2:
			if count(tags, grid.Corner) != 1 || count(tags, grid.Shadow) != 1 {
				violations = append(violations, Violation{fmt.Sprintf("corner at %v must be exactly one Corner and one Shadow, got %v", p, tags)})
			}
		case d >= 3:
			if count(tags, grid.Cross) != 1 || count(tags, grid.Shadow) != d-1 {
				violations = append(violations, Violation{fmt.Sprintf("junction at %v must be exactly one Cross and the rest Shadow, got %v", p, tags)})
			}
		}
	}
	return violations
}

func count(tags []grid.PointType, t grid.PointType) int {
	n := 0
	for _, x := range tags {
		if x == t {
			n++
		}
	}
	return n
}

// checkNormalized reports any pair of segments that should have been
// merged or split (spec.md §4.9's "no unmerged collinear pair, no
// unsplit through-point"), by re-running Normalize and comparing
// segment counts.
func checkNormalized(t *segment.Tree) []Violation {
	before := t.Len()
	normalized := Normalize(t)
	if normalized.Len() != before {
		return []Violation{{fmt.Sprintf("tree is not normalized: %d segments before, %d after", before, normalized.Len())}}
	}
	return nil
}
