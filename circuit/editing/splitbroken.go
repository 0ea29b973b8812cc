package editing

import (
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/wire"
)

// SplitBrokenTree is split_broken_tree (spec.md §2 overview's edit-wire
// detail list): called after a segment leaves an inserted wire and may
// have been the sole bridge holding it together. It walks the wire's
// segment-adjacency graph; if more than one connected component
// remains, every component but the first is relocated, one full
// segment at a time, into its own new inserted wire.
func (c *Context) SplitBrokenTree(id wire.ID) {
	if !wire.IsInserted(id) {
		return
	}
	for {
		tree := c.Table.Tree(id)
		n := tree.Len()
		if n <= 1 {
			return
		}
		reachable := c.connectedComponent(id, 0)
		if len(reachable) == n {
			return
		}

		outside := grid.Index(-1)
		for i := 0; i < n; i++ {
			if !reachable[grid.Index(i)] {
				outside = grid.Index(i)
				break
			}
		}

		newID := c.Table.AddWire()
		full := tree.Info(outside).Line.FullPart()
		sp := wire.Part{Segment: wire.Segment{Wire: id, Index: outside}, Part: full}
		c.MoveSegmentBetweenTrees(sp, newID, grid.NewSegmentKey())

		// The moved segment's own far endpoints may now each be a
		// free end of the new wire rather than part of a junction;
		// fix_and_merge_segments is not needed here since moveFull
		// carries the segment's endpoint tags unchanged.
		c.SplitBrokenTree(newID)
	}
}

// connectedComponent returns the set of indices in id's tree reachable
// from start by following shared endpoints (two segments are adjacent
// iff they touch at a point).
func (c *Context) connectedComponent(id wire.ID, start grid.Index) map[grid.Index]bool {
	tree := c.Table.Tree(id)
	n := tree.Len()
	visited := make(map[grid.Index]bool, n)
	queue := []grid.Index{start}
	visited[start] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curLine := tree.Info(cur).Line
		for i := 0; i < n; i++ {
			idx := grid.Index(i)
			if visited[idx] {
				continue
			}
			other := tree.Info(idx).Line
			if curLine.P0.Equal(other.P0) || curLine.P0.Equal(other.P1) ||
				curLine.P1.Equal(other.P0) || curLine.P1.Equal(other.P1) {
				visited[idx] = true
				queue = append(queue, idx)
			}
		}
	}
	return visited
}
