// Package wire implements the wire table: an ordered collection of
// wires indexed by wire_id, where id 0 is the temporary aggregate, id
// 1 is the colliding aggregate, and ids >= 2 are inserted trees
// (spec.md §2.4/§3).
package wire

import (
	"fmt"

	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/segment"
)

// ID is wire_id_t.
type ID int

const (
	// Temporary is the aggregate wire holding not-yet-committed
	// segments.
	Temporary ID = 0
	// Colliding is the aggregate wire holding segments that collide
	// with existing circuitry.
	Colliding ID = 1
	// FirstInserted is the smallest id an inserted wire can have.
	FirstInserted ID = 2
)

// IsInserted reports whether id denotes an inserted wire (id >= 2), as
// opposed to one of the two sentinel aggregates.
func IsInserted(id ID) bool {
	return id >= FirstInserted
}

// Segment addresses one segment anywhere in the table (segment_t).
type Segment struct {
	Wire  ID
	Index grid.Index
}

// Part pairs a Segment with a sub-range of its line (segment_part_t).
type Part struct {
	Segment Segment
	Part    grid.Part
}

// Table is the wire table. Index 0 and 1 always exist and hold the
// two aggregate trees; inserted wires occupy indices 2.. and are never
// left empty (an emptied inserted wire is deleted via
// SwapAndDeleteWire).
type Table struct {
	trees []*segment.Tree
}

// NewTable returns a table pre-populated with the temporary and
// colliding aggregates.
func NewTable() *Table {
	return &Table{trees: []*segment.Tree{segment.New(), segment.New()}}
}

// Tree returns the segment tree for id. Panics if id does not exist
// (argument violation).
func (t *Table) Tree(id ID) *segment.Tree {
	if int(id) < 0 || int(id) >= len(t.trees) {
		panic(fmt.Sprintf("wire: no such wire id %d", id))
	}
	return t.trees[id]
}

// Len returns the number of wires in the table, including the two
// aggregates.
func (t *Table) Len() int {
	return len(t.trees)
}

// InsertedIDs returns the ids of all inserted wires (>= 2), in table
// order.
func (t *Table) InsertedIDs() []ID {
	ids := make([]ID, 0, len(t.trees)-2)
	for id := FirstInserted; int(id) < len(t.trees); id++ {
		ids = append(ids, id)
	}
	return ids
}

// AddWire appends a new, empty inserted wire and returns its id
// (add_wire).
func (t *Table) AddWire() ID {
	id := ID(len(t.trees))
	t.trees = append(t.trees, segment.New())
	return id
}

// SwapAndDeleteWire removes the inserted wire id by swapping the last
// wire into its slot and popping (swap_and_delete_empty_wire). id must
// be an inserted wire whose tree is empty; both are argument
// violations if broken. Returns the id that used to be last (so the
// caller can message every index that held a reference to it) and
// whether a swap actually happened (false if id was already last).
func (t *Table) SwapAndDeleteWire(id ID) (movedFrom ID, moved bool) {
	if !IsInserted(id) {
		panic(fmt.Sprintf("wire: cannot delete aggregate wire %d", id))
	}
	if t.trees[id].Len() != 0 {
		panic(fmt.Sprintf("wire: cannot delete non-empty wire %d", id))
	}
	last := ID(len(t.trees) - 1)
	if id != last {
		t.trees[id] = t.trees[last]
		moved = true
		movedFrom = last
	}
	t.trees = t.trees[:last]
	return movedFrom, moved
}
