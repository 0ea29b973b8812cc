package wire

import "github.com/sarchlab/wiregrid/grid"

// Mode is InsertionMode (spec.md §3's display-state table): the
// user-facing state a segment_part is in, derived from its wire kind
// and, for inserted wires, whether it falls inside valid_parts.
type Mode int

const (
	// ModeTemporary is the uncommitted aggregate's state.
	ModeTemporary Mode = iota
	// ModeCollisions covers both the colliding aggregate and the
	// valid (marked) portion of an inserted wire — both render as
	// "this is part of a committed, colliding-checked circuit".
	ModeCollisions
	// ModeInsertOrDiscard is the normal (unmarked) portion of an
	// inserted wire: the user is deciding whether to keep or discard
	// it.
	ModeInsertOrDiscard
)

func (m Mode) String() string {
	switch m {
	case ModeTemporary:
		return "Temporary"
	case ModeCollisions:
		return "Collisions"
	case ModeInsertOrDiscard:
		return "InsertOrDiscard"
	default:
		return "Mode(?)"
	}
}

// Modes returns the one or two InsertionMode values sp.Part spans
// (spec.md §3's "a segment_part may straddle the valid/normal
// boundary; in that case its pair of display states is
// (valid, normal)"). tree is the segment tree sp.Segment.Wire lives
// in.
func Modes(sp Part, valid *grid.PartSet) []Mode {
	switch {
	case sp.Segment.Wire == Temporary:
		return []Mode{ModeTemporary}
	case sp.Segment.Wire == Colliding:
		return []Mode{ModeCollisions}
	case valid.Contains(sp.Part):
		return []Mode{ModeCollisions}
	case !valid.OverlapsAny(sp.Part):
		return []Mode{ModeInsertOrDiscard}
	default:
		return []Mode{ModeCollisions, ModeInsertOrDiscard}
	}
}

func hasMode(modes []Mode, m Mode) bool {
	for _, x := range modes {
		if x == m {
			return true
		}
	}
	return false
}

// HasMode reports whether modes (as returned by Modes) includes m.
func HasMode(modes []Mode, m Mode) bool { return hasMode(modes, m) }
