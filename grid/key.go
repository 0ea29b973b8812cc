package grid

import "github.com/rs/xid"

// Index is a dense index into a wire's segment list. It is invalidated
// by swap-and-delete or merge, except that the index the last element
// was swapped into remains valid for that element (spec.md §3
// segment_index_t).
type Index int

// SegmentKey is a stable, opaque identifier for a segment that
// survives swap-delete, merge, and split (spec.md §3 segment_key_t).
// It is generated with xid rather than a counter because keys must be
// mintable without any coordination with the segment tree they will
// eventually refer to (the caller of insert-uninserted-segment mints
// keys for pieces that do not exist yet, see spec.md §4.3), and must
// remain comparable/sortable for deterministic undo-log ordering.
type SegmentKey xid.ID

// NewSegmentKey mints a fresh, globally unique key.
func NewSegmentKey() SegmentKey {
	return SegmentKey(xid.New())
}

// IsZero reports whether k is the zero value (no key assigned).
func (k SegmentKey) IsZero() bool {
	return xid.ID(k).IsZero()
}

func (k SegmentKey) String() string {
	return xid.ID(k).String()
}
