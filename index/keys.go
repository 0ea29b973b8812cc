package index

import (
	"github.com/sarchlab/wiregrid/circuit/message"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/wire"
)

// KeyIndex is the default Keys implementation: two maps kept in sync
// so the key<->segment correspondence resolves in either direction
// (design note §9 "key <-> index duality"). It is coherent purely by
// subscribing to the bus like GeometryIndex, plus Created carries the
// key the segment was minted with.
type KeyIndex struct {
	bySeg map[wire.Segment]grid.SegmentKey
	byKey map[grid.SegmentKey]wire.Segment
}

// NewKeyIndex returns an empty key index.
func NewKeyIndex() *KeyIndex {
	return &KeyIndex{
		bySeg: make(map[wire.Segment]grid.SegmentKey),
		byKey: make(map[grid.SegmentKey]wire.Segment),
	}
}

// Get implements Keys.
func (k *KeyIndex) Get(seg wire.Segment) (grid.SegmentKey, bool) {
	key, ok := k.bySeg[seg]
	return key, ok
}

// KeyToSegment implements Keys.
func (k *KeyIndex) KeyToSegment(key grid.SegmentKey) (wire.Segment, bool) {
	seg, ok := k.byKey[key]
	return seg, ok
}

// SetKey implements Keys.
func (k *KeyIndex) SetKey(seg wire.Segment, key grid.SegmentKey) {
	if old, ok := k.bySeg[seg]; ok {
		delete(k.byKey, old)
	}
	k.bySeg[seg] = key
	k.byKey[key] = seg
}

// SwapKey implements Keys: exchanges the keys currently assigned to a
// and b (used when a swap-delete relocates a segment and the caller
// wants the key index to follow the content, not the address).
func (k *KeyIndex) SwapKey(a, b wire.Segment) {
	ka, aok := k.bySeg[a]
	kb, bok := k.bySeg[b]
	if aok {
		k.SetKey(b, ka)
	}
	if bok {
		k.SetKey(a, kb)
	}
}

// Forget implements Keys.
func (k *KeyIndex) Forget(seg wire.Segment) {
	if key, ok := k.bySeg[seg]; ok {
		delete(k.byKey, key)
		delete(k.bySeg, seg)
	}
}

// Handle is KeyIndex's bus subscriber entry point. Key retirement on
// deletion is not driven by the bus (PartDeleted does not carry a
// key): the editing package calls Forget directly at the point a
// segment is actually removed, since only it knows whether the
// deletion is a true retirement or a same-call recreation under the
// same key (e.g. shrink-in-place).
func (k *KeyIndex) Handle(item any) {
	switch m := item.(type) {
	case message.Created:
		k.SetKey(m.Segment, m.Key)
	case message.IDUpdated:
		if key, ok := k.bySeg[m.Old]; ok {
			delete(k.bySeg, m.Old)
			k.bySeg[m.New] = key
			k.byKey[key] = m.New
		}
	}
}
