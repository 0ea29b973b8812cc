package editing_test

import (
	. "github.com/onsi/ginkgo/v2"

	"github.com/golang/mock/gomock"
	"github.com/sarchlab/wiregrid/circuit/editing"
	"github.com/sarchlab/wiregrid/circuit/message"
	"github.com/sarchlab/wiregrid/circuit/undo"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/index"
	"github.com/sarchlab/wiregrid/segment"
	"github.com/sarchlab/wiregrid/wire"
)

// gomockReporter adapts ginkgo's Fail into gomock's TestReporter, since
// these tests never run under go test's *testing.T directly (ginkgo
// drives it), mirroring the teacher's gomock.NewController(GinkgoT())
// idiom.
type gomockReporter struct{}

func (gomockReporter) Errorf(format string, args ...interface{}) { Fail(sprintf(format, args...)) }
func (gomockReporter) Fatalf(format string, args ...interface{}) { Fail(sprintf(format, args...)) }

func sprintf(format string, args ...interface{}) string {
	return format // gomock rarely needs the formatted detail for a passing suite
}

var _ = Describe("MergeSegments key-index ordering", func() {
	It("forgets the removed segment's key before setting the kept key on the merged segment", func() {
		ctrl := gomock.NewController(gomockReporter{})
		defer ctrl.Finish()

		keys := NewMockKeys(ctrl)
		bus := message.NewBus()
		geom := index.NewGeometryIndex()
		locator := index.NewLogicItemLocator()
		c := &editing.Context{
			Table:     wire.NewTable(),
			Bus:       bus,
			Undo:      undo.NewStack(),
			Keys:      keys,
			Spatial:   geom,
			Collision: geom,
			Inputs:    locator,
			Outputs:   locator,
		}

		tree := c.Table.Tree(wire.Temporary)
		a := grid.NewLine(gpt(0, 0), gpt(5, 0))
		b := grid.NewLine(gpt(5, 0), gpt(10, 0))
		ia := tree.AddSegment(segment.Info{Line: a, Endpoints: grid.Endpoints{P0Type: grid.Shadow, P1Type: grid.Shadow}})
		ib := tree.AddSegment(segment.Info{Line: b, Endpoints: grid.Endpoints{P0Type: grid.Shadow, P1Type: grid.Shadow}})
		keep := wire.Segment{Wire: wire.Temporary, Index: ia}
		remove := wire.Segment{Wire: wire.Temporary, Index: ib}

		keepKey := grid.NewSegmentKey()
		removeKey := grid.NewSegmentKey()
		keys.EXPECT().Get(keep).Return(keepKey, true)
		keys.EXPECT().Get(remove).Return(removeKey, true)

		gomock.InOrder(
			keys.EXPECT().Forget(remove),
			keys.EXPECT().SetKey(merged(keep, remove), keepKey),
		)

		c.MergeSegments(keep, remove)
	})
})

// merged returns the address the merged segment settles at: since
// remove is the tree's last element here, no relocation happens and
// the merge simply keeps keep's own address.
func merged(keep, remove wire.Segment) wire.Segment {
	return keep
}
