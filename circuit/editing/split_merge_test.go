package editing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/wiregrid/circuit/editing"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/wire"
)

var _ = Describe("SplitSegmentAt and MergeSegments", func() {
	var c *editing.Context

	BeforeEach(func() {
		c = newContext()
	})

	It("splits a segment into a left piece at the original address and a new right piece", func() {
		l := grid.NewLine(gpt(0, 0), gpt(10, 0))
		seg := addTemporarySegment(c, l)

		left, right := c.SplitSegmentAt(seg, gpt(4, 0))

		Expect(left).To(Equal(seg))
		Expect(c.Info(left).Line).To(Equal(grid.NewLine(gpt(0, 0), gpt(4, 0))))
		Expect(c.Info(right).Line).To(Equal(grid.NewLine(gpt(4, 0), gpt(10, 0))))
		Expect(c.Table.Tree(wire.Temporary).Len()).To(Equal(2))
	})

	It("round-trips through MergeSegments back into one segment spanning the original line", func() {
		l := grid.NewLine(gpt(0, 0), gpt(10, 0))
		seg := addTemporarySegment(c, l)
		left, right := c.SplitSegmentAt(seg, gpt(4, 0))

		merged := c.MergeSegments(left, right)

		Expect(c.Info(merged).Line).To(Equal(l))
		Expect(c.Table.Tree(wire.Temporary).Len()).To(Equal(1))
	})

	It("panics when merging segments that belong to different wires", func() {
		l := grid.NewLine(gpt(0, 0), gpt(10, 0))
		seg := addTemporarySegment(c, l)
		other := wire.Segment{Wire: wire.Colliding, Index: 0}

		Expect(func() { c.MergeSegments(seg, other) }).To(Panic())
	})
})
