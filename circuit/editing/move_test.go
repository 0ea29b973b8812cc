package editing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/wiregrid/circuit/editing"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/wire"
)

var _ = Describe("MoveSegmentBetweenTrees", func() {
	var c *editing.Context

	BeforeEach(func() {
		c = newContext()
	})

	It("relocates a whole segment into a new tree when the part is the full line", func() {
		l := grid.NewLine(gpt(0, 0), gpt(10, 0))
		seg := addTemporarySegment(c, l)
		full := wire.Part{Segment: seg, Part: c.Info(seg).Line.FullPart()}

		result := c.MoveSegmentBetweenTrees(full, wire.Colliding, grid.NewSegmentKey())

		Expect(result.Destination.Wire).To(Equal(wire.Colliding))
		Expect(c.Info(result.Destination).Line).To(Equal(l))
		Expect(c.Table.Tree(wire.Temporary).Len()).To(Equal(0))
	})

	It("is a no-op move when the destination wire equals the source wire", func() {
		l := grid.NewLine(gpt(0, 0), gpt(10, 0))
		seg := addTemporarySegment(c, l)
		full := wire.Part{Segment: seg, Part: c.Info(seg).Line.FullPart()}

		result := c.MoveSegmentBetweenTrees(full, wire.Temporary, grid.NewSegmentKey())

		Expect(result.Destination).To(Equal(seg))
	})

	It("copies a touching-one-side part and shrinks the source in place", func() {
		l := grid.NewLine(gpt(0, 0), gpt(10, 0))
		seg := addTemporarySegment(c, l)
		part := wire.Part{Segment: seg, Part: grid.Part{Begin: 0, End: 4}}

		result := c.MoveSegmentBetweenTrees(part, wire.Colliding, grid.NewSegmentKey())

		Expect(result.Destination.Wire).To(Equal(wire.Colliding))
		Expect(c.Info(result.Destination).Line).To(Equal(grid.NewLine(gpt(0, 0), gpt(4, 0))))
		Expect(c.Info(seg).Line).To(Equal(grid.NewLine(gpt(4, 0), gpt(10, 0))))
	})

	It("splits the source into two pieces when the moved part touches neither end", func() {
		l := grid.NewLine(gpt(0, 0), gpt(10, 0))
		seg := addTemporarySegment(c, l)
		part := wire.Part{Segment: seg, Part: grid.Part{Begin: 3, End: 7}}

		result := c.MoveSegmentBetweenTrees(part, wire.Colliding, grid.NewSegmentKey())

		Expect(c.Info(result.Destination).Line).To(Equal(grid.NewLine(gpt(3, 0), gpt(7, 0))))
		Expect(c.Info(seg).Line).To(Equal(grid.NewLine(gpt(0, 0), gpt(3, 0))))
		Expect(c.Table.Tree(wire.Temporary).Len()).To(Equal(2))
	})
})
