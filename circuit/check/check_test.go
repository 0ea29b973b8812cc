package check_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/wiregrid/circuit/check"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/segment"
)

func cpt(x, y int) grid.Point {
	return grid.Point{X: grid.Coord(x), Y: grid.Coord(y)}
}

var _ = Describe("IsContiguousTreeWithCorrectEndpoints", func() {
	It("accepts a single segment with one input and one output leaf", func() {
		t := segment.New()
		l := grid.NewLine(cpt(0, 0), cpt(10, 0))
		t.AddSegment(segment.Info{Line: l, Endpoints: grid.Endpoints{P0Type: grid.Input, P1Type: grid.Output}})

		Expect(check.IsContiguousTreeWithCorrectEndpoints(t, true)).To(BeEmpty())
	})

	It("flags more than one input endpoint", func() {
		t := segment.New()
		a := grid.NewLine(cpt(0, 0), cpt(5, 0))
		b := grid.NewLine(cpt(5, 0), cpt(5, 5))
		t.AddSegment(segment.Info{Line: a, Endpoints: grid.Endpoints{P0Type: grid.Input, P1Type: grid.Corner}})
		t.AddSegment(segment.Info{Line: b, Endpoints: grid.Endpoints{P0Type: grid.Shadow, P1Type: grid.Input}})

		violations := check.IsContiguousTreeWithCorrectEndpoints(t, true)
		found := false
		for _, v := range violations {
			if v.Error() != "" {
				found = true
			}
		}
		Expect(found).To(BeTrue())
	})

	It("flags a disconnected tree", func() {
		t := segment.New()
		a := grid.NewLine(cpt(0, 0), cpt(5, 0))
		b := grid.NewLine(cpt(100, 100), cpt(110, 100))
		t.AddSegment(segment.Info{Line: a, Endpoints: grid.Endpoints{P0Type: grid.Input, P1Type: grid.Output}})
		t.AddSegment(segment.Info{Line: b, Endpoints: grid.Endpoints{P0Type: grid.Output, P1Type: grid.Output}})

		violations := check.IsContiguousTreeWithCorrectEndpoints(t, true)
		Expect(violations).NotTo(BeEmpty())
	})

	It("flags an unresolved endpoint tag", func() {
		t := segment.New()
		l := grid.NewLine(cpt(0, 0), cpt(10, 0))
		t.AddSegment(segment.Info{Line: l, Endpoints: grid.Endpoints{P0Type: grid.Unknown, P1Type: grid.Output}})

		Expect(check.IsContiguousTreeWithCorrectEndpoints(t, true)).NotTo(BeEmpty())
	})

	It("requires exactly one Corner and one Shadow at a degree-2 point", func() {
		t := segment.New()
		a := grid.NewLine(cpt(0, 0), cpt(5, 0))
		b := grid.NewLine(cpt(5, 0), cpt(5, 5))
		t.AddSegment(segment.Info{Line: a, Endpoints: grid.Endpoints{P0Type: grid.Input, P1Type: grid.Shadow}})
		t.AddSegment(segment.Info{Line: b, Endpoints: grid.Endpoints{P0Type: grid.Shadow, P1Type: grid.Output}})

		Expect(check.IsContiguousTreeWithCorrectEndpoints(t, true)).NotTo(BeEmpty())
	})

	It("accepts a proper corner pairing", func() {
		t := segment.New()
		a := grid.NewLine(cpt(0, 0), cpt(5, 0))
		b := grid.NewLine(cpt(5, 0), cpt(5, 5))
		t.AddSegment(segment.Info{Line: a, Endpoints: grid.Endpoints{P0Type: grid.Input, P1Type: grid.Corner}})
		t.AddSegment(segment.Info{Line: b, Endpoints: grid.Endpoints{P0Type: grid.Shadow, P1Type: grid.Output}})

		Expect(check.IsContiguousTreeWithCorrectEndpoints(t, true)).To(BeEmpty())
	})

	It("does not enforce input/output/junction rules on an uninserted (aggregate) tree", func() {
		t := segment.New()
		l := grid.NewLine(cpt(0, 0), cpt(10, 0))
		t.AddSegment(segment.Info{Line: l, Endpoints: grid.Endpoints{P0Type: grid.Shadow, P1Type: grid.Shadow}})

		Expect(check.IsContiguousTreeWithCorrectEndpoints(t, false)).To(BeEmpty())
	})
})

var _ = Describe("Normalize", func() {
	It("merges two touching collinear segments into one", func() {
		t := segment.New()
		a := grid.NewLine(cpt(0, 0), cpt(5, 0))
		b := grid.NewLine(cpt(5, 0), cpt(10, 0))
		t.AddSegment(segment.Info{Line: a, Endpoints: grid.Endpoints{P0Type: grid.Shadow, P1Type: grid.Shadow}})
		t.AddSegment(segment.Info{Line: b, Endpoints: grid.Endpoints{P0Type: grid.Shadow, P1Type: grid.Shadow}})

		out := check.Normalize(t)

		Expect(out.Len()).To(Equal(1))
		Expect(out.Info(0).Line).To(Equal(grid.NewLine(cpt(0, 0), cpt(10, 0))))
	})

	It("splits a merged span at an interior perpendicular crossing", func() {
		t := segment.New()
		h := grid.NewLine(cpt(0, 5), cpt(10, 5))
		v := grid.NewLine(cpt(5, 0), cpt(5, 10))
		t.AddSegment(segment.Info{Line: h, Endpoints: grid.Endpoints{P0Type: grid.Shadow, P1Type: grid.Shadow}})
		t.AddSegment(segment.Info{Line: v, Endpoints: grid.Endpoints{P0Type: grid.Shadow, P1Type: grid.Shadow}})

		out := check.Normalize(t)

		Expect(out.Len()).To(Equal(4))
	})

	It("leaves an already-normalized tree's segment count unchanged", func() {
		t := segment.New()
		l := grid.NewLine(cpt(0, 0), cpt(10, 0))
		t.AddSegment(segment.Info{Line: l, Endpoints: grid.Endpoints{P0Type: grid.Input, P1Type: grid.Output}})

		out := check.Normalize(t)

		Expect(out.Len()).To(Equal(1))
	})
})
