package grid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/wiregrid/grid"
)

var _ = Describe("PartSet", func() {
	var s grid.PartSet

	BeforeEach(func() {
		s = grid.PartSet{}
	})

	Describe("Mark", func() {
		It("merges overlapping and touching marks into one run", func() {
			s.Mark(grid.Part{Begin: 0, End: 3})
			s.Mark(grid.Part{Begin: 3, End: 6})
			Expect(s.Parts()).To(Equal([]grid.Part{{Begin: 0, End: 6}}))
		})

		It("keeps disjoint marks separate", func() {
			s.Mark(grid.Part{Begin: 0, End: 2})
			s.Mark(grid.Part{Begin: 5, End: 7})
			Expect(s.Parts()).To(Equal([]grid.Part{{Begin: 0, End: 2}, {Begin: 5, End: 7}}))
		})
	})

	Describe("Contains and OverlapsAny", func() {
		BeforeEach(func() {
			s.Mark(grid.Part{Begin: 2, End: 8})
		})

		It("contains a part fully inside a member", func() {
			Expect(s.Contains(grid.Part{Begin: 3, End: 5})).To(BeTrue())
		})

		It("does not contain a part straddling the boundary", func() {
			Expect(s.Contains(grid.Part{Begin: 1, End: 5})).To(BeFalse())
			Expect(s.OverlapsAny(grid.Part{Begin: 1, End: 5})).To(BeTrue())
		})

		It("reports no overlap for a disjoint part", func() {
			Expect(s.OverlapsAny(grid.Part{Begin: 9, End: 10})).To(BeFalse())
		})
	})

	Describe("Unmark", func() {
		BeforeEach(func() {
			s.Mark(grid.Part{Begin: 0, End: 10})
		})

		It("splits a member around a strictly interior unmark", func() {
			s.Unmark(grid.Part{Begin: 4, End: 6})
			Expect(s.Parts()).To(ConsistOf(grid.Part{Begin: 0, End: 4}, grid.Part{Begin: 6, End: 10}))
		})

		It("trims a member touching one side", func() {
			s.Unmark(grid.Part{Begin: 0, End: 4})
			Expect(s.Parts()).To(Equal([]grid.Part{{Begin: 4, End: 10}}))
		})

		It("empties the set when unmarking the whole member", func() {
			s.Unmark(grid.Part{Begin: 0, End: 10})
			Expect(s.Empty()).To(BeTrue())
		})
	})

	Describe("Shrink", func() {
		It("narrows members to their intersection with kept", func() {
			s.Mark(grid.Part{Begin: 0, End: 10})
			s.Shrink(grid.Part{Begin: 2, End: 6})
			Expect(s.Parts()).To(Equal([]grid.Part{{Begin: 2, End: 6}}))
		})
	})

	Describe("Clone", func() {
		It("is independent of the original", func() {
			s.Mark(grid.Part{Begin: 0, End: 5})
			c := s.Clone()
			s.Mark(grid.Part{Begin: 5, End: 10})
			Expect(c.Parts()).To(Equal([]grid.Part{{Begin: 0, End: 5}}))
		})
	})
})
