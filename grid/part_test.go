package grid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/wiregrid/grid"
)

var _ = Describe("Part", func() {
	full := grid.Part{Begin: 0, End: 10}

	Describe("Classify", func() {
		It("reports DiffEqual when removed spans all of full", func() {
			Expect(grid.Classify(full, grid.Part{Begin: 0, End: 10})).To(Equal(grid.DiffEqual))
		})

		It("reports DiffTouchingOneSide when removed shares one boundary", func() {
			Expect(grid.Classify(full, grid.Part{Begin: 0, End: 4})).To(Equal(grid.DiffTouchingOneSide))
			Expect(grid.Classify(full, grid.Part{Begin: 6, End: 10})).To(Equal(grid.DiffTouchingOneSide))
		})

		It("reports DiffSplitting when removed is strictly interior", func() {
			Expect(grid.Classify(full, grid.Part{Begin: 3, End: 7})).To(Equal(grid.DiffSplitting))
		})

		It("panics when removed is not inside full", func() {
			Expect(func() { grid.Classify(full, grid.Part{Begin: 5, End: 15}) }).To(Panic())
		})
	})

	Describe("DifferenceTouchingOneSide", func() {
		It("returns the remainder on the non-touching side", func() {
			Expect(grid.DifferenceTouchingOneSide(full, grid.Part{Begin: 0, End: 4})).
				To(Equal(grid.Part{Begin: 4, End: 10}))
			Expect(grid.DifferenceTouchingOneSide(full, grid.Part{Begin: 6, End: 10})).
				To(Equal(grid.Part{Begin: 0, End: 6}))
		})
	})

	Describe("DifferenceNotTouching", func() {
		It("splits full around a strictly interior removed part", func() {
			left, right := grid.DifferenceNotTouching(full, grid.Part{Begin: 3, End: 7})
			Expect(left).To(Equal(grid.Part{Begin: 0, End: 3}))
			Expect(right).To(Equal(grid.Part{Begin: 7, End: 10}))
		})
	})

	Describe("OverlapsAny", func() {
		sorted := []grid.Part{{Begin: 0, End: 2}, {Begin: 4, End: 6}, {Begin: 8, End: 10}}

		It("finds an overlap in the middle of the set", func() {
			Expect(grid.OverlapsAny(grid.Part{Begin: 5, End: 6}, sorted)).To(BeTrue())
		})

		It("reports no overlap for a gap", func() {
			Expect(grid.OverlapsAny(grid.Part{Begin: 2, End: 4}, sorted)).To(BeFalse())
		})
	})
})
