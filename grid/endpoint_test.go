package grid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/wiregrid/grid"
)

var _ = Describe("Endpoints", func() {
	l := grid.NewLine(pt(0, 0), pt(10, 0))
	e := grid.Endpoints{P0Type: grid.Output, P1Type: grid.Shadow}

	Describe("TypeAt", func() {
		It("returns the tag matching the endpoint", func() {
			Expect(e.TypeAt(l, pt(0, 0))).To(Equal(grid.Output))
			Expect(e.TypeAt(l, pt(10, 0))).To(Equal(grid.Shadow))
		})

		It("panics for a non-endpoint point", func() {
			Expect(func() { e.TypeAt(l, pt(5, 0)) }).To(Panic())
		})
	})

	Describe("TypeAtIfEndpoint", func() {
		It("returns Unknown instead of panicking for a non-endpoint", func() {
			Expect(e.TypeAtIfEndpoint(l, pt(5, 0))).To(Equal(grid.Unknown))
		})
	})

	Describe("WithTypeAt", func() {
		It("returns a copy with only the matching endpoint changed", func() {
			updated := e.WithTypeAt(l, pt(0, 0), grid.Corner)
			Expect(updated.P0Type).To(Equal(grid.Corner))
			Expect(updated.P1Type).To(Equal(grid.Shadow))
			Expect(e.P0Type).To(Equal(grid.Output), "original must be unchanged")
		})
	})

	Describe("PointType.Connecting", func() {
		It("is true for Input/Output/Corner/Cross", func() {
			Expect(grid.Input.Connecting()).To(BeTrue())
			Expect(grid.Output.Connecting()).To(BeTrue())
			Expect(grid.Corner.Connecting()).To(BeTrue())
			Expect(grid.Cross.Connecting()).To(BeTrue())
		})

		It("is false for Shadow and Unknown", func() {
			Expect(grid.Shadow.Connecting()).To(BeFalse())
			Expect(grid.Unknown.Connecting()).To(BeFalse())
		})
	})
})
