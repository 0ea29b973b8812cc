package wire_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/wire"
)

var _ = Describe("Modes", func() {
	fullLine := grid.NewLine(grid.Point{X: 0, Y: 0}, grid.Point{X: 10, Y: 0})
	part := fullLine.FullPart()

	It("reports ModeTemporary for a part of the temporary aggregate", func() {
		sp := wire.Part{Segment: wire.Segment{Wire: wire.Temporary, Index: 0}, Part: part}
		Expect(wire.Modes(sp, &grid.PartSet{})).To(Equal([]wire.Mode{wire.ModeTemporary}))
	})

	It("reports ModeCollisions for a part of the colliding aggregate", func() {
		sp := wire.Part{Segment: wire.Segment{Wire: wire.Colliding, Index: 0}, Part: part}
		Expect(wire.Modes(sp, &grid.PartSet{})).To(Equal([]wire.Mode{wire.ModeCollisions}))
	})

	Context("on an inserted wire", func() {
		id := wire.ID(2)

		It("reports ModeCollisions when fully inside valid_parts", func() {
			valid := &grid.PartSet{}
			valid.Mark(part)
			sp := wire.Part{Segment: wire.Segment{Wire: id, Index: 0}, Part: part}
			Expect(wire.Modes(sp, valid)).To(Equal([]wire.Mode{wire.ModeCollisions}))
		})

		It("reports ModeInsertOrDiscard when entirely outside valid_parts", func() {
			valid := &grid.PartSet{}
			sp := wire.Part{Segment: wire.Segment{Wire: id, Index: 0}, Part: part}
			Expect(wire.Modes(sp, valid)).To(Equal([]wire.Mode{wire.ModeInsertOrDiscard}))
		})

		It("reports both modes when straddling the valid/normal boundary", func() {
			valid := &grid.PartSet{}
			valid.Mark(grid.Part{Begin: 0, End: 5})
			sp := wire.Part{Segment: wire.Segment{Wire: id, Index: 0}, Part: part}
			Expect(wire.Modes(sp, valid)).To(ConsistOf(wire.ModeCollisions, wire.ModeInsertOrDiscard))
		})
	})

	It("has distinct String() labels", func() {
		Expect(wire.ModeTemporary.String()).To(Equal("Temporary"))
		Expect(wire.ModeCollisions.String()).To(Equal("Collisions"))
		Expect(wire.ModeInsertOrDiscard.String()).To(Equal("InsertOrDiscard"))
	})
})
