package circuit_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/wiregrid/circuit"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/wire"
)

func cpt(x, y int) grid.Point {
	return grid.Point{X: grid.Coord(x), Y: grid.Coord(y)}
}

var _ = Describe("Data", func() {
	var d *circuit.Data

	BeforeEach(func() {
		d = circuit.DataBuilder{}.Build()
	})

	Describe("AddWireSegment", func() {
		It("adds a temporary segment when mode is ModeTemporary", func() {
			l := grid.NewLine(cpt(0, 0), cpt(10, 0))
			sp := d.AddWireSegment(l, wire.ModeTemporary)

			Expect(sp.Segment.Wire).To(Equal(wire.Temporary))
			Expect(d.Table().Tree(wire.Temporary).Len()).To(Equal(1))
		})

		It("inserts the segment as a new wire when mode is ModeInsertOrDiscard", func() {
			l := grid.NewLine(cpt(0, 0), cpt(10, 0))
			sp := d.AddWireSegment(l, wire.ModeInsertOrDiscard)

			Expect(wire.IsInserted(sp.Segment.Wire)).To(BeTrue())
			Expect(d.Table().Tree(wire.Temporary).Len()).To(Equal(0))
		})
	})

	Describe("DeleteTemporaryWireSegment", func() {
		It("removes a whole temporary segment", func() {
			l := grid.NewLine(cpt(0, 0), cpt(10, 0))
			sp := d.AddWireSegment(l, wire.ModeTemporary)

			d.DeleteTemporaryWireSegment(sp)

			Expect(d.Table().Tree(wire.Temporary).Len()).To(Equal(0))
		})

		It("panics if asked to delete a non-temporary segment", func() {
			l := grid.NewLine(cpt(0, 0), cpt(10, 0))
			sp := d.AddWireSegment(l, wire.ModeInsertOrDiscard)

			Expect(func() { d.DeleteTemporaryWireSegment(sp) }).To(Panic())
		})
	})

	Describe("MoveOrDeleteTemporaryWire", func() {
		It("translates a temporary wire within bounds", func() {
			l := grid.NewLine(cpt(0, 0), cpt(10, 0))
			sp := d.AddWireSegment(l, wire.ModeTemporary)

			d.MoveOrDeleteTemporaryWire(sp, 5, 5)

			got := d.Table().Tree(wire.Temporary).Info(sp.Segment.Index).Line
			Expect(got).To(Equal(grid.NewLine(cpt(5, 5), cpt(15, 5))))
		})

		It("deletes the segment instead of moving it when the translation would overflow the grid", func() {
			l := grid.NewLine(cpt(0, 0), cpt(10, 0))
			sp := d.AddWireSegment(l, wire.ModeTemporary)

			d.MoveOrDeleteTemporaryWire(sp, -1000000, 0)

			Expect(d.Table().Tree(wire.Temporary).Len()).To(Equal(0))
		})
	})

	Describe("ChangeWireInsertionMode", func() {
		It("moves a temporary segment into an inserted wire", func() {
			l := grid.NewLine(cpt(0, 0), cpt(10, 0))
			sp := d.AddWireSegment(l, wire.ModeTemporary)

			newSP := d.ChangeWireInsertionMode(sp, wire.ModeInsertOrDiscard)

			Expect(wire.IsInserted(newSP.Segment.Wire)).To(BeTrue())
		})
	})

	Describe("ToggleWireCrosspoint", func() {
		It("connects two crossing inserted wires into one at their intersection", func() {
			h := grid.NewLine(cpt(0, 5), cpt(10, 5))
			v := grid.NewLine(cpt(5, 0), cpt(5, 10))
			d.AddWireSegment(h, wire.ModeInsertOrDiscard)
			d.AddWireSegment(v, wire.ModeInsertOrDiscard)

			insertedBefore := len(d.Table().InsertedIDs())
			Expect(insertedBefore).To(Equal(2))

			d.ToggleWireCrosspoint(cpt(5, 5))

			Expect(d.Table().InsertedIDs()).To(HaveLen(1))
		})
	})

	Describe("RegularizeTemporarySelection", func() {
		It("tags a three-way junction's shared endpoint as a Cross with Shadow siblings", func() {
			a := grid.NewLine(cpt(0, 0), cpt(5, 0))
			b := grid.NewLine(cpt(5, 0), cpt(10, 0))
			c := grid.NewLine(cpt(5, 0), cpt(5, 5))
			spA := d.AddWireSegment(a, wire.ModeTemporary)
			spB := d.AddWireSegment(b, wire.ModeTemporary)
			spC := d.AddWireSegment(c, wire.ModeTemporary)

			selection := []wire.Segment{spA.Segment, spB.Segment, spC.Segment}
			crossings := d.RegularizeTemporarySelection(selection, nil)

			Expect(crossings).To(ConsistOf(cpt(5, 0)))
		})
	})
})
