package index_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/index"
)

var _ = Describe("LogicItemLocator", func() {
	var l *index.LogicItemLocator

	BeforeEach(func() {
		l = index.NewLogicItemLocator()
	})

	It("finds a placed pin", func() {
		ref := index.LogicItemRef{LogicItem: 7, Orientation: grid.East}
		l.Place(gpt(3, 4), ref)

		got, ok := l.Find(gpt(3, 4))
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(ref))
	})

	It("reports no pin at an unregistered point", func() {
		_, ok := l.Find(gpt(0, 0))
		Expect(ok).To(BeFalse())
	})

	It("un-registers a pin", func() {
		ref := index.LogicItemRef{LogicItem: 1, Orientation: grid.North}
		l.Place(gpt(1, 1), ref)
		l.Remove(gpt(1, 1))

		_, ok := l.Find(gpt(1, 1))
		Expect(ok).To(BeFalse())
	})
})
