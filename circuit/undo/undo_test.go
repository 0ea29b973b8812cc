package undo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/wiregrid/circuit/undo"
	"github.com/sarchlab/wiregrid/grid"
)

var _ = Describe("Stack", func() {
	It("starts empty", func() {
		s := undo.NewStack()
		Expect(s.Len()).To(Equal(0))
		Expect(s.Records()).To(BeEmpty())
	})

	It("appends records in push order", func() {
		s := undo.NewStack()
		key := grid.NewSegmentKey()

		s.Push(undo.DeleteTemporary{Key: key})
		s.Push(undo.Merge{KeepKey: key, DeleteKey: grid.NewSegmentKey()})

		Expect(s.Len()).To(Equal(2))
		records := s.Records()
		Expect(records[0]).To(Equal(undo.DeleteTemporary{Key: key}))
		_, ok := records[1].(undo.Merge)
		Expect(ok).To(BeTrue())
	})
})
