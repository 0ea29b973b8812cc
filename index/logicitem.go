package index

import "github.com/sarchlab/wiregrid/grid"

// LogicItemLocator is a default, static LogicItemInputs/LogicItemOutputs
// implementation: a plain point -> LogicItemRef map populated by the
// owning application (logic-item placement is out of this module's
// scope per spec.md §1; this is just enough of a stand-in to exercise
// insert_uninserted_segment's "force this endpoint to Input" rule,
// spec.md §4.7 step 4).
type LogicItemLocator struct {
	byPoint map[grid.Point]LogicItemRef
}

// NewLogicItemLocator returns an empty locator.
func NewLogicItemLocator() *LogicItemLocator {
	return &LogicItemLocator{byPoint: make(map[grid.Point]LogicItemRef)}
}

// Place registers a logic-item pin at point.
func (l *LogicItemLocator) Place(point grid.Point, ref LogicItemRef) {
	l.byPoint[point] = ref
}

// Remove un-registers the pin at point, if any.
func (l *LogicItemLocator) Remove(point grid.Point) {
	delete(l.byPoint, point)
}

// Find implements LogicItemInputs and LogicItemOutputs.
func (l *LogicItemLocator) Find(point grid.Point) (LogicItemRef, bool) {
	ref, ok := l.byPoint[point]
	return ref, ok
}
