package grid

import (
	"fmt"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// toTitleCase canonicalizes a direction-ish name the way the teacher's
// core.toTitleCase does ("EAST" -> "East"), used whenever an
// Orientation name reaches a log field or debug dump.
func toTitleCase(s string) string {
	return titleCaser.String(s)
}

// Orientation is the axis a line or a segment endpoint runs along, or
// the side of a point a segment departs on. Horizontal and Vertical
// describe lines; the four cardinal values describe a direction out of
// a point (used by fix-and-merge's tie-break order and by the
// selection endpoint map in regularization).
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
	East
	West
	North
	South
)

var (
	orientationNames = []string{
		"Horizontal", "Vertical", "East", "West", "North", "South",
	}
	orientationNamesMu sync.RWMutex
)

// Name returns the canonical, title-cased name of o.
func (o Orientation) Name() string {
	orientationNamesMu.RLock()
	defer orientationNamesMu.RUnlock()
	if int(o) >= 0 && int(o) < len(orientationNames) {
		return toTitleCase(orientationNames[o])
	}
	return fmt.Sprintf("Orientation %d", o)
}

func (o Orientation) String() string { return o.Name() }

// FixAndMergeOrder is the fixed, deterministic tie-break order used by
// fix_and_merge_segments (spec.md §4.5): "right, left, up, down".
var FixAndMergeOrder = [4]Orientation{East, West, North, South}

// Opposite returns the reverse cardinal direction of o. Panics if o is
// not one of the four cardinal directions: this is a programmer error,
// not a representability failure.
func (o Orientation) Opposite() Orientation {
	switch o {
	case East:
		return West
	case West:
		return East
	case North:
		return South
	case South:
		return North
	default:
		panic(fmt.Sprintf("grid: Opposite called on non-cardinal orientation %v", o))
	}
}
