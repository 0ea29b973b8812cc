// Command wiregrid-demo drives the six concrete scenarios of spec.md
// §8 against a fresh circuit.Data, printing the resulting wire table
// after each, the same scripted-run-then-exit shape as
// samples/passthrough/main.go.
package main

import (
	"fmt"

	"github.com/sarchlab/wiregrid/circuit"
	"github.com/sarchlab/wiregrid/circuit/dump"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/wire"
	"github.com/tebeka/atexit"
)

func main() {
	dump.Enabled = true

	fmt.Println("scenario 1: add_wire_segment((0,0)-(10,0), insert_or_discard)")
	scenario1()

	fmt.Println("scenario 2: + add_wire_segment((5,0)-(5,10), insert_or_discard)")
	d2, sp2 := scenario2()

	fmt.Println("scenario 3: toggle_wire_crosspoint((5,0))")
	scenario3(d2, sp2)

	fmt.Println("scenario 4: temporary add + move")
	scenario4()

	fmt.Println("scenario 5: temporary add + change_wire_insertion_mode(collisions)")
	scenario5()

	fmt.Println("scenario 6: regularize_temporary_selection of two collinear temporaries")
	scenario6()

	atexit.Exit(0)
}

func line(x0, y0, x1, y1 int) grid.Line {
	return grid.NewLine(
		grid.Point{X: grid.Coord(x0), Y: grid.Coord(y0)},
		grid.Point{X: grid.Coord(x1), Y: grid.Coord(y1)},
	)
}

func scenario1() *circuit.Data {
	d := circuit.DataBuilder{}.Build()
	d.AddWireSegment(line(0, 0, 10, 0), wire.ModeInsertOrDiscard)
	dump.Print(d.Table())
	return d
}

func scenario2() (*circuit.Data, wire.Part) {
	d := circuit.DataBuilder{}.Build()
	d.AddWireSegment(line(0, 0, 10, 0), wire.ModeInsertOrDiscard)
	sp := d.AddWireSegment(line(5, 0, 5, 10), wire.ModeInsertOrDiscard)
	dump.Print(d.Table())
	return d, sp
}

func scenario3(d *circuit.Data, sp wire.Part) {
	d.ToggleWireCrosspoint(grid.Point{X: 5, Y: 0})
	dump.Print(d.Table())
}

func scenario4() {
	d := circuit.DataBuilder{}.Build()
	sp := d.AddWireSegment(line(0, 0, 10, 0), wire.ModeTemporary)
	d.MoveOrDeleteTemporaryWire(sp, 0, 5)
	dump.Print(d.Table())
}

func scenario5() {
	d := circuit.DataBuilder{}.Build()
	sp := d.AddWireSegment(line(0, 0, 10, 0), wire.ModeTemporary)
	d.ChangeWireInsertionMode(sp, wire.ModeCollisions)
	dump.Print(d.Table())
}

func scenario6() {
	d := circuit.DataBuilder{}.Build()
	a := d.AddWireSegment(line(0, 0, 5, 0), wire.ModeTemporary)
	b := d.AddWireSegment(line(5, 0, 10, 0), wire.ModeTemporary)
	crossings := d.RegularizeTemporarySelection([]wire.Segment{a.Segment, b.Segment}, nil)
	dump.Print(d.Table())
	fmt.Printf("cross-points: %v\n", crossings)
}
