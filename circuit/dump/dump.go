// Package dump renders a circuit.Data's wire table for interactive
// debugging, the same go-pretty table approach core/util.go's
// PrintState uses for register and buffer dumps.
package dump

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/wiregrid/grid"
	"github.com/sarchlab/wiregrid/wire"
)

// Enabled gates Print the same way the teacher's core.PrintToggle
// gates PrintState; flip it on to see dumps during a debug session.
var Enabled = false

// Print renders every wire in t as one table: one row per segment,
// wires separated by a blank title row. Does nothing if Enabled is
// false.
func Print(t *wire.Table) {
	if !Enabled {
		return
	}

	for id := wire.ID(0); int(id) < t.Len(); id++ {
		tree := t.Tree(id)
		tw := table.NewWriter()
		tw.SetTitle(wireTitle(id))
		tw.AppendHeader(table.Row{"Index", "P0", "P1", "P0 Type", "P1 Type"})
		for i := 0; i < tree.Len(); i++ {
			info := tree.Info(grid.Index(i))
			tw.AppendRow(table.Row{
				i,
				info.Line.P0.String(),
				info.Line.P1.String(),
				info.Endpoints.TypeAt(info.Line, info.Line.P0).String(),
				info.Endpoints.TypeAt(info.Line, info.Line.P1).String(),
			})
		}
		fmt.Println(tw.Render())
		fmt.Println()
	}
}

func wireTitle(id wire.ID) string {
	switch id {
	case wire.Temporary:
		return "Wire 0 (temporary)"
	case wire.Colliding:
		return "Wire 1 (colliding)"
	default:
		return fmt.Sprintf("Wire %d (inserted)", id)
	}
}
