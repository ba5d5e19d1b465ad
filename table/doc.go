// Package table implements the layout grid behind a composed table.
//
// A Table is a dense matrix of slots. Each slot holds the anchor of a Cell,
// a nested *Table that has not been flattened yet, a Reserved marker for a
// position covered by a spanning cell, or nothing.
//
// Building happens in two phases. Cells are placed with AddCell (at the
// cursor) or AddCellAt (at an explicit position), and nested tables with
// InsertTable. Complete then flattens every nested table into the parent
// grid, reconciling the nested column widths with the parent's into their
// common refinement, and optionally fills the remaining empty slots:
//
//	t, _ := table.New(3)
//	t.SetWidths([]float64{30, 40, 30})
//
//	inner, _ := table.New(2)
//	inner.AddText("left")
//	inner.AddText("right")
//
//	t.AddText("a")
//	t.InsertTable(inner)
//	t.AddText("c")
//
//	if err := t.Complete(); err != nil {
//		return err
//	}
//	// t now has 4 columns with widths [30 20 20 30].
//
// Column widths are percentages that always sum to 100. Reconciliation is
// done in fixed point so float drift cannot create or hide a column.
package table
