package table

import "fmt"

// Complete finishes the table for rendering. Nested tables are completed
// and flattened into this grid, then, with autofill on, every empty slot
// receives a blank copy of the default cell. Calling Complete again without
// further changes leaves the grid as it is.
//
// Under MergeBestEffort irregular nested widths are recorded in Warnings.
// Under MergeStrict they make Complete return ErrDegenerateMerge and the
// grid is not modified.
func (t *Table) Complete() error {
	if t.mergeOwed {
		if err := t.mergeNested(); err != nil {
			return err
		}
		t.mergeOwed = false
	}
	if t.autoFill {
		if n := t.fillEmpty(); n > 0 {
			t.logger.Debug("filled empty slots", "table", t.id, "count", n)
		}
	}
	t.completed = true
	return nil
}

type nestedRef struct {
	row, col int
	table    *Table
}

// move is the new position and size of one cell in the flattened grid.
type move struct {
	cell             *Cell
	row, col         int
	rowSpan, colSpan int
}

type mergePlan struct {
	refined  []partition // per parent column; empty when nothing is nested in it
	colStart []int       // first output column of each parent column, then the total
	rowStart []int       // first output row of each parent row, then the total
	moves    []move
	overlap  bool
	warnings []Warning
}

func (t *Table) mergeNested() error {
	var nested []nestedRef
	for i, row := range t.rows {
		for j, s := range row.slots {
			if nt, ok := s.(*Table); ok {
				nested = append(nested, nestedRef{row: i, col: j, table: nt})
			}
		}
	}
	if len(nested) == 0 {
		return nil
	}

	for _, n := range nested {
		if err := n.table.Complete(); err != nil {
			return fmt.Errorf("table: completing nested table at (%d,%d): %w", n.row, n.col, err)
		}
	}

	plan := t.planMerge(nested)
	if len(plan.warnings) > 0 && t.mergePolicy == MergeStrict {
		return fmt.Errorf("%w: %s", ErrDegenerateMerge, plan.warnings[0])
	}
	for _, w := range plan.warnings {
		t.logger.Warn("nested table merge", "table", t.id, "warning", w.String())
	}

	beforeCols, beforeRows := t.columns, len(t.rows)
	t.applyMerge(plan)
	t.logger.Debug("flattened nested tables",
		"table", t.id,
		"nested", len(nested),
		"columns", fmt.Sprintf("%d->%d", beforeCols, t.columns),
		"rows", fmt.Sprintf("%d->%d", beforeRows, len(t.rows)))
	return nil
}

// planMerge works out the flattened geometry without touching the grid.
func (t *Table) planMerge(nested []nestedRef) mergePlan {
	plan := mergePlan{refined: make([]partition, t.columns)}
	rowExp := make([]int, len(t.rows))
	for i := range rowExp {
		rowExp[i] = 1
	}

	for _, n := range nested {
		p := newPartition(n.table.widths)
		if d := p.total() - fullWidth; d >= widthTolerance || d <= -widthTolerance {
			plan.warnings = append(plan.warnings, Warning{
				Kind:    WarnPartitionTotal,
				Row:     n.row,
				Col:     n.col,
				Message: fmt.Sprintf("nested widths sum to %.4f%%", float64(p.total())/unitsPerPercent),
			})
		}
		if len(p) < n.table.columns {
			plan.warnings = append(plan.warnings, Warning{
				Kind:    WarnCollapsedColumn,
				Row:     n.row,
				Col:     n.col,
				Message: fmt.Sprintf("%d of %d nested columns are narrower than the merge tolerance", n.table.columns-len(p), n.table.columns),
			})
		}
		plan.refined[n.col] = plan.refined[n.col].refine(p)
		if rc := n.table.RowCount(); rc > rowExp[n.row] {
			rowExp[n.row] = rc
		}
	}

	plan.colStart = make([]int, t.columns+1)
	for j := 0; j < t.columns; j++ {
		plan.colStart[j+1] = plan.colStart[j] + plan.columnExpansion(j)
	}
	plan.rowStart = make([]int, len(t.rows)+1)
	for i, exp := range rowExp {
		plan.rowStart[i+1] = plan.rowStart[i] + exp
	}

	t.planMoves(&plan)
	return plan
}

func (p *mergePlan) columnExpansion(col int) int {
	if n := len(p.refined[col]); n > 0 {
		return n
	}
	return 1
}

// planMoves computes where every cell lands. Ordinary cells keep covering
// the same parent rows and columns; cells of nested tables are placed in
// their parent slot's block with column spans translated onto the refined
// columns.
func (t *Table) planMoves(plan *mergePlan) {
	totalRows, totalCols := plan.rowStart[len(t.rows)], plan.colStart[t.columns]
	occupied := make([][]bool, totalRows)
	for i := range occupied {
		occupied[i] = make([]bool, totalCols)
	}

	add := func(m move, srcRow, srcCol int) {
		clash := false
		for i := m.row; i < m.row+m.rowSpan; i++ {
			for j := m.col; j < m.col+m.colSpan; j++ {
				if occupied[i][j] {
					clash = true
				}
				occupied[i][j] = true
			}
		}
		if clash {
			plan.overlap = true
			plan.warnings = append(plan.warnings, Warning{
				Kind:    WarnMergeOverlap,
				Row:     srcRow,
				Col:     srcCol,
				Message: fmt.Sprintf("cell moved to (%d,%d) overlaps an occupied slot", m.row, m.col),
			})
		}
		plan.moves = append(plan.moves, m)
	}

	for i, row := range t.rows {
		for j, s := range row.slots {
			r0, c0 := plan.rowStart[i], plan.colStart[j]
			switch v := s.(type) {
			case *Cell:
				rEnd := plan.rowStart[min(i+v.RowSpan, len(t.rows))]
				cEnd := plan.colStart[min(j+v.ColSpan, t.columns)]
				add(move{cell: v, row: r0, col: c0, rowSpan: rEnd - r0, colSpan: cEnd - c0}, i, j)

			case *Table:
				exp := plan.columnExpansion(j)
				colMap := plan.refined[j].columnMap(v.widths)
				for k, nrow := range v.rows {
					for l, ns := range nrow.slots {
						nc, ok := ns.(*Cell)
						if !ok {
							continue
						}
						// The nested table keeps its own cells.
						nc = nc.Clone()
						start := colMap[l]
						span := max(1, colMap[min(l+nc.ColSpan, v.columns)]-start)
						if start+span > exp {
							start = max(0, exp-span)
						}
						add(move{cell: nc, row: r0 + k, col: c0 + start, rowSpan: nc.RowSpan, colSpan: span}, i, j)
					}
				}
			}
		}
	}
}

// applyMerge replaces the grid with the flattened one described by plan.
func (t *Table) applyMerge(plan mergePlan) {
	totalRows, totalCols := plan.rowStart[len(t.rows)], plan.colStart[t.columns]
	rows := make([]*Row, totalRows)
	for i := range rows {
		rows[i] = newRow(totalCols)
	}
	for _, m := range plan.moves {
		m.cell.RowSpan, m.cell.ColSpan = m.rowSpan, m.colSpan
		rows = placeCell(rows, totalCols, m.cell, m.row, m.col)
	}
	if plan.overlap {
		reindex(rows, totalCols)
	}

	if t.lastHeaderRow >= 0 {
		t.lastHeaderRow = plan.rowStart[min(t.lastHeaderRow+1, len(t.rows))] - 1
	}
	t.widths = t.mergedWidths(plan)
	t.columns = totalCols
	t.rows = rows
	t.cursor = Position{Row: len(rows), Col: 0}
	t.warnings = append(t.warnings, plan.warnings...)
}

// mergedWidths splits each parent column's percentage over its refined
// columns in proportion, then renormalizes to 100.
func (t *Table) mergedWidths(plan mergePlan) []float64 {
	out := make([]float64, 0, plan.colStart[t.columns])
	for j, w := range t.widths {
		r := plan.refined[j]
		if len(r) == 0 {
			out = append(out, w)
			continue
		}
		total := float64(r.total())
		for _, part := range r.parts() {
			out = append(out, w*float64(part)/total)
		}
	}
	norm, err := normalizeWidths(out)
	if err != nil {
		return equalWidths(len(out))
	}
	return norm
}

// fillEmpty puts a blank copy of the default cell in every empty slot and
// returns how many were filled.
func (t *Table) fillEmpty() int {
	n := 0
	for _, row := range t.rows {
		for j, s := range row.slots {
			if s == nil {
				row.slots[j] = t.defaultCell.blank()
				n++
			}
		}
	}
	return n
}
