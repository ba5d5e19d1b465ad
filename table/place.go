package table

// AddCell places c at the cursor and advances the cursor.
//
// A cell whose only content is a table is inserted as a nested table.
func (t *Table) AddCell(c *Cell) error {
	return t.AddCellAt(c, t.cursor.Row, t.cursor.Col)
}

// AddText places a 1x1 cell holding text at the cursor.
func (t *Table) AddText(text string) error {
	return t.AddCell(NewTextCell(text))
}

// AddCellAt places c with its anchor at (row, col). Rows are appended when
// the cell's row span reaches past the last row. A cell can be anchored only
// once per table; place a Clone to repeat it. On error neither the grid nor
// c is changed. The cursor moves to the first unoccupied slot after the
// anchor.
func (t *Table) AddCellAt(c *Cell, row, col int) error {
	if c == nil {
		return ErrNilCell
	}
	if c.IsTableContainer() {
		return t.InsertTableAt(c.AsTable(), row, col)
	}
	rowSpan, colSpan := max(c.RowSpan, 1), max(c.ColSpan, 1)
	if err := t.checkPlacement("add cell", row, col, rowSpan, colSpan); err != nil {
		return err
	}
	if t.anchors(c) {
		return &LayoutError{Op: "add cell", Row: row, Col: col, RowSpan: rowSpan, ColSpan: colSpan, Err: ErrCellPlaced}
	}

	c.RowSpan, c.ColSpan = rowSpan, colSpan
	c.inherit(&t.defaultCell)
	overlap := t.covers(row, col, c.RowSpan, c.ColSpan)
	t.rows = placeCell(t.rows, t.columns, c, row, col)
	if overlap {
		// Lenient overwrite may have orphaned parts of other spans.
		reindex(t.rows, t.columns)
	}
	t.advanceCursor(row, col)
	t.touch()
	return nil
}

// InsertTable places a nested table at the cursor.
func (t *Table) InsertTable(nested *Table) error {
	return t.InsertTableAt(nested, t.cursor.Row, t.cursor.Col)
}

// InsertTableAt places a nested table in the slot (row, col). The nested
// table is flattened into this table by Complete.
func (t *Table) InsertTableAt(nested *Table, row, col int) error {
	if nested == nil {
		return ErrNilTable
	}
	if nested == t || nested.contains(t) {
		return &LayoutError{Op: "insert table", Row: row, Col: col, RowSpan: 1, ColSpan: 1, Err: ErrSelfInsert}
	}
	if err := t.checkPlacement("insert table", row, col, 1, 1); err != nil {
		return err
	}

	overlap := t.covers(row, col, 1, 1)
	for len(t.rows) <= row {
		t.rows = append(t.rows, newRow(t.columns))
	}
	t.rows[row].slots[col] = nested
	if overlap {
		reindex(t.rows, t.columns)
	}
	t.mergeOwed = true
	t.advanceCursor(row, col)
	t.touch()
	return nil
}

// checkPlacement validates a rectangle without touching the grid.
func (t *Table) checkPlacement(op string, row, col, rowSpan, colSpan int) error {
	fail := func(err error) error {
		return &LayoutError{Op: op, Row: row, Col: col, RowSpan: rowSpan, ColSpan: colSpan, Err: err}
	}
	if row < 0 || col < 0 || col >= t.columns {
		return fail(ErrOutOfRange)
	}
	if col+colSpan > t.columns {
		return fail(ErrSpanOverflow)
	}
	if t.placement == PlacementStrict && t.covers(row, col, rowSpan, colSpan) {
		return fail(ErrOverlap)
	}
	return nil
}

// covers reports whether any slot of the rectangle is occupied.
func (t *Table) covers(row, col, rowSpan, colSpan int) bool {
	for i := row; i < row+rowSpan && i < len(t.rows); i++ {
		for j := col; j < col+colSpan && j < t.columns; j++ {
			if t.rows[i].slots[j] != nil {
				return true
			}
		}
	}
	return false
}

// anchors reports whether c is anchored in any slot of the grid.
func (t *Table) anchors(c *Cell) bool {
	for _, row := range t.rows {
		for _, s := range row.slots {
			if a, ok := s.(*Cell); ok && a == c {
				return true
			}
		}
	}
	return false
}

// advanceCursor moves the cursor one slot right of (row, col), wrapping at
// the last column, and keeps going while the slot is occupied.
func (t *Table) advanceCursor(row, col int) {
	for {
		if col+1 >= t.columns {
			row++
			col = 0
		} else {
			col++
		}
		if row >= len(t.rows) || !t.rows[row].IsOccupied(col) {
			break
		}
	}
	t.cursor = Position{Row: row, Col: col}
}

// contains reports whether other is nested anywhere inside t, including
// inside table containers.
func (t *Table) contains(other *Table) bool {
	for _, row := range t.rows {
		for _, s := range row.slots {
			switch v := s.(type) {
			case *Table:
				if v == other || v.contains(other) {
					return true
				}
			case *Cell:
				if nt := v.AsTable(); nt != nil && (nt == other || nt.contains(other)) {
					return true
				}
			}
		}
	}
	return false
}

// placeCell writes c into rows with its anchor at (row, col), appending
// blank rows as needed, and reserves the rest of its rectangle. The caller
// has validated the column range.
func placeCell(rows []*Row, columns int, c *Cell, row, col int) []*Row {
	for len(rows) < row+c.RowSpan {
		rows = append(rows, newRow(columns))
	}
	for i := row; i < row+c.RowSpan; i++ {
		for j := col; j < col+c.ColSpan; j++ {
			if i == row && j == col {
				rows[i].slots[j] = c
				continue
			}
			rows[i].slots[j] = Reserved{owner: c}
		}
	}
	return rows
}

// reindex repairs Reserved markers after slots were overwritten or rows
// and columns removed. Spans reaching past the grid are clipped, markers
// outside their owner's rectangle are cleared, and empty slots inside a
// rectangle are reserved again. Slots claimed by another cell are left alone.
func reindex(rows []*Row, columns int) {
	anchors := make(map[*Cell]Position)
	var order []*Cell
	for i, r := range rows {
		for j, s := range r.slots {
			c, ok := s.(*Cell)
			if !ok {
				continue
			}
			if i+c.RowSpan > len(rows) {
				c.RowSpan = len(rows) - i
			}
			if j+c.ColSpan > columns {
				c.ColSpan = columns - j
			}
			anchors[c] = Position{Row: i, Col: j}
			order = append(order, c)
		}
	}

	for i, r := range rows {
		for j, s := range r.slots {
			res, ok := s.(Reserved)
			if !ok {
				continue
			}
			at, anchored := anchors[res.owner]
			if !anchored || i < at.Row || i >= at.Row+res.owner.RowSpan ||
				j < at.Col || j >= at.Col+res.owner.ColSpan {
				r.slots[j] = nil
			}
		}
	}

	for _, c := range order {
		at := anchors[c]
		for i := at.Row; i < at.Row+c.RowSpan; i++ {
			for j := at.Col; j < at.Col+c.ColSpan; j++ {
				if rows[i].slots[j] == nil {
					rows[i].slots[j] = Reserved{owner: c}
				}
			}
		}
	}
}
