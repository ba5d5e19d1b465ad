package table

// AddColumns widens every row by n columns of zero width. Rows up to and
// including the cursor row get blank copies of the default cell in the new
// columns; later rows get empty slots.
func (t *Table) AddColumns(n int) error {
	if n <= 0 {
		return ErrInvalidColumns
	}
	for i, row := range t.rows {
		old := row.Len()
		row.grow(n)
		if i <= t.cursor.Row {
			for j := old; j < row.Len(); j++ {
				row.slots[j] = t.defaultCell.blank()
			}
		}
	}
	t.widths = append(t.widths, make([]float64, n)...)
	t.columns += n
	t.touch()
	return nil
}

// DeleteColumn removes column idx from every row and renormalizes the
// remaining widths to 100. Cells spanning across idx shrink by one column;
// cells anchored in it are dropped. When idx was the last column the
// cursor moves to the start of the next row.
func (t *Table) DeleteColumn(idx int) error {
	if idx < 0 || idx >= t.columns {
		return ErrOutOfRange
	}
	if t.columns == 1 {
		return ErrInvalidColumns
	}

	remaining := make([]float64, 0, t.columns-1)
	remaining = append(remaining, t.widths[:idx]...)
	remaining = append(remaining, t.widths[idx+1:]...)
	widths, err := normalizeWidths(remaining)
	if err != nil {
		// Only zero-width columns are left; share the width equally.
		widths = equalWidths(len(remaining))
	}

	for _, row := range t.rows {
		for j := 0; j < idx; j++ {
			if c, ok := row.slots[j].(*Cell); ok && j+c.ColSpan > idx {
				c.ColSpan--
			}
		}
		row.deleteColumn(idx)
	}
	t.columns--
	t.widths = widths
	reindex(t.rows, t.columns)

	if idx == t.columns {
		t.cursor = Position{Row: t.cursor.Row + 1, Col: 0}
	} else if t.cursor.Col > idx {
		t.cursor.Col--
	}
	if r := t.cursor.Row; r < len(t.rows) && t.rows[r].IsOccupied(t.cursor.Col) {
		t.advanceCursor(r, t.cursor.Col)
	}
	t.touch()
	return nil
}

// DeleteRow removes row idx. Cells spanning across it shrink by one row;
// cells anchored in it are dropped. The cursor and the last header row
// shift up when they were below the removed row.
func (t *Table) DeleteRow(idx int) error {
	if idx < 0 || idx >= len(t.rows) {
		return ErrOutOfRange
	}

	for i := 0; i < idx; i++ {
		for _, s := range t.rows[i].slots {
			if c, ok := s.(*Cell); ok && i+c.RowSpan > idx {
				c.RowSpan--
			}
		}
	}
	t.rows = append(t.rows[:idx], t.rows[idx+1:]...)
	reindex(t.rows, t.columns)

	switch {
	case t.cursor.Row > idx:
		t.cursor.Row--
	case t.cursor.Row == idx:
		t.cursor.Col = 0
		if t.cursor.Row < len(t.rows) && t.rows[t.cursor.Row].IsOccupied(0) {
			t.advanceCursor(t.cursor.Row, 0)
		}
	}
	if t.lastHeaderRow >= idx {
		t.lastHeaderRow--
	}
	t.touch()
	return nil
}

// DeleteLastRow removes the last row.
func (t *Table) DeleteLastRow() error {
	return t.DeleteRow(len(t.rows) - 1)
}

// DeleteAllRows removes every row and resets the cursor and header rows.
// Nested tables go with their rows.
func (t *Table) DeleteAllRows() {
	t.rows = nil
	t.cursor = Position{}
	t.lastHeaderRow = -1
	t.mergeOwed = false
	t.touch()
}
