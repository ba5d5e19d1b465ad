package table

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tsawler/quire/model"
)

// Table is a dense grid of slots with a proportional width per column.
//
// Builders place cells and nested tables, then call Complete, which flattens
// nested tables into the grid and optionally fills empty slots. Renderers
// read the completed grid through Columns, RowCount, Cell, IsReserved and
// ColumnBoundaries. A Table is not safe for concurrent mutation.
type Table struct {
	id      uint64
	columns int
	rows    []*Row
	widths  []float64

	widthPercentage float64
	absoluteWidth   float64
	alignment       model.TextAlignment
	padding         float64
	spacing         float64
	border          model.Border
	background      *model.Color

	defaultCell   Cell
	cursor        Position
	lastHeaderRow int

	mergeOwed   bool
	autoFill    bool
	completed   bool
	placement   Placement
	mergePolicy MergePolicy

	warnings []Warning
	logger   *log.Logger
}

// New creates a table with the given number of columns of equal width.
func New(columns int, opts ...Option) (*Table, error) {
	if columns <= 0 {
		return nil, ErrInvalidColumns
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table{
		id:              o.ids.Next(),
		columns:         columns,
		rows:            make([]*Row, 0, o.rows),
		widths:          equalWidths(columns),
		widthPercentage: DefaultWidthPercentage,
		alignment:       DefaultAlignment,
		border:          model.Border{Sides: model.BorderBox, Width: 1},
		defaultCell:     defaultCell(),
		lastHeaderRow:   -1,
		autoFill:        o.autoFill,
		placement:       o.placement,
		mergePolicy:     o.merge,
		logger:          o.logger,
	}
	for i := 0; i < o.rows; i++ {
		t.rows = append(t.rows, newRow(columns))
	}
	return t, nil
}

// Type implements model.Element.
func (t *Table) Type() model.ElementType { return model.ElementTypeTable }

// GetText returns the cell text row by row, tab separated. Reserved slots
// are skipped.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.rows {
		first := true
		for _, s := range row.slots {
			if _, ok := s.(Reserved); ok {
				continue
			}
			if !first {
				sb.WriteString("\t")
			}
			first = false
			switch v := s.(type) {
			case *Cell:
				sb.WriteString(strings.ReplaceAll(v.Text(), "\n", " "))
			case *Table:
				sb.WriteString(strings.ReplaceAll(strings.TrimSpace(v.GetText()), "\n", " "))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ID returns the table's identifier.
func (t *Table) ID() uint64 { return t.id }

// Columns returns the column count.
func (t *Table) Columns() int { return t.columns }

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return len(t.rows) }

// Dimension returns the column and row counts.
func (t *Table) Dimension() (columns, rows int) { return t.columns, len(t.rows) }

// Row returns row i, or nil when out of range.
func (t *Table) Row(i int) *Row {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i]
}

// Element returns the raw slot at (row, col), or nil when empty or out of range.
func (t *Table) Element(row, col int) Slot {
	r := t.Row(row)
	if r == nil {
		return nil
	}
	return r.Slot(col)
}

// Cell returns the cell anchored at (row, col), or nil.
func (t *Table) Cell(row, col int) *Cell {
	c, _ := t.Element(row, col).(*Cell)
	return c
}

// NestedTable returns the table inserted at (row, col) that has not been
// flattened yet, or nil.
func (t *Table) NestedTable(row, col int) *Table {
	nt, _ := t.Element(row, col).(*Table)
	return nt
}

// IsReserved reports whether (row, col) is covered by a cell anchored elsewhere.
func (t *Table) IsReserved(row, col int) bool {
	_, ok := t.Element(row, col).(Reserved)
	return ok
}

// Owner returns the cell covering (row, col): the anchored cell itself, the
// owner of a reserved slot, or nil.
func (t *Table) Owner(row, col int) *Cell {
	switch s := t.Element(row, col).(type) {
	case *Cell:
		return s
	case Reserved:
		return s.owner
	}
	return nil
}

// Cursor returns the position the next AddCell will use.
func (t *Table) Cursor() Position { return t.cursor }

// LastHeaderRow returns the index of the last header row, or -1.
func (t *Table) LastHeaderRow() int { return t.lastHeaderRow }

// SetLastHeaderRow marks rows 0..row as header rows. Use -1 for none.
func (t *Table) SetLastHeaderRow(row int) {
	if row < -1 {
		row = -1
	}
	t.lastHeaderRow = row
}

// EndHeaders marks every row above the cursor row as a header row and
// returns the new last header row.
func (t *Table) EndHeaders() int {
	t.lastHeaderRow = t.cursor.Row - 1
	return t.lastHeaderRow
}

// DefaultCell returns a copy of the template used for undefined cell
// attributes and for autofill.
func (t *Table) DefaultCell() *Cell {
	return t.defaultCell.Clone()
}

// SetDefaultCell replaces the template. Spans and content are ignored.
func (t *Table) SetDefaultCell(c *Cell) {
	if c == nil {
		return
	}
	t.defaultCell = *c.blank()
}

// Padding returns the space between a cell's border and its content.
func (t *Table) Padding() float64 { return t.padding }

// SetPadding sets the cell padding.
func (t *Table) SetPadding(p float64) { t.padding = p }

// Spacing returns the space between cells.
func (t *Table) Spacing() float64 { return t.spacing }

// SetSpacing sets the cell spacing.
func (t *Table) SetSpacing(s float64) { t.spacing = s }

// Border returns the table border.
func (t *Table) Border() model.Border { return t.border }

// SetBorder sets the table border.
func (t *Table) SetBorder(b model.Border) { t.border = b }

// Background returns the table background, or nil.
func (t *Table) Background() *model.Color { return t.background }

// SetBackground sets the table background. Nil clears it.
func (t *Table) SetBackground(c *model.Color) { t.background = c }

// Placement returns the overlap policy.
func (t *Table) Placement() Placement { return t.placement }

// SetPlacement changes the overlap policy for subsequent placements.
func (t *Table) SetPlacement(p Placement) { t.placement = p }

// MergePolicy returns how Complete treats irregular nested widths.
func (t *Table) MergePolicy() MergePolicy { return t.mergePolicy }

// SetMergePolicy changes the merge policy for the next Complete.
func (t *Table) SetMergePolicy(m MergePolicy) { t.mergePolicy = m }

// AutoFill reports whether Complete fills empty slots.
func (t *Table) AutoFill() bool { return t.autoFill }

// SetAutoFill toggles filling empty slots on Complete.
func (t *Table) SetAutoFill(enabled bool) {
	if enabled && !t.autoFill {
		t.completed = false
	}
	t.autoFill = enabled
}

// Completed reports whether Complete has run since the last mutation.
func (t *Table) Completed() bool { return t.completed }

// Warnings returns the non-fatal problems recorded so far.
func (t *Table) Warnings() []Warning {
	return append([]Warning(nil), t.warnings...)
}

func (t *Table) touch() {
	t.completed = false
}
