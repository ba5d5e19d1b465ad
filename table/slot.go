package table

// Slot is the content of one grid position. It is exactly one of:
//
//   - *Cell: the anchor of a cell
//   - *Table: a nested table waiting to be flattened by Complete
//   - Reserved: a position covered by a spanning cell anchored elsewhere
//   - nil: an empty position
type Slot interface {
	isSlot()
}

func (*Cell) isSlot()  {}
func (*Table) isSlot() {}

// Reserved marks a slot covered by another cell's span. It is only ever
// created by the table for a placed cell, so Owner is never nil for a
// Reserved read from a grid.
type Reserved struct {
	owner *Cell
}

func (Reserved) isSlot() {}

// Owner returns the cell whose span covers this slot.
func (r Reserved) Owner() *Cell {
	return r.owner
}

// Position is a (row, column) coordinate in the grid.
type Position struct {
	Row, Col int
}

// Row is a fixed-width sequence of slots.
type Row struct {
	slots []Slot
}

func newRow(columns int) *Row {
	return &Row{slots: make([]Slot, columns)}
}

// Len returns the number of slots, which equals the table's column count.
func (r *Row) Len() int {
	return len(r.slots)
}

// Slot returns the slot at col, or nil when col is out of range.
func (r *Row) Slot(col int) Slot {
	if col < 0 || col >= len(r.slots) {
		return nil
	}
	return r.slots[col]
}

// Cell returns the cell anchored at col, or nil.
func (r *Row) Cell(col int) *Cell {
	c, _ := r.Slot(col).(*Cell)
	return c
}

// Table returns the nested table at col, or nil.
func (r *Row) Table(col int) *Table {
	t, _ := r.Slot(col).(*Table)
	return t
}

// IsReserved reports whether col is covered by a cell anchored elsewhere.
func (r *Row) IsReserved(col int) bool {
	_, ok := r.Slot(col).(Reserved)
	return ok
}

// IsOccupied reports whether col holds anything at all.
func (r *Row) IsOccupied(col int) bool {
	return r.Slot(col) != nil
}

// IsEmpty reports whether every slot is empty.
func (r *Row) IsEmpty() bool {
	for _, s := range r.slots {
		if s != nil {
			return false
		}
	}
	return true
}

func (r *Row) grow(n int) {
	r.slots = append(r.slots, make([]Slot, n)...)
}

func (r *Row) deleteColumn(col int) {
	r.slots = append(r.slots[:col], r.slots[col+1:]...)
}
