package table

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "table: ". Match with errors.Is; placement
// failures additionally carry a *LayoutError with the rejected rectangle.
var (
	// ErrInvalidColumns is returned when a table would end up with fewer than
	// one column, or when a non-positive column count is requested.
	ErrInvalidColumns = errors.New("table: column count must be positive")

	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("table: index out of range")

	// ErrSpanOverflow indicates a cell whose column span runs past the last column.
	ErrSpanOverflow = errors.New("table: span exceeds column count")

	// ErrOverlap indicates a strict-mode placement over an occupied or reserved slot.
	ErrOverlap = errors.New("table: placement overlaps an occupied slot")

	// ErrWidthCount indicates a width vector whose length differs from the column count.
	ErrWidthCount = errors.New("table: width count does not match column count")

	// ErrInvalidWidths indicates negative widths or widths that sum to zero.
	ErrInvalidWidths = errors.New("table: widths must be non-negative with a positive sum")

	// ErrInvalidPercentage indicates a table width percentage outside (0, 100].
	ErrInvalidPercentage = errors.New("table: width percentage must be in (0, 100]")

	// ErrCellPlaced is returned when a cell already anchored in the table is
	// added again.
	ErrCellPlaced = errors.New("table: cell is already placed")

	// ErrNilCell is returned when a nil cell is added.
	ErrNilCell = errors.New("table: nil cell")

	// ErrNilTable is returned when a nil table is inserted.
	ErrNilTable = errors.New("table: nil table")

	// ErrSelfInsert is returned when a table would end up nested inside itself.
	ErrSelfInsert = errors.New("table: table cannot contain itself")

	// ErrDegenerateMerge is returned by Complete under MergeStrict when a
	// nested table's widths cannot be reconciled cleanly.
	ErrDegenerateMerge = errors.New("table: nested table widths do not reconcile")
)

// LayoutError describes a rejected placement.
type LayoutError struct {
	Op      string // "add cell" or "insert table"
	Row     int
	Col     int
	RowSpan int
	ColSpan int
	Err     error
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s at (%d,%d) spanning %dx%d: %v", e.Op, e.Row, e.Col, e.RowSpan, e.ColSpan, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *LayoutError) Unwrap() error {
	return e.Err
}
