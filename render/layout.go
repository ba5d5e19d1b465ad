package render

import (
	"errors"

	"github.com/tsawler/quire/model"
	"github.com/tsawler/quire/table"
)

// ErrRowHeight is returned by NewLayout for a non-positive row height.
var ErrRowHeight = errors.New("render: row height must be positive")

// Grid holds the boundaries of a laid-out table.
type Grid struct {
	Rows []float64 // Y-coordinates of row boundaries, top down
	Cols []float64 // X-coordinates of column boundaries
}

// RowCount returns the number of rows
func (g *Grid) RowCount() int {
	if len(g.Rows) <= 1 {
		return 0
	}
	return len(g.Rows) - 1
}

// ColCount returns the number of columns
func (g *Grid) ColCount() int {
	if len(g.Cols) <= 1 {
		return 0
	}
	return len(g.Cols) - 1
}

// CellBBox returns the bounding box of one grid position
func (g *Grid) CellBBox(row, col int) model.BBox {
	return g.SpanBBox(row, col, 1, 1)
}

// SpanBBox returns the bounding box of a rectangle of grid positions. Spans
// reaching past the grid are clipped.
func (g *Grid) SpanBBox(row, col, rowSpan, colSpan int) model.BBox {
	if row < 0 || row >= g.RowCount() || col < 0 || col >= g.ColCount() {
		return model.BBox{}
	}
	lastRow := min(row+max(rowSpan, 1), g.RowCount())
	lastCol := min(col+max(colSpan, 1), g.ColCount())
	return model.NewBBoxFromEdges(g.Cols[col], g.Rows[row], g.Cols[lastCol], g.Rows[lastRow])
}

// Box is one cell placed on the page.
type Box struct {
	Row, Col         int
	RowSpan, ColSpan int
	BBox             model.BBox
	Cell             *table.Cell
	Header           bool
}

// Layout is a completed table positioned in absolute coordinates.
type Layout struct {
	Grid       Grid
	Boxes      []Box
	HeaderRows int
}

// NewLayout positions t with its top-left corner at (left, top) inside an
// available width of totalWidth. The table takes its width percentage (or
// absolute width) of that space and is aligned within it. Every row is
// rowHeight tall. Reserved slots produce no box; the anchor's box covers them.
func NewLayout(t *table.Table, left, top, totalWidth, rowHeight float64, opts ...Option) (*Layout, error) {
	if rowHeight <= 0 {
		return nil, ErrRowHeight
	}
	g, err := prepare(t, newConfig(opts))
	if err != nil {
		return nil, err
	}

	l := &Layout{HeaderRows: g.headerRows}
	l.Grid.Cols = t.ColumnBoundaries(left, totalWidth)
	l.Grid.Rows = make([]float64, t.RowCount()+1)
	for i := range l.Grid.Rows {
		l.Grid.Rows[i] = top + float64(i)*rowHeight
	}

	for i := 0; i < t.RowCount(); i++ {
		for j := 0; j < t.Columns(); j++ {
			c := t.Cell(i, j)
			if c == nil {
				continue
			}
			l.Boxes = append(l.Boxes, Box{
				Row:     i,
				Col:     j,
				RowSpan: c.RowSpan,
				ColSpan: c.ColSpan,
				BBox:    l.Grid.SpanBBox(i, j, c.RowSpan, c.ColSpan),
				Cell:    c,
				Header:  i < g.headerRows || c.Header,
			})
		}
	}
	return l, nil
}

// Bounds returns the rectangle covered by the whole table.
func (l *Layout) Bounds() model.BBox {
	if l.Grid.RowCount() == 0 || l.Grid.ColCount() == 0 {
		return model.BBox{}
	}
	return l.Grid.SpanBBox(0, 0, l.Grid.RowCount(), l.Grid.ColCount())
}

// At returns the box containing p, or nil.
func (l *Layout) At(p model.Point) *Box {
	for i := range l.Boxes {
		if l.Boxes[i].BBox.Contains(p) {
			return &l.Boxes[i]
		}
	}
	return nil
}

// HeaderBoxes returns the boxes a paginating renderer repeats on every page.
func (l *Layout) HeaderBoxes() []Box {
	var out []Box
	for _, b := range l.Boxes {
		if b.Row < l.HeaderRows {
			out = append(out, b)
		}
	}
	return out
}
