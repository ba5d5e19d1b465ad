package table

import "github.com/tsawler/quire/model"

// Cell is one table cell. Its top-left slot in the grid is the anchor; the
// other slots of its RowSpan x ColSpan rectangle are Reserved.
//
// Alignment, Border and Background left at their zero value are filled in
// from the table's default cell when the cell is placed.
//
// A cell belongs to one slot of one grid. Place a Clone to repeat it, and do
// not change the spans of a cell after placing it. Complete copies the cells
// of nested tables, so a nested table keeps its own grid.
type Cell struct {
	RowSpan    int
	ColSpan    int
	HAlign     model.TextAlignment
	VAlign     model.VerticalAlignment
	Border     *model.Border
	Background *model.Color
	Header     bool
	NoWrap     bool
	Content    []model.Element
}

// NewCell creates a 1x1 cell holding content.
func NewCell(content ...model.Element) *Cell {
	c := &Cell{RowSpan: 1, ColSpan: 1}
	c.Add(content...)
	return c
}

// NewTextCell creates a 1x1 cell holding a single paragraph. An empty string
// yields a cell without content.
func NewTextCell(text string) *Cell {
	if text == "" {
		return NewCell()
	}
	return NewCell(model.NewParagraph(text))
}

// Add appends content elements and returns the cell for chaining.
func (c *Cell) Add(content ...model.Element) *Cell {
	for _, e := range content {
		if e != nil {
			c.Content = append(c.Content, e)
		}
	}
	return c
}

// Span sets the row and column span and returns the cell for chaining.
func (c *Cell) Span(rows, cols int) *Cell {
	c.RowSpan = rows
	c.ColSpan = cols
	return c
}

// IsEmpty reports whether the cell has no content.
func (c *Cell) IsEmpty() bool {
	return len(c.Content) == 0
}

// IsTableContainer reports whether the cell's only content is a table.
// Such a cell is inserted as a nested table rather than placed as a cell.
func (c *Cell) IsTableContainer() bool {
	if len(c.Content) != 1 {
		return false
	}
	_, ok := c.Content[0].(*Table)
	return ok
}

// AsTable returns the table held by a table container, or nil.
func (c *Cell) AsTable() *Table {
	if !c.IsTableContainer() {
		return nil
	}
	return c.Content[0].(*Table)
}

// Text returns the plain text of the cell content.
func (c *Cell) Text() string {
	return model.PlainText(c.Content)
}

// Clone returns a copy of the cell. Content elements are shared; the
// content slice itself is not.
func (c *Cell) Clone() *Cell {
	cp := *c
	cp.Content = append([]model.Element(nil), c.Content...)
	if c.Border != nil {
		b := *c.Border
		cp.Border = &b
	}
	if c.Background != nil {
		bg := *c.Background
		cp.Background = &bg
	}
	return &cp
}

// blank returns a 1x1 copy of the cell's styling without content.
func (c *Cell) blank() *Cell {
	cp := c.Clone()
	cp.RowSpan, cp.ColSpan = 1, 1
	cp.Content = nil
	return cp
}

// inherit fills undefined attributes from def.
func (c *Cell) inherit(def *Cell) {
	if c.HAlign == model.AlignUndefined {
		c.HAlign = def.HAlign
	}
	if c.VAlign == model.VAlignUndefined {
		c.VAlign = def.VAlign
	}
	if c.Border == nil && def.Border != nil {
		b := *def.Border
		c.Border = &b
	}
	if c.Background == nil && def.Background != nil {
		bg := *def.Background
		c.Background = &bg
	}
}

func defaultCell() Cell {
	return Cell{
		RowSpan: 1,
		ColSpan: 1,
		HAlign:  model.AlignLeft,
		VAlign:  model.VAlignTop,
		Border: &model.Border{
			Sides: model.BorderBox,
			Width: 0.5,
		},
	}
}
