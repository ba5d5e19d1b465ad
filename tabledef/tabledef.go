// Package tabledef reads declarative table definitions from YAML or TOML and
// builds them into tables.
//
// A definition lists rows of cells. Cells are placed left to right in their
// row, skipping slots already covered by a row span from above. A cell may
// hold a nested definition instead of text; it is inserted as a nested table
// and flattened when the table is completed.
//
//	columns: 3
//	widths: [30, 40, 30]
//	header_rows: 1
//	rows:
//	  - cells: [{text: Region}, {text: Q1}, {text: Q2}]
//	  - cells:
//	      - {text: North, row_span: 2}
//	      - table:
//	          columns: 2
//	          rows: [{cells: [{text: a}, {text: b}]}]
//	      - {text: "12"}
package tabledef

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsawler/quire/model"
	"github.com/tsawler/quire/table"
)

var (
	// ErrUnknownFormat is returned for a format or file extension that is
	// neither YAML nor TOML.
	ErrUnknownFormat = errors.New("tabledef: unknown format")

	// ErrUnknownField is returned when a document contains keys that do not
	// map to a definition field.
	ErrUnknownField = errors.New("tabledef: unknown field")

	// ErrBadValue is returned for an alignment, placement or color that
	// cannot be parsed.
	ErrBadValue = errors.New("tabledef: bad value")

	// ErrRowOverflow is returned when a row lists more cells than fit.
	ErrRowOverflow = errors.New("tabledef: row has more cells than columns")
)

// Definition describes one table.
type Definition struct {
	Columns       int       `yaml:"columns" toml:"columns"`
	Widths        []float64 `yaml:"widths,omitempty" toml:"widths,omitempty"`
	Width         float64   `yaml:"width,omitempty" toml:"width,omitempty"`
	AbsoluteWidth float64   `yaml:"absolute_width,omitempty" toml:"absolute_width,omitempty"`
	Align         string    `yaml:"align,omitempty" toml:"align,omitempty"`
	Placement     string    `yaml:"placement,omitempty" toml:"placement,omitempty"`
	StrictMerge   bool      `yaml:"strict_merge,omitempty" toml:"strict_merge,omitempty"`
	AutoFill      bool      `yaml:"autofill,omitempty" toml:"autofill,omitempty"`
	HeaderRows    int       `yaml:"header_rows,omitempty" toml:"header_rows,omitempty"`
	Padding       float64   `yaml:"padding,omitempty" toml:"padding,omitempty"`
	Spacing       float64   `yaml:"spacing,omitempty" toml:"spacing,omitempty"`
	Background    string    `yaml:"background,omitempty" toml:"background,omitempty"`
	Default       *CellDef  `yaml:"default,omitempty" toml:"default,omitempty"`
	Rows          []RowDef  `yaml:"rows,omitempty" toml:"rows,omitempty"`

	// BaseDir resolves relative image paths. LoadFile sets it to the
	// directory of the file.
	BaseDir string `yaml:"-" toml:"-"`
}

// RowDef is one row of cells.
type RowDef struct {
	Cells []CellDef `yaml:"cells" toml:"cells"`
}

// CellDef describes one cell. When Table is set the cell holds a nested
// table and the content and styling fields are ignored. Otherwise the cell
// holds, in order, the image, the text and the list items that are set.
type CellDef struct {
	Text       string      `yaml:"text,omitempty" toml:"text,omitempty"`
	Image      string      `yaml:"image,omitempty" toml:"image,omitempty"`
	Alt        string      `yaml:"alt,omitempty" toml:"alt,omitempty"`
	List       []string    `yaml:"list,omitempty" toml:"list,omitempty"`
	Ordered    bool        `yaml:"ordered,omitempty" toml:"ordered,omitempty"`
	RowSpan    int         `yaml:"row_span,omitempty" toml:"row_span,omitempty"`
	ColSpan    int         `yaml:"col_span,omitempty" toml:"col_span,omitempty"`
	Align      string      `yaml:"align,omitempty" toml:"align,omitempty"`
	VAlign     string      `yaml:"valign,omitempty" toml:"valign,omitempty"`
	Header     bool        `yaml:"header,omitempty" toml:"header,omitempty"`
	NoWrap     bool        `yaml:"nowrap,omitempty" toml:"nowrap,omitempty"`
	Background string      `yaml:"background,omitempty" toml:"background,omitempty"`
	Table      *Definition `yaml:"table,omitempty" toml:"table,omitempty"`
}

// Build creates the table described by d. opts apply to the table and to
// every nested table; settings in the definition take precedence.
func (d *Definition) Build(opts ...table.Option) (*table.Table, error) {
	return d.build(d.BaseDir, opts)
}

func (d *Definition) build(dir string, opts []table.Option) (*table.Table, error) {
	tblOpts := append([]table.Option(nil), opts...)
	switch d.Placement {
	case "", "strict":
	case "lenient":
		tblOpts = append(tblOpts, table.WithPlacement(table.PlacementLenient))
	default:
		return nil, fmt.Errorf("%w: placement %q", ErrBadValue, d.Placement)
	}
	if d.StrictMerge {
		tblOpts = append(tblOpts, table.WithMergePolicy(table.MergeStrict))
	}
	if d.AutoFill {
		tblOpts = append(tblOpts, table.WithAutoFill(true))
	}

	t, err := table.New(d.Columns, tblOpts...)
	if err != nil {
		return nil, fmt.Errorf("tabledef: %w", err)
	}
	if err := d.applyAttributes(t); err != nil {
		return nil, err
	}

	for i, row := range d.Rows {
		col := 0
		for k, cd := range row.Cells {
			for col < t.Columns() && t.Element(i, col) != nil {
				col++
			}
			if col >= t.Columns() {
				return nil, fmt.Errorf("%w: row %d cell %d", ErrRowOverflow, i, k)
			}
			span, err := cd.place(t, i, col, dir, opts)
			if err != nil {
				return nil, fmt.Errorf("tabledef: row %d cell %d: %w", i, k, err)
			}
			col += span
		}
	}

	if d.HeaderRows > 0 {
		t.SetLastHeaderRow(d.HeaderRows - 1)
	}
	return t, nil
}

func (d *Definition) applyAttributes(t *table.Table) error {
	if len(d.Widths) > 0 {
		if err := t.SetWidths(d.Widths); err != nil {
			return fmt.Errorf("tabledef: widths: %w", err)
		}
	}
	if d.Width != 0 {
		if err := t.SetWidthPercentage(d.Width); err != nil {
			return fmt.Errorf("tabledef: width: %w", err)
		}
	}
	if d.AbsoluteWidth > 0 {
		t.SetAbsoluteWidth(d.AbsoluteWidth)
	}
	if d.Align != "" {
		a := model.ParseTextAlignment(d.Align)
		if a == model.AlignUndefined {
			return fmt.Errorf("%w: align %q", ErrBadValue, d.Align)
		}
		t.SetAlignment(a)
	}
	t.SetPadding(d.Padding)
	t.SetSpacing(d.Spacing)
	if d.Background != "" {
		c, ok := model.ParseColor(d.Background)
		if !ok {
			return fmt.Errorf("%w: background %q", ErrBadValue, d.Background)
		}
		t.SetBackground(&c)
	}
	if d.Default != nil {
		def, err := d.Default.cell(t.DefaultCell())
		if err != nil {
			return fmt.Errorf("tabledef: default cell: %w", err)
		}
		t.SetDefaultCell(def)
	}
	return nil
}

// place adds cd at (row, col) and returns its column span.
func (cd CellDef) place(t *table.Table, row, col int, dir string, opts []table.Option) (int, error) {
	if cd.Table != nil {
		nested, err := cd.Table.build(dir, opts)
		if err != nil {
			return 0, err
		}
		return 1, t.InsertTableAt(nested, row, col)
	}

	content, err := cd.content(dir)
	if err != nil {
		return 0, err
	}
	c, err := cd.cell(table.NewCell(content...))
	if err != nil {
		return 0, err
	}
	c.Span(max(cd.RowSpan, 1), max(cd.ColSpan, 1))
	return c.ColSpan, t.AddCellAt(c, row, col)
}

// content loads the elements the cell holds.
func (cd CellDef) content(dir string) ([]model.Element, error) {
	var elems []model.Element
	if cd.Image != "" {
		path := cd.Image
		if !filepath.IsAbs(path) && dir != "" {
			path = filepath.Join(dir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("image: %w", err)
		}
		img, err := model.NewImage(data, cd.Alt)
		if err != nil {
			return nil, fmt.Errorf("image %s: %w", cd.Image, err)
		}
		elems = append(elems, img)
	}
	if cd.Text != "" {
		elems = append(elems, model.NewParagraph(cd.Text))
	}
	if len(cd.List) > 0 {
		l := &model.List{Ordered: cd.Ordered}
		for i, item := range cd.List {
			bullet := "•"
			if cd.Ordered {
				bullet = fmt.Sprintf("%d.", i+1)
			}
			l.Items = append(l.Items, model.ListItem{Text: item, Bullet: bullet})
		}
		elems = append(elems, l)
	}
	return elems, nil
}

// cell applies the styling of cd to c.
func (cd CellDef) cell(c *table.Cell) (*table.Cell, error) {
	if cd.Align != "" {
		if c.HAlign = model.ParseTextAlignment(cd.Align); c.HAlign == model.AlignUndefined {
			return nil, fmt.Errorf("%w: align %q", ErrBadValue, cd.Align)
		}
	}
	if cd.VAlign != "" {
		if c.VAlign = model.ParseVerticalAlignment(cd.VAlign); c.VAlign == model.VAlignUndefined {
			return nil, fmt.Errorf("%w: valign %q", ErrBadValue, cd.VAlign)
		}
	}
	if cd.Background != "" {
		bg, ok := model.ParseColor(cd.Background)
		if !ok {
			return nil, fmt.Errorf("%w: background %q", ErrBadValue, cd.Background)
		}
		c.Background = &bg
	}
	c.Header = c.Header || cd.Header
	c.NoWrap = c.NoWrap || cd.NoWrap
	return c, nil
}
