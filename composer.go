package quire

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/tsawler/quire/format"
	"github.com/tsawler/quire/render"
	"github.com/tsawler/quire/table"
	"github.com/tsawler/quire/tabledef"
)

// ErrNoSource is returned when a Composer has nothing to build from.
var ErrNoSource = errors.New("quire: no definition or table given")

// Composer provides a fluent interface for building and rendering a table.
// Each configuration method returns a new Composer instance, so a base
// Composer can be shared and specialized.
type Composer struct {
	// Source, exactly one is set
	filename string
	def      *tabledef.Definition
	tbl      *table.Table

	// Configuration
	options ComposeOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Composer with a copy of its options.
func (c *Composer) clone() *Composer {
	return &Composer{
		filename: c.filename,
		def:      c.def,
		tbl:      c.tbl,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Composer instance)
// ============================================================================

// StrictMerge makes nested tables whose widths do not reconcile cleanly an
// error instead of a warning.
//
// Example:
//
//	md, _, err := quire.Load("t.yaml").StrictMerge().Markdown()
func (c *Composer) StrictMerge() *Composer {
	n := c.clone()
	n.options.strictMerge = true
	return n
}

// Lenient lets cells in a definition overwrite each other instead of
// failing on overlap. It has no effect on FromTable.
func (c *Composer) Lenient() *Composer {
	n := c.clone()
	n.options.lenient = true
	return n
}

// AutoFill fills every empty slot with a blank default cell.
func (c *Composer) AutoFill() *Composer {
	n := c.clone()
	n.options.autoFill = true
	return n
}

// HeaderRows overrides how many leading rows renderers treat as headers.
func (c *Composer) HeaderRows(rows int) *Composer {
	n := c.clone()
	if rows < 0 {
		n.err = fmt.Errorf("quire: header rows must not be negative, got %d", rows)
		return n
	}
	n.options.headerRows = rows
	return n
}

// MaxCellWidth truncates cell text to width display columns in the Text
// and Terminal renderers.
func (c *Composer) MaxCellWidth(width int) *Composer {
	n := c.clone()
	n.options.maxCellWidth = width
	return n
}

// WithLogger sets the logger for tables built from a definition.
func (c *Composer) WithLogger(l *log.Logger) *Composer {
	n := c.clone()
	n.options.logger = l
	return n
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Definition returns the decoded definition. It fails for a Composer
// created with FromTable.
func (c *Composer) Definition() (*tabledef.Definition, error) {
	if c.err != nil {
		return nil, c.err
	}
	switch {
	case c.def != nil:
		return c.def, nil
	case c.filename != "":
		return tabledef.LoadFile(c.filename)
	default:
		return nil, ErrNoSource
	}
}

// Table builds and completes the table. Warnings indicate nested widths
// that were reconciled loosely.
func (c *Composer) Table() (*table.Table, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	t := c.tbl
	if t == nil {
		d, err := c.Definition()
		if err != nil {
			return nil, nil, err
		}
		t, err = d.Build(c.tableOptions()...)
		if err != nil {
			return nil, nil, err
		}
	}
	if c.options.autoFill {
		t.SetAutoFill(true)
	}
	if c.options.strictMerge {
		t.SetMergePolicy(table.MergeStrict)
	}

	if err := t.Complete(); err != nil {
		return nil, t.Warnings(), err
	}
	if c.options.logger != nil {
		c.options.logger.Debug("table ready", "source", c.source(), "columns", t.Columns(), "rows", t.RowCount())
	}
	return t, t.Warnings(), nil
}

// Render builds the table and renders it in format f.
func (c *Composer) Render(f format.Format) (string, []Warning, error) {
	fn, err := render.ForFormat(f)
	if err != nil {
		return "", nil, err
	}

	t, warnings, err := c.Table()
	if err != nil {
		return "", warnings, err
	}
	out, err := fn(t, c.renderOptions()...)
	return out, warnings, err
}

// Markdown renders the table as a Markdown table.
//
// Example:
//
//	md, warnings, err := quire.Load("t.yaml").Markdown()
func (c *Composer) Markdown() (string, []Warning, error) { return c.Render(format.Markdown) }

// CSV renders the table as comma-separated values.
func (c *Composer) CSV() (string, []Warning, error) { return c.Render(format.CSV) }

// HTML renders the table as an HTML table element.
func (c *Composer) HTML() (string, []Warning, error) { return c.Render(format.HTML) }

// Text renders the table as a bordered plain-text grid.
func (c *Composer) Text() (string, []Warning, error) { return c.Render(format.Text) }

// Terminal renders the table for an ANSI terminal.
func (c *Composer) Terminal() (string, []Warning, error) { return c.Render(format.Terminal) }

// Layout positions the table in absolute coordinates. See render.NewLayout.
func (c *Composer) Layout(left, top, totalWidth, rowHeight float64) (*render.Layout, []Warning, error) {
	t, warnings, err := c.Table()
	if err != nil {
		return nil, warnings, err
	}
	l, err := render.NewLayout(t, left, top, totalWidth, rowHeight, c.renderOptions()...)
	return l, warnings, err
}

func (c *Composer) tableOptions() []table.Option {
	var opts []table.Option
	if c.options.lenient {
		opts = append(opts, table.WithPlacement(table.PlacementLenient))
	}
	if c.options.logger != nil {
		opts = append(opts, table.WithLogger(c.options.logger))
	}
	return opts
}

func (c *Composer) renderOptions() []render.Option {
	opts := []render.Option{render.WithMaxCellWidth(c.options.maxCellWidth)}
	if c.options.headerRows >= 0 {
		opts = append(opts, render.WithHeaderRows(c.options.headerRows))
	}
	return opts
}

func (c *Composer) source() string {
	switch {
	case c.filename != "":
		return c.filename
	case c.def != nil:
		return "definition"
	default:
		return "table"
	}
}
