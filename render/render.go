// Package render serializes completed tables.
//
// Every renderer completes the table first, so nested tables are flattened
// and, with autofill on, empty slots are filled. Reserved slots carry no text
// of their own: grid formats (Markdown, CSV, Text, Terminal) leave them
// blank, HTML expresses them with rowspan and colspan, and Layout folds them
// into the anchor's rectangle.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/quire/table"
)

// ErrNilTable is returned when a renderer is given a nil table.
var ErrNilTable = errors.New("render: nil table")

// Option configures a renderer.
type Option func(*config)

type config struct {
	maxCellWidth int
	headerRows   int // -1 means use the table's header rows
}

func newConfig(opts []Option) config {
	c := config{headerRows: -1}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithMaxCellWidth truncates cell text to n display columns in the Text and
// Terminal renderers. Zero disables truncation.
func WithMaxCellWidth(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.maxCellWidth = n
	}
}

// WithHeaderRows overrides the number of header rows taken from the table.
func WithHeaderRows(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.headerRows = n
	}
}

// grid is the text of a completed table with one entry per slot.
type grid struct {
	t          *table.Table
	cells      [][]string
	headerRows int
}

func prepare(t *table.Table, cfg config) (*grid, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if !t.Completed() {
		if err := t.Complete(); err != nil {
			return nil, fmt.Errorf("render: completing table: %w", err)
		}
	}

	g := &grid{t: t, cells: make([][]string, t.RowCount())}
	for i := range g.cells {
		g.cells[i] = make([]string, t.Columns())
		for j := range g.cells[i] {
			if c := t.Cell(i, j); c != nil {
				g.cells[i][j] = cellText(c, cfg.maxCellWidth)
			}
		}
	}

	g.headerRows = t.LastHeaderRow() + 1
	if cfg.headerRows >= 0 {
		g.headerRows = cfg.headerRows
	}
	if g.headerRows > len(g.cells) {
		g.headerRows = len(g.cells)
	}
	return g, nil
}

// cellText flattens a cell's content to one NFC-normalized line.
func cellText(c *table.Cell, maxWidth int) string {
	s := norm.NFC.String(c.Text())
	s = strings.Join(strings.Fields(s), " ")
	if maxWidth > 0 && runewidth.StringWidth(s) > maxWidth {
		s = runewidth.Truncate(s, maxWidth, "…")
	}
	return s
}
