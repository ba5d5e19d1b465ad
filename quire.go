// Package quire provides a fluent API for building tables from declarative
// definitions and rendering them.
//
// Basic usage:
//
//	md, warnings, err := quire.Load("report.yaml").Markdown()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", quire.FormatWarnings(warnings))
//	}
//
// With options:
//
//	html, _, err := quire.Load("report.toml").
//	    AutoFill().
//	    StrictMerge().
//	    HTML()
//
// For building tables in code, use the table package directly and hand the
// result to FromTable, or render it with the render package.
package quire

import (
	"fmt"

	"github.com/tsawler/quire/model"
	"github.com/tsawler/quire/table"
	"github.com/tsawler/quire/tabledef"
)

// Load returns a Composer for the definition file at filename. The file is
// read when a terminal operation runs; YAML or TOML is chosen by extension.
//
// Example:
//
//	text, warnings, err := quire.Load("table.yaml").Text()
func Load(filename string) *Composer {
	return &Composer{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDefinition returns a Composer for an already decoded definition.
// Every terminal operation builds a fresh table from it.
func FromDefinition(d *tabledef.Definition) *Composer {
	return &Composer{
		def:     d,
		options: defaultOptions(),
	}
}

// FromTable returns a Composer for a table built in code. Terminal
// operations complete and render that table in place; the caller keeps
// ownership of it.
//
// Example:
//
//	t, _ := table.New(2)
//	t.AddText("a")
//	md, _, err := quire.FromTable(t).Markdown()
func FromTable(t *table.Table) *Composer {
	return &Composer{
		tbl:     t,
		options: defaultOptions(),
	}
}

// Collect builds the table of every composer into one document, in order.
// Warnings of all tables are returned together. Render the document with
// render.Document.
func Collect(composers ...*Composer) (*model.Document, []Warning, error) {
	doc := model.NewDocument()
	var warnings []Warning
	for i, c := range composers {
		t, w, err := c.Table()
		warnings = append(warnings, w...)
		if err != nil {
			return nil, warnings, fmt.Errorf("table %d (%s): %w", i, c.source(), err)
		}
		doc.Add(t)
	}
	return doc, warnings, nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	d := quire.Must(quire.Load("table.yaml").Definition())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRender is a helper that wraps a call to a terminal operation such as
// Markdown() or Table() and panics if the error is non-nil. It discards
// warnings.
//
// Example:
//
//	md := quire.MustRender(quire.Load("table.yaml").Markdown())
func MustRender[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
