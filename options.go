package quire

import "github.com/charmbracelet/log"

// ComposeOptions holds configuration for building and rendering a table.
type ComposeOptions struct {
	// Building
	strictMerge bool
	lenient     bool
	autoFill    bool

	// Rendering
	headerRows   int // -1 keeps the table's own header rows
	maxCellWidth int

	logger *log.Logger
}

// defaultOptions returns the default options.
func defaultOptions() ComposeOptions {
	return ComposeOptions{
		strictMerge:  false,
		lenient:      false,
		autoFill:     false,
		headerRows:   -1,
		maxCellWidth: 0,
	}
}

// clone creates a copy of ComposeOptions. The logger is shared.
func (o ComposeOptions) clone() ComposeOptions {
	return ComposeOptions{
		strictMerge:  o.strictMerge,
		lenient:      o.lenient,
		autoFill:     o.autoFill,
		headerRows:   o.headerRows,
		maxCellWidth: o.maxCellWidth,
		logger:       o.logger,
	}
}
