package quire

import "github.com/tsawler/quire/table"

// Warning is a non-fatal problem found while completing a table, such as
// nested column widths that had to be reconciled loosely.
type Warning = table.Warning

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	return table.FormatWarnings(warnings)
}
