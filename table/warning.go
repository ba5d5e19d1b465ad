package table

import (
	"fmt"
	"strings"
)

// WarningKind classifies a non-fatal problem found while completing a table.
type WarningKind int

const (
	// WarnPartitionTotal: a nested table's widths do not add up to 100.
	WarnPartitionTotal WarningKind = iota
	// WarnCollapsedColumn: a nested column is narrower than the merge
	// tolerance and shares an edge with its neighbour.
	WarnCollapsedColumn
	// WarnMergeOverlap: two cells claimed the same slot while flattening.
	WarnMergeOverlap
)

func (k WarningKind) String() string {
	switch k {
	case WarnPartitionTotal:
		return "partition-total"
	case WarnCollapsedColumn:
		return "collapsed-column"
	case WarnMergeOverlap:
		return "merge-overlap"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal problem. Row and Col locate it in the grid as it
// was before flattening.
type Warning struct {
	Kind    WarningKind
	Row     int
	Col     int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s at (%d,%d): %s", w.Kind, w.Row, w.Col, w.Message)
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
