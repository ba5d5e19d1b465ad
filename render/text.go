package render

import (
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/tsawler/quire/model"
	"github.com/tsawler/quire/table"
)

// Text renders the table as a bordered plain-text grid. The first header
// row, if any, is drawn as the header; column alignment follows the first
// body cell of each column.
func Text(t *table.Table, opts ...Option) (string, error) {
	g, err := prepare(t, newConfig(opts))
	if err != nil {
		return "", err
	}
	if len(g.cells) == 0 {
		return "", nil
	}

	var sb strings.Builder
	w := tablewriter.NewWriter(&sb)
	w.SetAutoFormatHeaders(false)
	w.SetAutoWrapText(false)
	w.SetAlignment(tablewriter.ALIGN_LEFT)

	body := g.cells
	if g.headerRows > 0 {
		w.SetHeader(g.cells[0])
		body = g.cells[1:]
	}
	w.SetColumnAlignment(columnAlignments(g))
	w.AppendBulk(body)
	w.Render()
	return sb.String(), nil
}

func columnAlignments(g *grid) []int {
	first := g.headerRows
	if first >= len(g.cells) {
		first = len(g.cells) - 1
	}
	out := make([]int, g.t.Columns())
	for j := range out {
		out[j] = tablewriter.ALIGN_LEFT
		c := g.t.Cell(first, j)
		if c == nil {
			continue
		}
		switch c.HAlign {
		case model.AlignCenter:
			out[j] = tablewriter.ALIGN_CENTER
		case model.AlignRight:
			out[j] = tablewriter.ALIGN_RIGHT
		}
	}
	return out
}
