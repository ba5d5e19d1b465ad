package render

import (
	"strings"

	"github.com/tsawler/quire/model"
	"github.com/tsawler/quire/table"
)

// Markdown renders the table as a GitHub-flavored Markdown table. The first
// row becomes the header line; Markdown has no spans, so slots covered by a
// spanning cell are left blank.
func Markdown(t *table.Table, opts ...Option) (string, error) {
	g, err := prepare(t, newConfig(opts))
	if err != nil {
		return "", err
	}
	if len(g.cells) == 0 {
		return "", nil
	}

	var sb strings.Builder
	writeMarkdownRow(&sb, g.cells[0])

	// Separator
	for j := range g.cells[0] {
		sb.WriteString("|")
		sb.WriteString(markdownRule(g, j))
		if j == len(g.cells[0])-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	for i := 1; i < len(g.cells); i++ {
		writeMarkdownRow(&sb, g.cells[i])
	}
	return sb.String(), nil
}

func writeMarkdownRow(sb *strings.Builder, row []string) {
	for j, text := range row {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(text, "|", `\|`))
		sb.WriteString(" ")
		if j == len(row)-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")
}

// markdownRule aligns a column by its first body cell.
func markdownRule(g *grid, col int) string {
	row := 1
	if len(g.cells) == 1 {
		row = 0
	}
	c := g.t.Cell(row, col)
	if c == nil {
		return "---"
	}
	switch c.HAlign {
	case model.AlignCenter:
		return ":---:"
	case model.AlignRight:
		return "---:"
	default:
		return "---"
	}
}
