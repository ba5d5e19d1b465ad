package render

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/tsawler/quire/model"
	"github.com/tsawler/quire/table"
)

var (
	termBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	termHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")).Padding(0, 1)
	termCell   = lipgloss.NewStyle().Padding(0, 1)
)

// Terminal renders the table for an ANSI terminal with rounded borders and
// bold header rows. Each cell keeps its own horizontal alignment.
func Terminal(t *table.Table, opts ...Option) (string, error) {
	g, err := prepare(t, newConfig(opts))
	if err != nil {
		return "", err
	}
	if len(g.cells) == 0 {
		return "", nil
	}

	body := g.cells
	offset := 0
	tb := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(termBorder)
	if g.headerRows > 0 {
		tb = tb.Headers(g.cells[0]...)
		body = g.cells[1:]
		offset = 1
	}

	tb = tb.Rows(body...).StyleFunc(func(row, col int) lipgloss.Style {
		gridRow := row + offset
		if row == ltable.HeaderRow {
			gridRow = 0
		}
		style := termCell
		if gridRow < g.headerRows {
			style = termHeader
		}
		if c := t.Owner(gridRow, col); c != nil {
			style = style.Align(lipglossPosition(c.HAlign))
		}
		return style
	})
	return tb.Render(), nil
}

func lipglossPosition(a model.TextAlignment) lipgloss.Position {
	switch a {
	case model.AlignCenter:
		return lipgloss.Center
	case model.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
