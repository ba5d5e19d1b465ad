package table

import (
	"math"

	"github.com/tsawler/quire/model"
)

// Widths returns a copy of the proportional column widths, in percent.
func (t *Table) Widths() []float64 {
	return append([]float64(nil), t.widths...)
}

// SetWidths assigns relative column widths. The values are scaled so they
// sum to 100. On error the previous widths are kept.
func (t *Table) SetWidths(widths []float64) error {
	if len(widths) != t.columns {
		return ErrWidthCount
	}
	norm, err := normalizeWidths(widths)
	if err != nil {
		return err
	}
	t.widths = norm
	return nil
}

// SetIntWidths is SetWidths for integer weights such as {1, 2, 1}.
func (t *Table) SetIntWidths(widths []int) error {
	fw := make([]float64, len(widths))
	for i, w := range widths {
		fw[i] = float64(w)
	}
	return t.SetWidths(fw)
}

// normalizeWidths scales widths to percentages. The last column takes the
// remainder so the sum is exactly 100.
func normalizeWidths(widths []float64) ([]float64, error) {
	var total float64
	for _, w := range widths {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, ErrInvalidWidths
		}
		total += w
	}
	if total <= 0 {
		return nil, ErrInvalidWidths
	}

	out := make([]float64, len(widths))
	last := len(widths) - 1
	out[last] = 100
	for i := 0; i < last; i++ {
		out[i] = 100 * widths[i] / total
		out[last] -= out[i]
	}
	if out[last] < 0 {
		out[last] = 0
	}
	return out, nil
}

func equalWidths(columns int) []float64 {
	w := make([]float64, columns)
	for i := range w {
		w[i] = 1
	}
	out, _ := normalizeWidths(w)
	return out
}

// WidthPercentage returns the share of the available width the table takes.
func (t *Table) WidthPercentage() float64 { return t.widthPercentage }

// SetWidthPercentage sets the share of the available width, in (0, 100].
// It clears any absolute width.
func (t *Table) SetWidthPercentage(p float64) error {
	if p <= 0 || p > 100 || math.IsNaN(p) {
		return ErrInvalidPercentage
	}
	t.widthPercentage = p
	t.absoluteWidth = 0
	return nil
}

// AbsoluteWidth returns the fixed table width and whether one is set.
func (t *Table) AbsoluteWidth() (float64, bool) {
	return t.absoluteWidth, t.absoluteWidth > 0
}

// SetAbsoluteWidth fixes the table width in points. Zero or a negative
// value goes back to the width percentage.
func (t *Table) SetAbsoluteWidth(w float64) {
	if w < 0 || math.IsNaN(w) {
		w = 0
	}
	t.absoluteWidth = w
}

// Alignment returns the horizontal position of the table.
func (t *Table) Alignment() model.TextAlignment { return t.alignment }

// SetAlignment sets the horizontal position of the table. Justify and
// undefined fall back to center.
func (t *Table) SetAlignment(a model.TextAlignment) {
	switch a {
	case model.AlignLeft, model.AlignCenter, model.AlignRight:
		t.alignment = a
	default:
		t.alignment = model.AlignCenter
	}
}

// SetAlignmentName sets the alignment from a name such as "left".
func (t *Table) SetAlignmentName(name string) {
	t.SetAlignment(model.ParseTextAlignment(name))
}

// ColumnBoundaries returns Columns()+1 x coordinates: the left edge of every
// column followed by the right edge of the last one. totalWidth is the
// available width starting at left; the table takes its width percentage
// of it (or its absolute width) and is positioned by its alignment.
func (t *Table) ColumnBoundaries(left, totalWidth float64) []float64 {
	w := make([]float64, t.columns+1)

	pct := t.widthPercentage
	if t.absoluteWidth > 0 && totalWidth > 0 {
		pct = 100 * t.absoluteWidth / totalWidth
	}

	switch t.alignment {
	case model.AlignLeft:
		w[0] = left
	case model.AlignRight:
		w[0] = left + totalWidth*(100-pct)/100
	default:
		w[0] = left + totalWidth*(100-pct)/200
	}

	tableWidth := totalWidth * pct / 100
	for i := 1; i < t.columns; i++ {
		w[i] = w[i-1] + t.widths[i-1]*tableWidth/100
	}
	w[t.columns] = w[0] + tableWidth
	return w
}
