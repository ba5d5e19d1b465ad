package render

import (
	"encoding/csv"
	"strings"

	"github.com/tsawler/quire/table"
)

// CSV renders one record per row with one field per column. Slots covered
// by a spanning cell are empty fields.
func CSV(t *table.Table, opts ...Option) (string, error) {
	g, err := prepare(t, newConfig(opts))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.WriteAll(g.cells); err != nil {
		return "", err
	}
	return sb.String(), nil
}
