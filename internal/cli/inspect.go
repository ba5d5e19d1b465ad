package cli

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/quire"
)

func newInspectCmd() *cobra.Command {
	var (
		strictMerge bool
		pageWidth   float64
	)

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the shape of a table after nested tables are merged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := quire.Load(args[0]).WithLogger(loggerFromContext(cmd.Context()))
			if strictMerge {
				c = c.StrictMerge()
			}

			t, warnings, err := c.Table()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(w, args[0])
			printKeyValue(w, "columns", strconv.Itoa(t.Columns()))
			printKeyValue(w, "rows", strconv.Itoa(t.RowCount()))
			printKeyValue(w, "header rows", strconv.Itoa(t.LastHeaderRow()+1))
			printKeyValue(w, "widths", joinFloats(t.Widths()))
			printKeyValue(w, "boundaries", joinFloats(t.ColumnBoundaries(0, pageWidth)))
			for _, warn := range warnings {
				printWarning(w, "%s", warn)
			}
			if len(warnings) == 0 {
				printSuccess(w, "merged cleanly")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strictMerge, "strict-merge", false, "fail on nested widths that do not reconcile")
	cmd.Flags().Float64Var(&pageWidth, "page-width", 100, "available width used to compute column boundaries")

	return cmd
}

// joinFloats formats values rounded to two decimals, space separated.
func joinFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
	}
	return strings.Join(parts, " ")
}
