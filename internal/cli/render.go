package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/quire"
	"github.com/tsawler/quire/format"
	"github.com/tsawler/quire/model"
	"github.com/tsawler/quire/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output       string // output file; stdout when empty
	format       string // output format name; detected from output when empty
	maxCellWidth int    // truncate cells in text and term output
	headerRows   int    // header row override; -1 keeps the definition's
	strictMerge  bool   // fail instead of warning on irregular nested widths
	lenient      bool   // let cells overwrite each other
	autoFill     bool   // fill empty slots with blank cells
	titles       bool   // precede each table with a heading naming its file
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{headerRows: -1}

	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Render table definitions",
		Long:  `Render builds the tables described by YAML or TOML files and writes them, in order, in the chosen format. Without --format the format is detected from --output, falling back to Markdown.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(opts.format, opts.output)
			if err != nil {
				return err
			}
			return runRender(cmd, args, f, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: "+format.Names())
	cmd.Flags().IntVar(&opts.maxCellWidth, "max-width", 0, "truncate cells wider than this in text and term output")
	cmd.Flags().IntVar(&opts.headerRows, "header-rows", opts.headerRows, "number of header rows (default from definition)")
	cmd.Flags().BoolVar(&opts.strictMerge, "strict-merge", false, "fail on nested widths that do not reconcile")
	cmd.Flags().BoolVar(&opts.lenient, "lenient", false, "allow cells to overwrite each other")
	cmd.Flags().BoolVar(&opts.autoFill, "autofill", false, "fill empty slots with blank cells")
	cmd.Flags().BoolVar(&opts.titles, "titles", false, "write the file name as a heading above each table")

	return cmd
}

// resolveFormat picks the output format from the --format flag, then the
// output file extension, then Markdown.
func resolveFormat(name, output string) (format.Format, error) {
	if name != "" {
		f := format.Parse(name)
		if f == format.Unknown {
			return f, fmt.Errorf("unknown format %q (want %s)", name, format.Names())
		}
		return f, nil
	}
	if output != "" {
		if f := format.Detect(output); f != format.Unknown {
			return f, nil
		}
	}
	return format.Markdown, nil
}

func (o *renderOpts) composer(ctx context.Context, path string) *quire.Composer {
	c := quire.Load(path).WithLogger(loggerFromContext(ctx))
	if o.strictMerge {
		c = c.StrictMerge()
	}
	if o.lenient {
		c = c.Lenient()
	}
	if o.autoFill {
		c = c.AutoFill()
	}
	if o.headerRows >= 0 {
		c = c.HeaderRows(o.headerRows)
	}
	if o.maxCellWidth > 0 {
		c = c.MaxCellWidth(o.maxCellWidth)
	}
	return c
}

func (o *renderOpts) renderOptions() []render.Option {
	opts := []render.Option{render.WithMaxCellWidth(o.maxCellWidth)}
	if o.headerRows >= 0 {
		opts = append(opts, render.WithHeaderRows(o.headerRows))
	}
	return opts
}

func runRender(cmd *cobra.Command, paths []string, f format.Format, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	// Merge warnings are logged by the table itself.
	var (
		out string
		err error
	)
	if len(paths) == 1 && !opts.titles {
		out, _, err = opts.composer(ctx, paths[0]).Render(f)
	} else {
		out, err = renderDocument(ctx, paths, f, opts)
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}
	if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	prog.done(fmt.Sprintf("Rendered %d table(s) as %s", len(paths), f))
	printFile(cmd.ErrOrStderr(), opts.output)
	return nil
}

// renderDocument collects the tables of paths into one document, with a
// heading per file when titles are on.
func renderDocument(ctx context.Context, paths []string, f format.Format, opts *renderOpts) (string, error) {
	composers := make([]*quire.Composer, len(paths))
	for i, p := range paths {
		composers[i] = opts.composer(ctx, p)
	}
	doc, _, err := quire.Collect(composers...)
	if err != nil {
		return "", err
	}

	if opts.titles {
		withTitles := model.NewDocument()
		for i, e := range doc.Elements {
			name := strings.TrimSuffix(filepath.Base(paths[i]), filepath.Ext(paths[i]))
			withTitles.Add(&model.Heading{Text: name, Level: 2}, e)
		}
		doc = withTitles
	}
	return render.Document(doc, f, opts.renderOptions()...)
}
