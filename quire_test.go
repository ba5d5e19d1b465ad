package quire

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tsawler/quire/format"
	"github.com/tsawler/quire/table"
	"github.com/tsawler/quire/tabledef"
)

const simpleYAML = `
columns: 2
rows:
  - cells: [{text: a}, {text: b}]
  - cells: [{text: c}, {text: d}]
`

const nestedYAML = `
columns: 2
widths: [50, 50]
rows:
  - cells:
      - {text: x}
      - table:
          columns: 2
          rows: [{cells: [{text: p}, {text: q}]}]
`

const collapsedYAML = `
columns: 1
rows:
  - cells:
      - table:
          columns: 2
          widths: [100, 0]
          rows: [{cells: [{text: p}, {text: q}]}]
`

func writeDef(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRenders(t *testing.T) {
	path := writeDef(t, "simple.yaml", simpleYAML)

	tests := []struct {
		name string
		fn   func(*Composer) (string, []Warning, error)
		want string
	}{
		{"markdown", (*Composer).Markdown, "| a | b |\n|---|---|\n| c | d |\n"},
		{"csv", (*Composer).CSV, "a,b\nc,d\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings, err := tt.fn(Load(path))
			if err != nil {
				t.Fatal(err)
			}
			if len(warnings) != 0 {
				t.Errorf("unexpected warnings: %s", FormatWarnings(warnings))
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderEveryFormat(t *testing.T) {
	c := Load(writeDef(t, "simple.yaml", simpleYAML))
	for _, f := range format.All() {
		t.Run(f.String(), func(t *testing.T) {
			out, _, err := c.Render(f)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out, "a") || !strings.Contains(out, "d") {
				t.Errorf("output missing cell text:\n%s", out)
			}
		})
	}

	if _, _, err := c.Render(format.Unknown); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestNestedDefinitionMerges(t *testing.T) {
	d, err := tabledef.Parse([]byte(nestedYAML), tabledef.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}

	tbl, warnings, err := FromDefinition(d).Table()
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %s", FormatWarnings(warnings))
	}
	if tbl.Columns() != 3 {
		t.Fatalf("Columns = %d, want 3", tbl.Columns())
	}
	want := []float64{50, 25, 25}
	for i, w := range tbl.Widths() {
		if math.Abs(w-want[i]) > 0.0001 {
			t.Errorf("Widths[%d] = %f, want %f", i, w, want[i])
		}
	}

	// Each terminal operation builds a fresh table.
	again, _, err := FromDefinition(d).Table()
	if err != nil {
		t.Fatal(err)
	}
	if again == tbl {
		t.Error("FromDefinition reused a table between calls")
	}

	csv, _, err := FromDefinition(d).CSV()
	if err != nil {
		t.Fatal(err)
	}
	if csv != "x,p,q\n" {
		t.Errorf("CSV = %q", csv)
	}
}

func TestStrictMerge(t *testing.T) {
	path := writeDef(t, "collapsed.yaml", collapsedYAML)

	_, warnings, err := Load(path).Markdown()
	if err != nil {
		t.Fatalf("best effort: %v", err)
	}
	if len(warnings) == 0 {
		t.Error("best effort merge reported no warnings")
	}

	_, _, err = Load(path).StrictMerge().Markdown()
	if !errors.Is(err, table.ErrDegenerateMerge) {
		t.Errorf("strict error = %v, want ErrDegenerateMerge", err)
	}
}

func TestLenient(t *testing.T) {
	const overlapping = `
columns: 2
rows:
  - cells: [{text: x}, {text: y, row_span: 2}]
  - cells: [{text: wide, col_span: 2}]
`
	d, err := tabledef.Parse([]byte(overlapping), tabledef.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := FromDefinition(d).Table(); !errors.Is(err, table.ErrOverlap) {
		t.Fatalf("strict error = %v, want ErrOverlap", err)
	}

	tbl, _, err := FromDefinition(d).Lenient().Table()
	if err != nil {
		t.Fatalf("lenient: %v", err)
	}
	if c := tbl.Cell(1, 0); c == nil || c.Text() != "wide" {
		t.Errorf("Cell(1,0) = %v, want wide", c)
	}
}

func TestFromTable(t *testing.T) {
	tbl, err := table.New(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.AddText("only"); err != nil {
		t.Fatal(err)
	}

	got, _, err := FromTable(tbl).AutoFill().Table()
	if err != nil {
		t.Fatal(err)
	}
	if got != tbl {
		t.Error("FromTable did not return the caller's table")
	}
	if !tbl.Completed() {
		t.Error("table not completed")
	}
	if tbl.Cell(0, 1) == nil {
		t.Error("autofill left slot (0,1) empty")
	}
}

func TestComposerImmutable(t *testing.T) {
	base := Load("t.yaml")
	_ = base.StrictMerge().AutoFill().Lenient().HeaderRows(2).MaxCellWidth(8)

	if base.options.strictMerge || base.options.autoFill || base.options.lenient {
		t.Error("configuration methods modified the base Composer")
	}
	if base.options.headerRows != -1 || base.options.maxCellWidth != 0 {
		t.Errorf("base render options changed: %+v", base.options)
	}
}

func TestComposerErrors(t *testing.T) {
	t.Run("negative header rows", func(t *testing.T) {
		_, _, err := Load("t.yaml").HeaderRows(-1).Markdown()
		if err == nil || !strings.Contains(err.Error(), "header rows") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")).Markdown()
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want ErrNotExist", err)
		}
	})

	t.Run("no source", func(t *testing.T) {
		c := &Composer{options: defaultOptions()}
		if _, _, err := c.Table(); !errors.Is(err, ErrNoSource) {
			t.Errorf("error = %v, want ErrNoSource", err)
		}
	})

	t.Run("definition from table", func(t *testing.T) {
		tbl, _ := table.New(1)
		if _, err := FromTable(tbl).Definition(); !errors.Is(err, ErrNoSource) {
			t.Errorf("error = %v, want ErrNoSource", err)
		}
	})
}

func TestComposerHeaderRowsAndWidth(t *testing.T) {
	path := writeDef(t, "simple.yaml", simpleYAML)

	html, _, err := Load(path).HeaderRows(1).HTML()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "<thead>") {
		t.Errorf("HTML has no header section:\n%s", html)
	}

	plain, _, err := Load(path).HeaderRows(0).HTML()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(plain, "<thead>") {
		t.Errorf("HTML has a header section with zero header rows:\n%s", plain)
	}
}

func TestComposerLayout(t *testing.T) {
	path := writeDef(t, "simple.yaml", simpleYAML)

	l, _, err := Load(path).Layout(0, 0, 200, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Boxes) != 4 {
		t.Errorf("len(Boxes) = %d, want 4", len(l.Boxes))
	}
}

func TestWithLogger(t *testing.T) {
	var buf strings.Builder
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	path := writeDef(t, "simple.yaml", simpleYAML)
	if _, _, err := Load(path).WithLogger(logger).Table(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "table ready") {
		t.Errorf("log output = %q", buf.String())
	}
}

func TestMust(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustRender did not panic")
		}
	}()
	MustRender(Load(filepath.Join(t.TempDir(), "missing.yaml")).Markdown())
}

func TestCollect(t *testing.T) {
	simple := Load(writeDef(t, "simple.yaml", simpleYAML))
	collapsed := Load(writeDef(t, "collapsed.yaml", collapsedYAML))

	doc, warnings, err := Collect(simple, collapsed)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Len() != 2 {
		t.Fatalf("Len = %d, want 2", doc.Len())
	}
	if len(warnings) == 0 {
		t.Error("warnings of the second table were dropped")
	}
	for i, e := range doc.Elements {
		if tbl, ok := e.(*table.Table); !ok || !tbl.Completed() {
			t.Errorf("element %d = %T, want a completed table", i, e)
		}
	}

	_, _, err = Collect(simple, collapsed.StrictMerge())
	if !errors.Is(err, table.ErrDegenerateMerge) || !strings.Contains(err.Error(), "table 1") {
		t.Errorf("error = %v, want ErrDegenerateMerge for table 1", err)
	}
}
