package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/quire/table"
)

const simpleDef = `
columns: 2
header_rows: 1
rows:
  - cells: [{text: a}, {text: b}]
  - cells: [{text: c}, {text: d}]
`

const nestedDef = `
columns = 2
widths = [50.0, 50.0]

[[rows]]
[[rows.cells]]
text = "x"

[[rows.cells]]
[rows.cells.table]
columns = 2
widths = [100.0, 0.0]
[[rows.cells.table.rows]]
cells = [{text = "p"}, {text = "q"}]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	defer SetVersion("", "", "")

	if version != "1.0.0" || commit != "abc123" || date != "2024-01-01" {
		t.Errorf("got %q %q %q", version, commit, date)
	}

	out, _, err := run(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "quire 1.0.0") || !strings.Contains(out, "commit: abc123") {
		t.Errorf("version output = %q", out)
	}
}

func TestRenderCommand(t *testing.T) {
	path := writeFile(t, "simple.yaml", simpleDef)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default markdown", []string{"render", path}, "| a | b |\n|---|---|\n| c | d |\n"},
		{"csv", []string{"render", path, "-f", "csv"}, "a,b\nc,d\n"},
		{"alias", []string{"render", path, "--format", "md"}, "| a | b |\n|---|---|\n| c | d |\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRenderToFile(t *testing.T) {
	path := writeFile(t, "simple.yaml", simpleDef)
	output := filepath.Join(t.TempDir(), "table.html")

	out, stderr, err := run(t, "render", path, "-o", output)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("unexpected stdout %q", out)
	}
	if !strings.Contains(stderr, output) {
		t.Errorf("stderr does not name the output file: %q", stderr)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<thead>") {
		t.Errorf("HTML output missing header section:\n%s", data)
	}
}

func TestRenderErrors(t *testing.T) {
	path := writeFile(t, "simple.yaml", simpleDef)
	nested := writeFile(t, "nested.toml", nestedDef)

	if _, _, err := run(t, "render", path, "-f", "pdf"); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("unknown format error = %v", err)
	}
	if _, _, err := run(t, "render", filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
	if _, _, err := run(t, "render", nested, "--strict-merge"); !errors.Is(err, table.ErrDegenerateMerge) {
		t.Errorf("strict merge error = %v", err)
	}
	if _, _, err := run(t, "render"); err == nil {
		t.Error("render without a file should fail")
	}
}

func TestRenderLogsMergeWarnings(t *testing.T) {
	nested := writeFile(t, "nested.toml", nestedDef)

	out, stderr, err := run(t, "render", nested, "-f", "csv")
	if err != nil {
		t.Fatal(err)
	}
	if out == "" {
		t.Error("no output")
	}
	if !strings.Contains(stderr, "nested table merge") {
		t.Errorf("stderr has no merge warning: %q", stderr)
	}
}

func TestInspectCommand(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		out, _, err := run(t, "inspect", writeFile(t, "simple.yaml", simpleDef))
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{"columns", "header rows", "widths", "50 50", "boundaries", "10 50 90", "merged cleanly"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("warnings", func(t *testing.T) {
		out, _, err := run(t, "inspect", writeFile(t, "nested.toml", nestedDef))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, "collapsed-column") {
			t.Errorf("output missing warning:\n%s", out)
		}
	})
}

func TestRenderMultipleFiles(t *testing.T) {
	a := writeFile(t, "first.yaml", simpleDef)
	b := writeFile(t, "second.yaml", simpleDef)

	out, _, err := run(t, "render", a, b, "--titles")
	if err != nil {
		t.Fatal(err)
	}
	grid := "| a | b |\n|---|---|\n| c | d |"
	want := "## first\n\n" + grid + "\n\n## second\n\n" + grid + "\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	out, _, err = run(t, "render", a, b, "-f", "csv")
	if err != nil {
		t.Fatal(err)
	}
	if want := "a,b\nc,d\n\na,b\nc,d\n"; out != want {
		t.Errorf("csv output = %q, want %q", out, want)
	}
}
