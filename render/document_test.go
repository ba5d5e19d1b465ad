package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/quire/format"
	"github.com/tsawler/quire/model"
	"github.com/tsawler/quire/table"
)

func TestForFormat(t *testing.T) {
	for _, f := range format.All() {
		if fn, err := ForFormat(f); err != nil || fn == nil {
			t.Errorf("ForFormat(%v) = %v, %v", f, fn, err)
		}
	}
	if _, err := ForFormat(format.Unknown); err == nil {
		t.Error("ForFormat(Unknown) should fail")
	}
}

func TestDocument(t *testing.T) {
	newDoc := func(t *testing.T) *model.Document {
		doc := model.NewDocument()
		doc.Add(
			&model.Heading{Text: "Sales", Level: 2},
			build(t, 2, []string{"a", "b"}),
			model.NewParagraph("a <note>"),
		)
		return doc
	}

	tests := []struct {
		format format.Format
		want   string
	}{
		{format.Markdown, "## Sales\n\n| a | b |\n|---|---|\n\na <note>\n"},
		{format.CSV, "a,b\n"},
		{format.Text, "Sales\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			got, err := Document(newDoc(t), tt.format)
			if err != nil {
				t.Fatal(err)
			}
			if tt.format == format.Text {
				if !strings.HasPrefix(got, tt.want) || !strings.HasSuffix(got, "\n\na <note>\n") {
					t.Errorf("Document =\n%s", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Document = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("html", func(t *testing.T) {
		got, err := Document(newDoc(t), format.HTML)
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{"<h2>Sales</h2>\n\n<table", "</table>\n\n<p>a &lt;note&gt;</p>\n"} {
			if !strings.Contains(got, want) {
				t.Errorf("HTML missing %q:\n%s", want, got)
			}
		}
	})
}

func TestDocumentCompletesTables(t *testing.T) {
	inner, err := table.New(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := inner.SetWidths([]float64{100, 0}); err != nil {
		t.Fatal(err)
	}
	outer := build(t, 1, nil, table.WithMergePolicy(table.MergeStrict))
	if err := outer.InsertTable(inner); err != nil {
		t.Fatal(err)
	}
	doc := model.NewDocument()
	doc.Add(outer)

	if _, err := Document(doc, format.CSV); !errors.Is(err, table.ErrDegenerateMerge) {
		t.Errorf("error = %v, want ErrDegenerateMerge", err)
	}
	if _, err := Document(model.NewDocument(), format.Unknown); err == nil {
		t.Error("expected error for unknown format")
	}
}
