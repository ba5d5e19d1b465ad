package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/quire/format"
	"github.com/tsawler/quire/model"
	"github.com/tsawler/quire/table"
)

// Func is the signature shared by the table renderers.
type Func func(*table.Table, ...Option) (string, error)

// ForFormat returns the table renderer for f.
func ForFormat(f format.Format) (Func, error) {
	switch f {
	case format.Markdown:
		return Markdown, nil
	case format.CSV:
		return CSV, nil
	case format.HTML:
		return HTML, nil
	case format.Text:
		return Text, nil
	case format.Terminal:
		return Terminal, nil
	default:
		return nil, fmt.Errorf("render: unsupported format %v", f)
	}
}

// Document completes doc and renders its elements in order. Tables go
// through the renderer for f; headings and other text elements are written
// as paragraphs in the same format. Parts are separated by a blank line.
func Document(doc *model.Document, f format.Format, opts ...Option) (string, error) {
	fn, err := ForFormat(f)
	if err != nil {
		return "", err
	}
	if err := doc.Complete(); err != nil {
		return "", fmt.Errorf("render: completing document: %w", err)
	}

	var parts []string
	for _, e := range doc.Elements {
		switch v := e.(type) {
		case *table.Table:
			out, err := fn(v, opts...)
			if err != nil {
				return "", err
			}
			parts = append(parts, strings.TrimRight(out, "\n"))
		case model.TextElement:
			s, err := textBlock(v, f)
			if err != nil {
				return "", err
			}
			if s != "" {
				parts = append(parts, s)
			}
		}
	}
	if len(parts) == 0 {
		return "", nil
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}

func textBlock(e model.TextElement, f format.Format) (string, error) {
	text := strings.TrimRight(e.GetText(), "\n")
	if text == "" {
		return "", nil
	}
	level := 0
	if h, ok := e.(*model.Heading); ok {
		level = min(max(h.Level, 1), 6)
	}

	switch f {
	case format.Markdown:
		if level > 0 {
			return strings.Repeat("#", level) + " " + text, nil
		}
		return text, nil
	case format.HTML:
		a := atom.P
		if level > 0 {
			a = []atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}[level-1]
		}
		n := element(a)
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		var sb strings.Builder
		if err := html.Render(&sb, n); err != nil {
			return "", fmt.Errorf("render: writing html: %w", err)
		}
		return sb.String(), nil
	case format.CSV:
		// CSV has no place for prose.
		return "", nil
	default:
		return text, nil
	}
}
