package render

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/quire/model"
	"github.com/tsawler/quire/table"
)

// HTML renders the table as an HTML <table> element. Spanning cells become
// rowspan and colspan attributes, header rows go into <thead>, and the
// column widths are written to a <colgroup>.
func HTML(t *table.Table, opts ...Option) (string, error) {
	g, err := prepare(t, newConfig(opts))
	if err != nil {
		return "", err
	}

	root := element(atom.Table, tableAttrs(t)...)

	colgroup := element(atom.Colgroup)
	for _, w := range t.Widths() {
		colgroup.AppendChild(element(atom.Col, attr("style", "width:"+percent(w))))
	}
	root.AppendChild(colgroup)

	if g.headerRows > 0 {
		thead := element(atom.Thead)
		for i := 0; i < g.headerRows; i++ {
			thead.AppendChild(htmlRow(t, i, true))
		}
		root.AppendChild(thead)
	}
	tbody := element(atom.Tbody)
	for i := g.headerRows; i < t.RowCount(); i++ {
		tbody.AppendChild(htmlRow(t, i, false))
	}
	root.AppendChild(tbody)

	var sb strings.Builder
	if err := html.Render(&sb, root); err != nil {
		return "", fmt.Errorf("render: writing html: %w", err)
	}
	sb.WriteString("\n")
	return sb.String(), nil
}

func tableAttrs(t *table.Table) []html.Attribute {
	attrs := []html.Attribute{attr("id", fmt.Sprintf("t%d", t.ID()))}
	if b := t.Border(); b.Sides != model.BorderNone && b.Width > 0 {
		attrs = append(attrs, attr("border", number(b.Width)))
	}
	attrs = append(attrs,
		attr("cellpadding", number(t.Padding())),
		attr("cellspacing", number(t.Spacing())),
	)

	var style []string
	if w, ok := t.AbsoluteWidth(); ok {
		style = append(style, "width:"+number(w)+"px")
	} else {
		style = append(style, "width:"+percent(t.WidthPercentage()))
	}
	switch t.Alignment() {
	case model.AlignLeft:
		style = append(style, "margin-right:auto")
	case model.AlignRight:
		style = append(style, "margin-left:auto")
	default:
		style = append(style, "margin-left:auto", "margin-right:auto")
	}
	if bg := t.Background(); bg != nil {
		style = append(style, "background-color:"+bg.Hex())
	}
	return append(attrs, attr("style", strings.Join(style, ";")))
}

func htmlRow(t *table.Table, i int, header bool) *html.Node {
	tr := element(atom.Tr)
	for j := 0; j < t.Columns(); j++ {
		if t.IsReserved(i, j) {
			continue
		}
		c := t.Cell(i, j)
		if c == nil {
			tr.AppendChild(element(atom.Td))
			continue
		}

		a := atom.Td
		if header || c.Header {
			a = atom.Th
		}
		td := element(a, cellAttrs(c)...)
		appendContent(td, c.Content)
		tr.AppendChild(td)
	}
	return tr
}

// appendContent writes cell content into td. Text lines are separated by
// <br>, lists become <ul> or <ol> and images are inlined as data URIs.
func appendContent(td *html.Node, content []model.Element) {
	lineBreak := func() {
		if td.LastChild != nil {
			td.AppendChild(element(atom.Br))
		}
	}
	for _, e := range content {
		switch v := e.(type) {
		case *model.Image:
			lineBreak()
			td.AppendChild(imageNode(v))
		case *model.List:
			a := atom.Ul
			if v.Ordered {
				a = atom.Ol
			}
			list := element(a)
			for _, item := range v.Items {
				li := element(atom.Li)
				li.AppendChild(&html.Node{Type: html.TextNode, Data: norm.NFC.String(item.Text)})
				list.AppendChild(li)
			}
			td.AppendChild(list)
		case model.TextElement:
			text := strings.TrimRight(v.GetText(), "\n")
			if text == "" {
				continue
			}
			lineBreak()
			for k, line := range strings.Split(norm.NFC.String(text), "\n") {
				if k > 0 {
					td.AppendChild(element(atom.Br))
				}
				if line != "" {
					td.AppendChild(&html.Node{Type: html.TextNode, Data: line})
				}
			}
		}
	}
}

func imageNode(img *model.Image) *html.Node {
	mime := "application/octet-stream"
	if img.Format != model.ImageFormatUnknown {
		mime = "image/" + img.Format.String()
	}
	w, h := img.Size()
	return element(atom.Img,
		attr("src", "data:"+mime+";base64,"+base64.StdEncoding.EncodeToString(img.Data)),
		attr("alt", img.AltText),
		attr("width", number(w)),
		attr("height", number(h)),
	)
}

func cellAttrs(c *table.Cell) []html.Attribute {
	var attrs []html.Attribute
	if c.RowSpan > 1 {
		attrs = append(attrs, attr("rowspan", strconv.Itoa(c.RowSpan)))
	}
	if c.ColSpan > 1 {
		attrs = append(attrs, attr("colspan", strconv.Itoa(c.ColSpan)))
	}

	var style []string
	if c.HAlign != model.AlignUndefined {
		style = append(style, "text-align:"+c.HAlign.String())
	}
	if c.VAlign != model.VAlignUndefined {
		style = append(style, "vertical-align:"+c.VAlign.String())
	}
	if c.Background != nil {
		style = append(style, "background-color:"+c.Background.Hex())
	}
	if c.NoWrap {
		style = append(style, "white-space:nowrap")
	}
	if len(style) > 0 {
		attrs = append(attrs, attr("style", strings.Join(style, ";")))
	}
	return attrs
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// percent formats a width to two decimals without trailing zeros.
func percent(f float64) string {
	return strconv.FormatFloat(float64(int64(f*100+0.5))/100, 'f', -1, 64) + "%"
}
