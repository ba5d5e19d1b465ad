package model

import "strings"

// ElementType represents the type of a document element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeParagraph
	ElementTypeHeading
	ElementTypeList
	ElementTypeTable
	ElementTypeImage
	ElementTypePhrase
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeParagraph:
		return "Paragraph"
	case ElementTypeHeading:
		return "Heading"
	case ElementTypeList:
		return "List"
	case ElementTypeTable:
		return "Table"
	case ElementTypeImage:
		return "Image"
	case ElementTypePhrase:
		return "Phrase"
	default:
		return "Unknown"
	}
}

// Element is the interface for all document elements
type Element interface {
	Type() ElementType
}

// TextElement is an interface for elements containing text
type TextElement interface {
	Element
	GetText() string
}

// Completer is implemented by elements that need a finishing pass before
// they can be rendered, such as tables holding nested tables.
type Completer interface {
	Complete() error
}

// Phrase is a run of text sharing one style
type Phrase struct {
	Text  string
	Style TextStyle
}

func (p *Phrase) Type() ElementType { return ElementTypePhrase }
func (p *Phrase) GetText() string   { return p.Text }

// Paragraph represents a paragraph of text
type Paragraph struct {
	Text      string
	FontSize  float64
	FontName  string
	Style     TextStyle
	Alignment TextAlignment
	Leading   float64
}

// NewParagraph creates a paragraph holding text
func NewParagraph(text string) *Paragraph {
	return &Paragraph{Text: text}
}

func (p *Paragraph) Type() ElementType { return ElementTypeParagraph }
func (p *Paragraph) GetText() string   { return p.Text }

// Heading represents a heading
type Heading struct {
	Text     string
	Level    int // 1-6
	FontSize float64
	FontName string
	Style    TextStyle
}

func (h *Heading) Type() ElementType { return ElementTypeHeading }
func (h *Heading) GetText() string   { return h.Text }

// List represents a list (ordered or unordered)
type List struct {
	Items   []ListItem
	Ordered bool
}

func (l *List) Type() ElementType { return ElementTypeList }
func (l *List) GetText() string {
	var sb strings.Builder
	for _, item := range l.Items {
		sb.WriteString(item.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// ListItem represents a single list item
type ListItem struct {
	Text   string
	Bullet string
	Level  int
}

// TextStyle represents text styling
type TextStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
	Color     Color
}

// TextAlignment represents horizontal alignment. The zero value means the
// alignment has not been set and should be inherited.
type TextAlignment int

const (
	AlignUndefined TextAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustify
)

func (a TextAlignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "undefined"
	}
}

// ParseTextAlignment maps a name such as "left" or "Center" to an alignment.
// Unknown names yield AlignUndefined.
func ParseTextAlignment(name string) TextAlignment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "start":
		return AlignLeft
	case "center", "middle":
		return AlignCenter
	case "right", "end":
		return AlignRight
	case "justify", "justified":
		return AlignJustify
	default:
		return AlignUndefined
	}
}

// VerticalAlignment represents vertical alignment. The zero value means the
// alignment has not been set.
type VerticalAlignment int

const (
	VAlignUndefined VerticalAlignment = iota
	VAlignTop
	VAlignMiddle
	VAlignBottom
	VAlignBaseline
)

func (v VerticalAlignment) String() string {
	switch v {
	case VAlignTop:
		return "top"
	case VAlignMiddle:
		return "middle"
	case VAlignBottom:
		return "bottom"
	case VAlignBaseline:
		return "baseline"
	default:
		return "undefined"
	}
}

// ParseVerticalAlignment maps a name such as "top" to a vertical alignment.
func ParseVerticalAlignment(name string) VerticalAlignment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "top":
		return VAlignTop
	case "middle", "center":
		return VAlignMiddle
	case "bottom":
		return VAlignBottom
	case "baseline":
		return VAlignBaseline
	default:
		return VAlignUndefined
	}
}

// BorderSides is a bit set of rectangle sides
type BorderSides int

const (
	BorderNone   BorderSides = 0
	BorderTop    BorderSides = 1 << iota
	BorderBottom
	BorderLeft
	BorderRight
	BorderBox = BorderTop | BorderBottom | BorderLeft | BorderRight
)

// Has reports whether all sides in s are set
func (b BorderSides) Has(s BorderSides) bool {
	return b&s == s
}

// Border describes the lines drawn around a cell or table
type Border struct {
	Sides BorderSides
	Width float64
	Color Color
}

// Color represents an RGB color
type Color struct {
	R, G, B uint8
}

// Hex returns the color as #rrggbb
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+i*2] = digits[v>>4]
		b[2+i*2] = digits[v&0x0f]
	}
	return string(b)
}

// ParseColor parses #rgb or #rrggbb (the leading # is optional).
func ParseColor(s string) (Color, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return Color{}, false
	}
	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[i*2])
		lo, ok2 := hexNibble(s[i*2+1])
		if !ok1 || !ok2 {
			return Color{}, false
		}
		v[i] = hi<<4 | lo
	}
	return Color{R: v[0], G: v[1], B: v[2]}, true
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// PlainText joins the text of every TextElement in elems, one per line.
// Elements without text are skipped.
func PlainText(elems []Element) string {
	var parts []string
	for _, e := range elems {
		if te, ok := e.(TextElement); ok {
			if s := strings.TrimRight(te.GetText(), "\n"); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, "\n")
}
