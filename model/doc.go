// Package model provides the element hierarchy that composed documents are
// built from.
//
// Builder code creates elements, adds them to a [Document], and hands the
// finished document to a renderer. Table cells hold these elements opaquely;
// the table engine itself lives in the table package.
//
// # Document Structure
//
//	doc := model.NewDocument()
//	doc.Metadata.Title = "Quarterly Report"
//	doc.Add(model.NewParagraph("Revenue grew in every region."))
//	if err := doc.Complete(); err != nil {
//	    // a table failed to finalize
//	}
//
// # Elements
//
// All content implements the [Element] interface. The concrete types are:
//
//   - [Phrase] - a styled run of text
//   - [Paragraph] - text paragraphs
//   - [Heading] - headings (levels 1-6)
//   - [List] - ordered or unordered lists
//   - [Image] - embedded images, sized with [NewImage]
//
// Elements that need a finishing pass, such as tables, implement [Completer].
//
// # Styling
//
// [TextAlignment] and [VerticalAlignment] use their zero value to mean
// "undefined", so that containers can fill in defaults. [Border] and [Color]
// describe cell and table decoration.
//
// # Geometry
//
// [BBox] is a rectangle in layout coordinates (Y grows downward). Renderers
// that position cells use it to report cell rectangles.
package model
