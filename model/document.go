package model

import (
	"errors"
	"fmt"
	"time"
)

// Document is an ordered collection of elements being composed
type Document struct {
	Metadata Metadata
	Elements []Element
}

// Metadata contains document-level information
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     []string
	Creator      string
	CreationDate time.Time
	// Custom metadata
	Custom map[string]string
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Metadata: Metadata{
			Custom: make(map[string]string),
		},
		Elements: make([]Element, 0),
	}
}

// Add appends elements to the document
func (d *Document) Add(elems ...Element) {
	for _, e := range elems {
		if e != nil {
			d.Elements = append(d.Elements, e)
		}
	}
}

// Len returns the number of top-level elements
func (d *Document) Len() int {
	return len(d.Elements)
}

// Complete runs the finishing pass of every element that needs one. All
// elements are visited; errors are joined and reported together.
func (d *Document) Complete() error {
	var errs []error
	for i, e := range d.Elements {
		c, ok := e.(Completer)
		if !ok {
			continue
		}
		if err := c.Complete(); err != nil {
			errs = append(errs, fmt.Errorf("element %d (%s): %w", i, e.Type(), err))
		}
	}
	return errors.Join(errs...)
}

// ElementsOfType returns the top-level elements of the given type in order
func (d *Document) ElementsOfType(et ElementType) []Element {
	var out []Element
	for _, e := range d.Elements {
		if e.Type() == et {
			out = append(out, e)
		}
	}
	return out
}

// Text returns the text of all text elements, separated by blank lines
func (d *Document) Text() string {
	var text string
	for _, e := range d.Elements {
		if te, ok := e.(TextElement); ok {
			if text != "" {
				text += "\n\n"
			}
			text += te.GetText()
		}
	}
	return text
}
