// Package format names the output formats a table can be rendered to.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a supported output format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Markdown indicates a GitHub-flavored Markdown table.
	Markdown
	// CSV indicates comma-separated values.
	CSV
	// HTML indicates an HTML table element.
	HTML
	// Text indicates a bordered plain-text grid.
	Text
	// Terminal indicates a styled grid for ANSI terminals.
	Terminal
)

// All lists the known formats in display order.
func All() []Format {
	return []Format{Markdown, CSV, HTML, Text, Terminal}
}

// String returns the name accepted by Parse.
func (f Format) String() string {
	switch f {
	case Markdown:
		return "markdown"
	case CSV:
		return "csv"
	case HTML:
		return "html"
	case Text:
		return "text"
	case Terminal:
		return "term"
	default:
		return "unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Markdown:
		return ".md"
	case CSV:
		return ".csv"
	case HTML:
		return ".html"
	case Text:
		return ".txt"
	default:
		return ""
	}
}

// Parse maps a format name, or a common alias, to a Format.
func Parse(name string) Format {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "markdown", "md":
		return Markdown
	case "csv":
		return CSV
	case "html", "htm":
		return HTML
	case "text", "txt", "plain":
		return Text
	case "term", "terminal", "ansi":
		return Terminal
	default:
		return Unknown
	}
}

// Detect determines the format from an output filename's extension.
// Terminal output has no file extension and is never detected.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return Markdown
	case ".csv":
		return CSV
	case ".html", ".htm":
		return HTML
	case ".txt":
		return Text
	default:
		return Unknown
	}
}

// Names returns the names of all known formats joined with "|", for flag
// help text.
func Names() string {
	names := make([]string, 0, len(All()))
	for _, f := range All() {
		names = append(names, f.String())
	}
	return strings.Join(names, "|")
}
