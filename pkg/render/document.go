// Package render builds fixed-width monospace receipt documents. The document
// is the "rendered view" consumed by the export pipeline and returned to API
// clients for preview.
package render

import (
	"fmt"
	"strings"
)

// Line is a single rendered receipt row. Alignment and padding are already
// baked into Text; Bold is carried separately for renderers that support it.
type Line struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

// Document accumulates receipt lines at a fixed character width.
type Document struct {
	lines []Line
	width int
}

// NewDocument creates a document with the given character width.
// Receipt widths around 300px map to roughly 40 characters.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	return &Document{width: charWidth}
}

// Width returns the character width of the document.
func (d *Document) Width() int {
	return d.width
}

// Lines returns the accumulated lines.
func (d *Document) Lines() []Line {
	return d.lines
}

// Text appends a left-aligned line.
func (d *Document) Text(s string) *Document {
	d.lines = append(d.lines, Line{Text: s})
	return d
}

// TextF appends a formatted left-aligned line.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// Center appends a centered line.
func (d *Document) Center(s string) *Document {
	pad := (d.width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	d.lines = append(d.lines, Line{Text: strings.Repeat(" ", pad) + s})
	return d
}

// CenterBold appends a centered bold line.
func (d *Document) CenterBold(s string) *Document {
	d.Center(s)
	d.lines[len(d.lines)-1].Bold = true
	return d
}

// Blank appends an empty line.
func (d *Document) Blank() *Document {
	d.lines = append(d.lines, Line{})
	return d
}

// Separator appends a full-width separator line, e.g. "----------------".
func (d *Document) Separator(char byte) *Document {
	d.lines = append(d.lines, Line{Text: strings.Repeat(string(char), d.width)})
	return d
}

// KeyValue appends a left-aligned key and right-aligned value on one line.
// Example: "Volume                 : 20.00 liter"
func (d *Document) KeyValue(key, value string) *Document {
	spaces := d.width - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	d.lines = append(d.lines, Line{Text: key + strings.Repeat(" ", spaces) + value})
	return d
}

// KeyValueBold appends a bold key/value line, used for totals.
func (d *Document) KeyValueBold(key, value string) *Document {
	d.KeyValue(key, value)
	d.lines[len(d.lines)-1].Bold = true
	return d
}

// Indented appends a key/value line with the key indented by two spaces.
func (d *Document) Indented(key, value string) *Document {
	return d.KeyValue("  "+key, value)
}
