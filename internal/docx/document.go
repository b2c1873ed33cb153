// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx builds and reads WordprocessingML (.docx) documents.
//
// The model covers what a syllabus needs: styled paragraphs with
// before/after spacing, headings, bulleted lists, and grid tables whose
// rows carry their own spacing. Documents are written as OPC zip packages
// with the parts Word requires to open them (content types, relationships,
// styles, numbering, core and app properties).
package docx

import (
	"fmt"
	"time"
)

// Style identifiers referenced by paragraphs and tables. They match the
// style ids defined in word/styles.xml.
const (
	StyleNormal     = "Normal"
	StyleTitle      = "Title"
	StyleListBullet = "ListBullet"
	StyleTableGrid  = "TableGrid"
)

// maxHeadingLevel is the deepest built-in heading style (Heading9).
const maxHeadingLevel = 9

// Block is a body-level element: a *Paragraph or a *Table.
type Block interface {
	isBlock()
}

// Spacing is the vertical whitespace around a paragraph. Values are stored
// in the w:before and w:after attributes as given.
type Spacing struct {
	Before int
	After  int
}

// Paragraph is a single paragraph of text with an optional style.
type Paragraph struct {
	// Style is the paragraph style id; empty means Normal.
	Style string

	// Text is the paragraph content. Newlines become line breaks and tabs
	// become tab stops.
	Text string

	// Spacing is nil until set, in which case the style's spacing applies.
	Spacing *Spacing
}

func (*Paragraph) isBlock() {}

// SetSpacing overwrites the paragraph's before/after spacing.
func (p *Paragraph) SetSpacing(before, after int) {
	p.Spacing = &Spacing{Before: before, After: after}
}

// RowProperties holds layout properties of a table row.
type RowProperties struct {
	// SpacingAfter is the row's after-spacing; nil leaves it unset.
	SpacingAfter *int
}

// Row is a table row with one text value per column.
type Row struct {
	Cells      []string
	Properties RowProperties
}

// SetSpacingAfter sets the row-level after-spacing.
func (r *Row) SetSpacingAfter(v int) {
	r.Properties.SpacingAfter = &v
}

// Table is a grid of text cells with a fixed column count.
type Table struct {
	// Style is the table style id (e.g. TableGrid).
	Style string

	cols int
	rows []*Row
}

func (*Table) isBlock() {}

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.cols }

// Rows returns the table rows in order.
func (t *Table) Rows() []*Row { return t.rows }

// AddRow appends an empty row and returns it.
func (t *Table) AddRow() *Row {
	r := &Row{Cells: make([]string, t.cols)}
	t.rows = append(t.rows, r)
	return r
}

// CoreProperties are the package metadata written to docProps/core.xml.
type CoreProperties struct {
	Title      string
	Creator    string
	Identifier string
	Created    time.Time
}

// Document is an in-memory word-processing document.
type Document struct {
	Properties CoreProperties

	blocks []Block
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Blocks returns the body elements in document order.
func (d *Document) Blocks() []Block { return d.blocks }

// Paragraphs returns the body-level paragraphs in order, excluding text
// inside tables.
func (d *Document) Paragraphs() []*Paragraph {
	var ps []*Paragraph
	for _, b := range d.blocks {
		if p, ok := b.(*Paragraph); ok {
			ps = append(ps, p)
		}
	}
	return ps
}

// Tables returns the body-level tables in order.
func (d *Document) Tables() []*Table {
	var ts []*Table
	for _, b := range d.blocks {
		if t, ok := b.(*Table); ok {
			ts = append(ts, t)
		}
	}
	return ts
}

// AddParagraph appends a paragraph with the given style. An empty style
// means Normal.
func (d *Document) AddParagraph(text, style string) *Paragraph {
	p := &Paragraph{Style: style, Text: text}
	d.blocks = append(d.blocks, p)
	return p
}

// AddHeading appends a heading paragraph. Level 0 uses the Title style;
// levels 1 through 9 use Heading1 through Heading9.
func (d *Document) AddHeading(text string, level int) (*Paragraph, error) {
	style, err := HeadingStyle(level)
	if err != nil {
		return nil, err
	}
	return d.AddParagraph(text, style), nil
}

// AddTable appends a table with the given number of empty rows and
// columns, styled as TableGrid.
func (d *Document) AddTable(rows, cols int) (*Table, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("table needs at least one column, got %d", cols)
	}
	if rows < 0 {
		return nil, fmt.Errorf("negative row count %d", rows)
	}
	t := &Table{Style: StyleTableGrid, cols: cols}
	for i := 0; i < rows; i++ {
		t.AddRow()
	}
	d.blocks = append(d.blocks, t)
	return t, nil
}

// HeadingStyle maps a heading level to its style id.
func HeadingStyle(level int) (string, error) {
	switch {
	case level == 0:
		return StyleTitle, nil
	case level >= 1 && level <= maxHeadingLevel:
		return fmt.Sprintf("Heading%d", level), nil
	default:
		return "", fmt.Errorf("heading level must be in range 0-%d, got %d", maxHeadingLevel, level)
	}
}

// HeadingLevel reports the heading level of a style id, or -1 if the style
// is not a heading.
func HeadingLevel(style string) int {
	if style == StyleTitle {
		return 0
	}
	var n int
	if _, err := fmt.Sscanf(style, "Heading%d", &n); err == nil && n >= 1 && n <= maxHeadingLevel {
		return n
	}
	return -1
}
