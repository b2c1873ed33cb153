// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package syllabus lays out a course syllabus as a word-processing
// document: title, description, instructor, topic list and a dated
// schedule table.
package syllabus

import (
	"fmt"

	"github.com/pdiddy/syllabus/internal/docx"
)

// AdjustSpacing sets the paragraph's before/after spacing, replacing any
// previous values. Negative values are written as given.
func AdjustSpacing(p *docx.Paragraph, before, after int) {
	p.SetSpacing(before, after)
}

// ContentKind distinguishes the body shapes a section can have.
type ContentKind int

const (
	// ContentNone renders the heading only.
	ContentNone ContentKind = iota
	// ContentText renders one plain paragraph.
	ContentText
	// ContentItems renders one bulleted paragraph per item.
	ContentItems
)

// Content is the body of a section. The zero value is NoContent.
type Content struct {
	kind  ContentKind
	text  string
	items []string
}

// NoContent returns a heading-only body.
func NoContent() Content { return Content{} }

// Text returns a single-paragraph body.
func Text(s string) Content { return Content{kind: ContentText, text: s} }

// Items returns a bulleted body. An empty list renders like NoContent.
func Items(items ...string) Content {
	return Content{kind: ContentItems, items: append([]string(nil), items...)}
}

// Kind reports which body shape c holds.
func (c Content) Kind() ContentKind { return c.kind }

// SectionSpacing controls the spacing applied by AddSection.
type SectionSpacing struct {
	// BeforeTitle is the space before the section heading.
	BeforeTitle int
	// AfterTitle is the space after the section heading.
	AfterTitle int
	// BetweenContent is the space after each body paragraph.
	BetweenContent int
}

// DefaultSectionSpacing is 200 before the heading, 50 after it and 100
// after each body paragraph.
var DefaultSectionSpacing = SectionSpacing{BeforeTitle: 200, AfterTitle: 50, BetweenContent: 100}

// AddSection appends a level-1 heading followed by the section body and
// returns the paragraphs it added, heading first.
func AddSection(doc *docx.Document, title string, content Content, spacing SectionSpacing) ([]*docx.Paragraph, error) {
	heading, err := doc.AddHeading(title, 1)
	if err != nil {
		return nil, fmt.Errorf("adding heading %q: %w", title, err)
	}
	AdjustSpacing(heading, spacing.BeforeTitle, spacing.AfterTitle)
	added := []*docx.Paragraph{heading}

	switch content.kind {
	case ContentItems:
		for _, item := range content.items {
			p := doc.AddParagraph(item, docx.StyleListBullet)
			AdjustSpacing(p, 0, spacing.BetweenContent)
			added = append(added, p)
		}
	case ContentText:
		p := doc.AddParagraph(content.text, "")
		AdjustSpacing(p, 0, spacing.BetweenContent)
		added = append(added, p)
	}
	return added, nil
}
