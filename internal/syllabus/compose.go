// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package syllabus

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/syllabus/internal/docx"
	"github.com/pdiddy/syllabus/pkg/types"
)

const (
	// DefaultFilePrefix is the stem of generated filenames.
	DefaultFilePrefix = "documento"
	// FileExt is the extension of written documents.
	FileExt = ".docx"

	timestampLayout = "20060102150405"
)

// Section headings and table header labels.
const (
	HeadingInstructor = "Professor"
	HeadingTopics     = "Ementa"
	HeadingSchedule   = "Calendário"
	ColumnDate        = "Data"
	ColumnTopic       = "Tópico"
)

// Spacing used for the cover and each section.
var (
	titleSpacing       = docx.Spacing{Before: 0, After: 150}
	descriptionSpacing = docx.Spacing{Before: 0, After: 100}
	instructorSpacing  = DefaultSectionSpacing
	topicsSpacing      = SectionSpacing{BeforeTitle: 200, AfterTitle: 50, BetweenContent: 50}
	scheduleSpacing    = DefaultSectionSpacing
)

// Build lays out the course as a new document. Schedule rows, the header
// row included, get a row-level after-spacing of zero.
func Build(course types.Course) (*docx.Document, error) {
	doc := docx.New()

	title, err := doc.AddHeading(course.Title, 0)
	if err != nil {
		return nil, fmt.Errorf("adding title: %w", err)
	}
	AdjustSpacing(title, titleSpacing.Before, titleSpacing.After)

	desc := doc.AddParagraph(course.Description, "")
	AdjustSpacing(desc, descriptionSpacing.Before, descriptionSpacing.After)

	sections := []struct {
		title   string
		content Content
		spacing SectionSpacing
	}{
		{HeadingInstructor, Text(course.Instructor), instructorSpacing},
		{HeadingTopics, Items(course.Topics...), topicsSpacing},
		{HeadingSchedule, NoContent(), scheduleSpacing},
	}
	for _, s := range sections {
		if _, err := AddSection(doc, s.title, s.content, s.spacing); err != nil {
			return nil, err
		}
	}

	table, err := doc.AddTable(1, 2)
	if err != nil {
		return nil, fmt.Errorf("adding schedule table: %w", err)
	}
	header := table.Rows()[0]
	header.Cells[0] = ColumnDate
	header.Cells[1] = ColumnTopic
	for _, entry := range course.Schedule {
		row := table.AddRow()
		row.Cells[0] = entry.Date
		row.Cells[1] = entry.Topic
	}

	for _, row := range table.Rows() {
		row.SetSpacingAfter(0)
	}

	return doc, nil
}

// FileName returns "<prefix>_<YYYYMMDDHHMMSS>.docx" for t in its own
// location. An empty prefix uses DefaultFilePrefix.
func FileName(prefix string, t time.Time) string {
	if prefix == "" {
		prefix = DefaultFilePrefix
	}
	return prefix + "_" + t.Format(timestampLayout) + FileExt
}

// Composer builds syllabus documents and writes them to disk.
type Composer struct {
	// OutputDir is joined to relative output names. Empty means the
	// working directory.
	OutputDir string

	// FilePrefix is the stem of generated filenames.
	FilePrefix string

	// Now returns the current local time. Defaults to time.Now.
	Now func() time.Time

	// Out receives the confirmation line. Defaults to os.Stdout.
	Out io.Writer

	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

func (c *Composer) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Composer) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *Composer) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// ResolvePath returns the path a document will be saved to. An empty name
// is replaced by a timestamped filename.
func (c *Composer) ResolvePath(name string) string {
	return c.resolvePath(name, c.now())
}

func (c *Composer) resolvePath(name string, now time.Time) string {
	if name == "" {
		name = FileName(c.FilePrefix, now)
	}
	if c.OutputDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}

// Compose builds the course document, saves it under outputName (or a
// timestamped name when empty), prints a confirmation and returns the path
// written. An error from any step is wrapped and returned; nothing is
// retried or cleaned up.
func (c *Composer) Compose(course types.Course, outputName string) (string, error) {
	doc, err := Build(course)
	if err != nil {
		return "", fmt.Errorf("building document: %w", err)
	}
	created := c.now()
	doc.Properties = docx.CoreProperties{
		Title:      course.Title,
		Creator:    course.Instructor,
		Identifier: uuid.NewString(),
		Created:    created,
	}

	path := c.resolvePath(outputName, created)
	c.logger().Debug("saving document",
		"path", path,
		"topics", len(course.Topics),
		"schedule_rows", len(course.Schedule),
	)
	if err := doc.Save(path); err != nil {
		return "", fmt.Errorf("saving document: %w", err)
	}

	fmt.Fprintf(c.out(), "Documento salvo como %s\n", path)
	return path, nil
}
