// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package syllabus

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/syllabus/internal/course"
	"github.com/pdiddy/syllabus/internal/docx"
	"github.com/pdiddy/syllabus/pkg/types"
)

func TestAdjustSpacing(t *testing.T) {
	tests := []struct {
		name          string
		prior         *docx.Spacing
		before, after int
	}{
		{name: "unset", before: 200, after: 50},
		{name: "overwrites prior", prior: &docx.Spacing{Before: 10, After: 20}, before: 0, after: 150},
		{name: "zeros", prior: &docx.Spacing{Before: 5, After: 5}, before: 0, after: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &docx.Paragraph{Spacing: tt.prior}
			AdjustSpacing(p, tt.before, tt.after)
			AdjustSpacing(p, tt.before, tt.after)
			require.NotNil(t, p.Spacing)
			assert.Equal(t, docx.Spacing{Before: tt.before, After: tt.after}, *p.Spacing)
		})
	}
}

func TestAddSection(t *testing.T) {
	tests := []struct {
		name      string
		content   Content
		wantTexts []string
		wantStyle string
	}{
		{name: "no content", content: NoContent()},
		{name: "zero value", content: Content{}},
		{name: "empty items", content: Items()},
		{
			name:      "single text",
			content:   Text("Antônio Abrantes"),
			wantTexts: []string{"Antônio Abrantes"},
			wantStyle: "",
		},
		{
			name:      "items keep order",
			content:   Items("c", "a", "b"),
			wantTexts: []string{"c", "a", "b"},
			wantStyle: docx.StyleListBullet,
		},
	}

	spacing := SectionSpacing{BeforeTitle: 200, AfterTitle: 50, BetweenContent: 75}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docx.New()
			added, err := AddSection(doc, "Seção", tt.content, spacing)
			require.NoError(t, err)

			paras := doc.Paragraphs()
			require.Len(t, paras, 1+len(tt.wantTexts))
			assert.Equal(t, paras, added)

			heading := paras[0]
			assert.Equal(t, "Heading1", heading.Style)
			assert.Equal(t, "Seção", heading.Text)
			assert.Equal(t, &docx.Spacing{Before: 200, After: 50}, heading.Spacing)

			for i, want := range tt.wantTexts {
				p := paras[i+1]
				assert.Equal(t, want, p.Text)
				assert.Equal(t, tt.wantStyle, p.Style)
				assert.Equal(t, &docx.Spacing{Before: 0, After: 75}, p.Spacing)
			}
		})
	}
}

func TestItemsCopiesInput(t *testing.T) {
	topics := []string{"a", "b"}
	c := Items(topics...)
	topics[0] = "changed"

	doc := docx.New()
	_, err := AddSection(doc, "T", c, DefaultSectionSpacing)
	require.NoError(t, err)
	assert.Equal(t, "a", doc.Paragraphs()[1].Text)
}

func TestContentKind(t *testing.T) {
	assert.Equal(t, ContentNone, NoContent().Kind())
	assert.Equal(t, ContentText, Text("x").Kind())
	assert.Equal(t, ContentItems, Items().Kind())
}

func TestBuildExample(t *testing.T) {
	c := course.Example()
	doc, err := Build(c)
	require.NoError(t, err)

	paras := doc.Paragraphs()
	// title, description, Professor + 1, Ementa + 5, Calendário
	require.Len(t, paras, 2+2+6+1)

	assert.Equal(t, docx.StyleTitle, paras[0].Style)
	assert.Equal(t, c.Title, paras[0].Text)
	assert.Equal(t, &docx.Spacing{Before: 0, After: 150}, paras[0].Spacing)

	assert.Equal(t, "", paras[1].Style)
	assert.Equal(t, c.Description, paras[1].Text)
	assert.Equal(t, &docx.Spacing{Before: 0, After: 100}, paras[1].Spacing)

	assert.Equal(t, HeadingInstructor, paras[2].Text)
	assert.Equal(t, c.Instructor, paras[3].Text)
	assert.Equal(t, &docx.Spacing{Before: 0, After: 100}, paras[3].Spacing)

	assert.Equal(t, HeadingTopics, paras[4].Text)
	for i, topic := range c.Topics {
		p := paras[5+i]
		assert.Equal(t, topic, p.Text)
		assert.Equal(t, docx.StyleListBullet, p.Style)
		assert.Equal(t, &docx.Spacing{Before: 0, After: 50}, p.Spacing)
	}

	assert.Equal(t, HeadingSchedule, paras[10].Text)
	assert.Equal(t, "Heading1", paras[10].Style)
	assert.Equal(t, &docx.Spacing{Before: 200, After: 50}, paras[10].Spacing)

	// The table comes last, right after the schedule heading.
	blocks := doc.Blocks()
	require.IsType(t, &docx.Table{}, blocks[len(blocks)-1])

	tables := doc.Tables()
	require.Len(t, tables, 1)
	table := tables[0]
	assert.Equal(t, 2, table.Cols())
	rows := table.Rows()
	require.Len(t, rows, 6)
	assert.Equal(t, []string{ColumnDate, ColumnTopic}, rows[0].Cells)
	for i, entry := range c.Schedule {
		assert.Equal(t, []string{entry.Date, entry.Topic}, rows[i+1].Cells)
	}
	for i, row := range rows {
		require.NotNil(t, row.Properties.SpacingAfter, "row %d", i)
		assert.Equal(t, 0, *row.Properties.SpacingAfter, "row %d", i)
	}
}

func TestBuildScheduleSizes(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		c := types.Course{Title: "T"}
		for i := 0; i < n; i++ {
			c.Schedule = append(c.Schedule, types.ScheduleEntry{Date: string(rune('a' + i)), Topic: "x"})
		}
		doc, err := Build(c)
		require.NoError(t, err)
		rows := doc.Tables()[0].Rows()
		assert.Len(t, rows, n+1, "schedule of %d", n)
		for i := 1; i < len(rows); i++ {
			assert.Equal(t, c.Schedule[i-1].Date, rows[i].Cells[0])
		}
	}
}

func TestBuildNoTopicsRendersHeadingOnly(t *testing.T) {
	doc, err := Build(types.Course{Title: "T", Instructor: "I"})
	require.NoError(t, err)
	paras := doc.Paragraphs()
	// title, description, Professor, instructor, Ementa, Calendário
	require.Len(t, paras, 6)
	assert.Equal(t, HeadingTopics, paras[4].Text)
	assert.Equal(t, HeadingSchedule, paras[5].Text)
}

func TestFileName(t *testing.T) {
	ts := time.Date(2024, 1, 8, 14, 5, 9, 0, time.Local)
	assert.Equal(t, "documento_20240108140509.docx", FileName("", ts))
	assert.Equal(t, "ementa_20240108140509.docx", FileName("ementa", ts))
}

var generatedName = regexp.MustCompile(`^documento_\d{14}\.docx$`)

func TestGeneratedNamesDiffer(t *testing.T) {
	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	calls := 0
	c := &Composer{Now: func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * 1500 * time.Millisecond)
	}}

	first := c.ResolvePath("")
	second := c.ResolvePath("")
	assert.NotEqual(t, first, second)
	assert.Regexp(t, generatedName, first)
	assert.Regexp(t, generatedName, second)
}

func TestResolvePath(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local) }
	tests := []struct {
		name      string
		outputDir string
		input     string
		want      string
	}{
		{name: "explicit name", input: "curso.docx", want: "curso.docx"},
		{name: "generated", want: "documento_20240101000000.docx"},
		{name: "joined with dir", outputDir: "out", input: "curso.docx", want: filepath.Join("out", "curso.docx")},
		{name: "absolute ignores dir", outputDir: "out", input: "/tmp/curso.docx", want: "/tmp/curso.docx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Composer{OutputDir: tt.outputDir, Now: now}
			assert.Equal(t, tt.want, c.ResolvePath(tt.input))
		})
	}
}

func TestComposeWritesDocument(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	c := &Composer{
		OutputDir: dir,
		Now:       func() time.Time { return time.Date(2024, 1, 1, 9, 30, 0, 0, time.Local) },
		Out:       &out,
	}

	path, err := c.Compose(course.Example(), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "documento_20240101093000.docx"), path)
	assert.Equal(t, "Documento salvo como "+path+"\n", out.String())

	got, err := docx.Open(path)
	require.NoError(t, err)

	var headings0, headings1, bullets, plain int
	for _, p := range got.Paragraphs() {
		switch {
		case p.Style == docx.StyleTitle:
			headings0++
		case docx.HeadingLevel(p.Style) == 1:
			headings1++
		case p.Style == docx.StyleListBullet:
			bullets++
		default:
			plain++
		}
	}
	assert.Equal(t, 1, headings0)
	assert.Equal(t, 3, headings1)
	assert.Equal(t, 5, bullets)
	assert.Equal(t, 2, plain)

	require.Len(t, got.Tables(), 1)
	rows := got.Tables()[0].Rows()
	require.Len(t, rows, 6)
	for i, entry := range course.Example().Schedule {
		assert.Equal(t, []string{entry.Date, entry.Topic}, rows[i+1].Cells)
	}
}

func TestComposeUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	c := &Composer{OutputDir: filepath.Join(dir, "missing"), Out: &bytes.Buffer{}}
	_, err := c.Compose(course.Example(), "x.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving document")

	_, statErr := os.Stat(filepath.Join(dir, "missing", "x.docx"))
	assert.True(t, os.IsNotExist(statErr))
}
