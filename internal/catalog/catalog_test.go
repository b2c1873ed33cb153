// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/syllabus/pkg/types"
)

func testStore(t *testing.T, maxResults int) *Store {
	t.Helper()
	s, err := Open(types.CatalogConfig{
		CatalogDir: filepath.Join(t.TempDir(), "catalog"),
		MaxResults: maxResults,
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()
	s := testStore(t, 0)

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	c := types.Course{
		Title:      "Curso",
		Instructor: "Ana",
		Topics:     []string{"a", "b"},
		Schedule:   []types.ScheduleEntry{{Date: "d", Topic: "t"}},
	}

	first, err := s.Record(ctx, NewEntry(c, "first.docx", base))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	// Sub-second offset must still sort after the whole second.
	second, err := s.Record(ctx, NewEntry(c, "second.docx", base.Add(500*time.Millisecond)))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	entries, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "second.docx", entries[0].Path)
	assert.Equal(t, "first.docx", entries[1].Path)

	got := entries[1]
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Curso", got.Title)
	assert.Equal(t, "Ana", got.Instructor)
	assert.Equal(t, 2, got.Topics)
	assert.Equal(t, 1, got.ScheduleRows)
	assert.True(t, base.Equal(got.CreatedAt), "created_at = %v", got.CreatedAt)
}

func TestListLimit(t *testing.T) {
	ctx := context.Background()
	s := testStore(t, 2)

	for i := 0; i < 4; i++ {
		_, err := s.Record(ctx, Entry{Path: "x.docx", CreatedAt: time.Unix(int64(1000+i), 0)})
		require.NoError(t, err)
	}

	entries, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "store default limit")

	entries, err = s.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestRecordDuplicateID(t *testing.T) {
	ctx := context.Background()
	s := testStore(t, 0)

	_, err := s.Record(ctx, Entry{ID: "same", Path: "a.docx"})
	require.NoError(t, err)
	_, err = s.Record(ctx, Entry{ID: "same", Path: "b.docx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording build b.docx")
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	ctx := context.Background()
	cfg := types.CatalogConfig{CatalogDir: t.TempDir()}

	s, err := Open(cfg)
	require.NoError(t, err)
	_, err = s.Record(ctx, Entry{Path: "kept.docx"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(cfg)
	require.NoError(t, err)
	defer s.Close()
	entries, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept.docx", entries[0].Path)
}
