package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/syllabus/pkg/types"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "DEBUG", want: slog.LevelDebug},
		{in: " warning ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "fatal", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(types.LogConfig{Level: "warn"}, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", "path", "a.docx")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "path=a.docx")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(types.LogConfig{Format: "json"}, &buf)
	require.NoError(t, err)
	log.Info("saved")
	assert.Contains(t, buf.String(), `"msg":"saved"`)

	_, err = New(types.LogConfig{Format: "xml"}, &buf)
	assert.Error(t, err)
}
