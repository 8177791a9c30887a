// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func TestMarkdownExporter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	exporter := NewMarkdownExporter(dir, func(d models.Document) string { return d.PlainText() }, logger.Nop())

	created := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	note := models.Note{
		ID:        "1705311000000",
		Name:      "fastapi.md",
		Content:   models.ParagraphDocument("FastAPI is fast"),
		CreatedAt: created,
		UpdatedAt: created,
	}

	path, err := exporter.Export(context.Background(), "Python", note)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fastapi.md"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	parts := strings.SplitN(string(raw), "---\n", 3)
	require.Len(t, parts, 3)
	assert.Empty(t, parts[0])

	var fm frontMatter
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &fm))
	assert.Equal(t, "1705311000000", fm.ID)
	assert.Equal(t, "fastapi.md", fm.Title)
	assert.Equal(t, "Python", fm.Folder)
	assert.True(t, created.Equal(fm.Created))

	assert.Equal(t, "\nFastAPI is fast\n", parts[2])
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "fastapi.md", want: "fastapi.md"},
		{name: "README.MD", want: "README.MD"},
		{name: "snippet.py", want: "snippet.py.md"},
		{name: "../../etc/passwd", want: "_.._etc_passwd.md"},
		{name: "  ", want: "note.md"},
		{name: "a:b", want: "a_b.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExportFileName(tt.name))
		})
	}
}
