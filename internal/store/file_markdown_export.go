// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// frontMatter is the YAML header of an exported note.
type frontMatter struct {
	ID      string    `yaml:"id"`
	Title   string    `yaml:"title"`
	Folder  string    `yaml:"folder,omitempty"`
	Created time.Time `yaml:"created"`
	Updated time.Time `yaml:"updated"`
}

// markdownExporter writes notes as Markdown files with YAML front matter into
// a single directory.
type markdownExporter struct {
	dir    string
	format func(models.Document) string
	logger *logger.Logger
}

// NewMarkdownExporter constructs a [NoteExporter] writing into dir. format
// turns a note body into Markdown text.
func NewMarkdownExporter(dir string, format func(models.Document) string, logger *logger.Logger) NoteExporter {
	return &markdownExporter{dir: dir, format: format, logger: logger}
}

// Export writes note to <dir>/<name>.md, replacing an existing file of the
// same name.
func (e *markdownExporter) Export(ctx context.Context, folderName string, note models.Note) (string, error) {
	log := logger.FromContext(ctx)

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	err := enc.Encode(frontMatter{
		ID:      note.ID,
		Title:   note.Name,
		Folder:  folderName,
		Created: note.CreatedAt.UTC(),
		Updated: note.UpdatedAt.UTC(),
	})
	if err == nil {
		err = enc.Close()
	}
	if err != nil {
		return "", fmt.Errorf("%w: front matter: %w", ErrExportFailed, err)
	}
	buf.WriteString("---\n\n")
	buf.WriteString(e.format(note.Content))
	buf.WriteString("\n")

	if err = os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	path := filepath.Join(e.dir, ExportFileName(note.Name))
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		log.Err(err).Str("func", "markdownExporter.Export").Str("path", path).Msg("failed to write note")
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	log.Info().Str("path", path).Str("note_id", note.ID).Msg("note exported")
	return path, nil
}

// ExportFileName turns a note name into a safe file name ending in ".md".
func ExportFileName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, ". ")
	if name == "" {
		name = "note"
	}
	if strings.EqualFold(filepath.Ext(name), ".md") {
		return name
	}
	return name + ".md"
}
