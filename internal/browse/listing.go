// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package browse

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// DateLayout is the date format used in listings.
const DateLayout = "2006-01-02"

// FileIcon returns the icon for a note name, chosen by its suffix.
func FileIcon(name string) string {
	switch (models.Note{Name: name}).Extension() {
	case "md":
		return "📝"
	case "txt":
		return "📄"
	case "js", "ts":
		return "⚛️"
	case "py":
		return "🐍"
	case "java":
		return "☕"
	case "c", "cpp":
		return "⚙️"
	default:
		return "📁"
	}
}

// NoteListing is the listing line of a note.
type NoteListing struct {
	ID      string
	Icon    string
	Name    string
	Chars   int
	Lines   int
	Updated string
}

// ListNote builds the listing line of n.
func ListNote(n models.Note) NoteListing {
	text := n.Content.PlainText()
	return NoteListing{
		ID:      n.ID,
		Icon:    FileIcon(n.Name),
		Name:    n.Name,
		Chars:   n.CharCount(),
		Lines:   strings.Count(text, "\n") + 1,
		Updated: n.UpdatedAt.Local().Format(DateLayout),
	}
}

// ListNotes builds the listing lines of the notes of f, in folder order.
func ListNotes(f models.Folder) []NoteListing {
	out := make([]NoteListing, len(f.Files))
	for i, n := range f.Files {
		out[i] = ListNote(n)
	}
	return out
}
