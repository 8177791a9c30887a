// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
)

// ErrUnsupportedContent is returned by [NormalizeContent] when the raw
// content is neither a document object nor a string.
var ErrUnsupportedContent = errors.New("unsupported note content")

// Folder groups notes. It exclusively owns its Files.
type Folder struct {
	// ID is unique within the folder collection.
	ID string `json:"id"`

	// Name is the display name shown in folder listings.
	Name string `json:"name"`

	// Files is the ordered list of notes in the folder.
	Files []Note `json:"files"`
}

// Note is a single named document inside a [Folder].
type Note struct {
	// ID is unique within the owning folder.
	ID string `json:"id"`

	// Name is the title of the note. Its suffix doubles as a file type hint
	// (e.g. "fastapi.md", "snippet.py").
	Name string `json:"name"`

	// Content is the note body. It is always a normalized document; legacy
	// string bodies are coerced while decoding.
	Content Document `json:"content"`

	// CreatedAt is set once when the note is created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is bumped on every name or content change and never
	// precedes CreatedAt.
	UpdatedAt time.Time `json:"updatedAt"`
}

// FolderSummary is the listing view of a folder.
type FolderSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NoteCount int    `json:"noteCount"`
}

// Summary returns the listing view of f.
func (f Folder) Summary() FolderSummary {
	return FolderSummary{ID: f.ID, Name: f.Name, NoteCount: len(f.Files)}
}

// Clone returns a deep copy of f.
func (f Folder) Clone() Folder {
	out := Folder{ID: f.ID, Name: f.Name, Files: make([]Note, len(f.Files))}
	for i, n := range f.Files {
		out.Files[i] = n.Clone()
	}
	return out
}

// FindNote returns the note with the given id.
func (f Folder) FindNote(noteID string) (Note, bool) {
	for _, n := range f.Files {
		if n.ID == noteID {
			return n, true
		}
	}
	return Note{}, false
}

// Clone returns a deep copy of n.
func (n Note) Clone() Note {
	n.Content = n.Content.Clone()
	return n
}

// Extension returns the lower-cased suffix of the note name without the dot.
func (n Note) Extension() string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(n.Name)), ".")
}

// CharCount returns the number of characters of the note's plain text.
func (n Note) CharCount() int {
	return len([]rune(n.Content.PlainText()))
}

// UnmarshalJSON decodes a note and normalizes its content, so a legacy
// string body becomes a single-paragraph document.
func (n *Note) UnmarshalJSON(b []byte) error {
	type noteAlias Note
	var aux struct {
		noteAlias
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	doc, err := NormalizeContent(aux.Content)
	if err != nil {
		return fmt.Errorf("note %q: %w", aux.ID, err)
	}

	*n = Note(aux.noteAlias)
	n.Content = doc
	return nil
}

// NormalizeContent converts any accepted note body into a [Document]:
//   - missing or null content becomes one empty paragraph;
//   - a JSON string becomes one paragraph holding that string;
//   - a document object is decoded as is (a missing block list becomes empty).
//
// Any other JSON value yields [ErrUnsupportedContent].
func NormalizeContent(raw json.RawMessage) (Document, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ParagraphDocument(""), nil
	}

	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return Document{}, fmt.Errorf("decode string content: %w", err)
		}
		return ParagraphDocument(text), nil
	case '{':
		var doc Document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return Document{}, fmt.Errorf("decode document content: %w", err)
		}
		if doc.Blocks == nil {
			doc.Blocks = []Block{}
		}
		return doc, nil
	default:
		return Document{}, ErrUnsupportedContent
	}
}
