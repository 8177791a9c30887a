// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package browse

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/editor"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Content is the content store as seen by the manager.
type Content interface {
	Reader
	CreateFolder(ctx context.Context, name string) (models.Folder, bool)
	DeleteFolder(ctx context.Context, folderID string) bool
	CreateNote(ctx context.Context, folderID, name string, content models.Document) (models.Note, bool)
	EditNote(ctx context.Context, folderID, noteID, name string, content models.Document) (models.Note, bool)
	DeleteNote(ctx context.Context, folderID, noteID string) bool
}

// Manager is the admin folder/file manager: browsing plus mutations scoped
// to the active folder.
type Manager struct {
	browser
	content Content
}

func NewManager(content Content) *Manager {
	return &Manager{
		browser: browser{nav: NewNavigator(), content: content},
		content: content,
	}
}

func (m *Manager) CreateFolder(ctx context.Context, name string) (models.Folder, bool) {
	return m.content.CreateFolder(ctx, name)
}

// DeleteFolder removes a folder with all its notes. Deleting the active
// folder returns to Home.
func (m *Manager) DeleteFolder(ctx context.Context, folderID string) bool {
	if !m.content.DeleteFolder(ctx, folderID) {
		return false
	}
	if m.nav.State().FolderID == folderID {
		m.nav.ClearSelection()
	}
	return true
}

// CreateNote adds a note to the active folder. Without an active folder it
// does nothing.
func (m *Manager) CreateNote(ctx context.Context, name string, content models.Document) (models.Note, bool) {
	state := m.nav.State()
	if state.View != ViewFolder {
		return models.Note{}, false
	}
	return m.content.CreateNote(ctx, state.FolderID, name, content)
}

// EditNote changes a note of the active folder.
func (m *Manager) EditNote(ctx context.Context, noteID, name string, content models.Document) (models.Note, bool) {
	state := m.nav.State()
	if state.View != ViewFolder {
		return models.Note{}, false
	}
	return m.content.EditNote(ctx, state.FolderID, noteID, name, content)
}

// DeleteNote removes a note of the active folder, closing the overlay if it
// shows that note.
func (m *Manager) DeleteNote(ctx context.Context, noteID string) bool {
	state := m.nav.State()
	if state.View != ViewFolder {
		return false
	}
	if !m.content.DeleteNote(ctx, state.FolderID, noteID) {
		return false
	}
	if state.Overlay != OverlayNone && state.NoteID == noteID {
		m.nav.CloseOverlay()
	}
	return true
}

// OpenEditor opens the editor for a note of the active folder, or for a new
// note when noteID is empty.
func (m *Manager) OpenEditor(noteID string) bool {
	state := m.nav.State()
	if state.View != ViewFolder {
		return false
	}
	if noteID != "" {
		if _, ok := m.content.Note(state.FolderID, noteID); !ok {
			return false
		}
	}
	return m.nav.OpenEditor(noteID)
}

// SaveEditor stores draft as a new note or over the note being edited and
// closes the editor. A draft with a blank name is not saved and the editor
// stays open.
func (m *Manager) SaveEditor(ctx context.Context, draft *editor.Draft) bool {
	state := m.nav.State()
	if state.Overlay != OverlayEditor {
		return false
	}

	stored := false
	draft.Save(func(name string, doc models.Document) {
		if state.NoteID == "" {
			_, stored = m.CreateNote(ctx, name, doc)
			return
		}
		_, stored = m.EditNote(ctx, state.NoteID, name, doc)
	})
	if stored {
		m.nav.CloseOverlay()
	}
	return stored
}
