// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package browse

import "github.com/MKhiriev/go-notes-keeper/models"

// Reader is the read side of the content store.
type Reader interface {
	Folders() []models.Folder
	Summaries() []models.FolderSummary
	Folder(folderID string) (models.Folder, bool)
	Note(folderID, noteID string) (models.Note, bool)
}

// browser implements the reads shared by the manager and the public viewer.
type browser struct {
	nav     *Navigator
	content Reader
}

func (b *browser) State() State { return b.nav.State() }

func (b *browser) Folders() []models.FolderSummary { return b.content.Summaries() }

// ActiveFolder returns the selected folder.
func (b *browser) ActiveFolder() (models.Folder, bool) {
	state := b.nav.State()
	if state.View != ViewFolder {
		return models.Folder{}, false
	}
	return b.content.Folder(state.FolderID)
}

// OverlayNote returns the note shown by the open overlay.
func (b *browser) OverlayNote() (models.Note, bool) {
	state := b.nav.State()
	if state.Overlay == OverlayNone || state.NoteID == "" || state.FolderID == "" {
		return models.Note{}, false
	}
	return b.content.Note(state.FolderID, state.NoteID)
}

// SelectFolder selects folderID when it exists.
func (b *browser) SelectFolder(folderID string) bool {
	if _, ok := b.content.Folder(folderID); !ok {
		return false
	}
	return b.nav.SelectFolder(folderID)
}

func (b *browser) ClearSelection() bool { return b.nav.ClearSelection() }

// OpenViewer opens the viewer for a note of the active folder.
func (b *browser) OpenViewer(noteID string) bool {
	state := b.nav.State()
	if state.View != ViewFolder {
		return false
	}
	if _, ok := b.content.Note(state.FolderID, noteID); !ok {
		return false
	}
	return b.nav.OpenViewer(noteID)
}

func (b *browser) CloseOverlay() bool { return b.nav.CloseOverlay() }
