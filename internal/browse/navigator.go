// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package browse

// View is the underlying browsing view.
type View int

const (
	ViewHome View = iota
	ViewFolder
)

func (v View) String() string {
	if v == ViewFolder {
		return "folder"
	}
	return "home"
}

// Overlay is the modal layered on top of the current view.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayEditor
	OverlayViewer
)

func (o Overlay) String() string {
	switch o {
	case OverlayEditor:
		return "editor"
	case OverlayViewer:
		return "viewer"
	default:
		return "none"
	}
}

// State is a snapshot of the navigator.
type State struct {
	View    View
	Overlay Overlay

	// FolderID is the active folder; empty in ViewHome.
	FolderID string

	// NoteID is the note shown by the overlay; empty for a new note in the
	// editor and when no overlay is open.
	NoteID string
}

// Navigator is the browsing state machine. Its zero value is not usable;
// use NewNavigator. It is not safe for concurrent use.
type Navigator struct {
	state State
}

// NewNavigator returns a navigator in the Home view with no overlay.
func NewNavigator() *Navigator {
	return &Navigator{state: State{View: ViewHome, Overlay: OverlayNone}}
}

func (n *Navigator) State() State { return n.state }

// SelectFolder makes folderID the active folder. It is refused while an
// overlay is open.
func (n *Navigator) SelectFolder(folderID string) bool {
	if folderID == "" || n.state.Overlay != OverlayNone {
		return false
	}
	n.state.View = ViewFolder
	n.state.FolderID = folderID
	return true
}

// ClearSelection returns to Home and closes any open overlay.
func (n *Navigator) ClearSelection() bool {
	if n.state.View == ViewHome && n.state.Overlay == OverlayNone {
		return false
	}
	n.state = State{View: ViewHome, Overlay: OverlayNone}
	return true
}

// OpenEditor layers the editor over the current view. An empty noteID opens
// it for a new note.
func (n *Navigator) OpenEditor(noteID string) bool {
	if n.state.Overlay != OverlayNone {
		return false
	}
	n.state.Overlay = OverlayEditor
	n.state.NoteID = noteID
	return true
}

// OpenViewer layers the viewer for noteID over the current view.
func (n *Navigator) OpenViewer(noteID string) bool {
	if noteID == "" || n.state.Overlay != OverlayNone {
		return false
	}
	n.state.Overlay = OverlayViewer
	n.state.NoteID = noteID
	return true
}

// CloseOverlay returns to the view underneath the overlay.
func (n *Navigator) CloseOverlay() bool {
	if n.state.Overlay == OverlayNone {
		return false
	}
	n.state.Overlay = OverlayNone
	n.state.NoteID = ""
	return true
}
