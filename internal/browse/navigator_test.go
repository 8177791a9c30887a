// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigator_InitialState(t *testing.T) {
	n := NewNavigator()

	assert.Equal(t, State{View: ViewHome, Overlay: OverlayNone}, n.State())
}

func TestNavigator_Transitions(t *testing.T) {
	n := NewNavigator()

	assert.False(t, n.SelectFolder(""))
	assert.True(t, n.SelectFolder("f1"))
	assert.Equal(t, State{View: ViewFolder, FolderID: "f1"}, n.State())

	assert.True(t, n.OpenViewer("n1"))
	assert.Equal(t, State{View: ViewFolder, Overlay: OverlayViewer, FolderID: "f1", NoteID: "n1"}, n.State())

	assert.False(t, n.SelectFolder("f2"), "selection is locked while an overlay is open")
	assert.False(t, n.OpenEditor(""), "overlays do not stack")

	assert.True(t, n.CloseOverlay())
	assert.Equal(t, State{View: ViewFolder, FolderID: "f1"}, n.State())
	assert.False(t, n.CloseOverlay())

	assert.True(t, n.OpenEditor(""))
	assert.Equal(t, State{View: ViewFolder, Overlay: OverlayEditor, FolderID: "f1"}, n.State())

	assert.True(t, n.ClearSelection())
	assert.Equal(t, State{View: ViewHome, Overlay: OverlayNone}, n.State())
	assert.False(t, n.ClearSelection())
}

func TestNavigator_OverlayOnHome(t *testing.T) {
	n := NewNavigator()

	assert.False(t, n.OpenViewer(""))
	assert.True(t, n.OpenEditor(""))
	assert.Equal(t, ViewHome, n.State().View)
	assert.True(t, n.CloseOverlay())
	assert.Equal(t, State{View: ViewHome}, n.State())
}

func TestNavigator_SwitchFolder(t *testing.T) {
	n := NewNavigator()
	n.SelectFolder("a")

	assert.True(t, n.SelectFolder("b"))
	assert.Equal(t, "b", n.State().FolderID)
}

func TestViewAndOverlay_String(t *testing.T) {
	assert.Equal(t, "home", ViewHome.String())
	assert.Equal(t, "folder", ViewFolder.String())
	assert.Equal(t, "none", OverlayNone.String())
	assert.Equal(t, "editor", OverlayEditor.String())
	assert.Equal(t, "viewer", OverlayViewer.String())
}
