// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/browse"
	"github.com/MKhiriev/go-notes-keeper/internal/render"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const viewerPageLines = 20

// viewerLines renders note for the viewer overlay, one terminal line per
// entry.
func (m *appModel) viewerLines(note models.Note) []string {
	body := render.Terminal(render.Document(&note.Content), max(20, m.width-8))
	return strings.Split(body, "\n")
}

func (m *appModel) viewerView() string {
	note, ok := m.nav().OverlayNote()
	if !ok {
		return m.folderView()
	}

	listing := browse.ListNote(note)
	lines := m.viewerLines(note)

	start := clampIndex(m.scroll, len(lines))
	end := min(start+viewerPageLines, len(lines))

	var b strings.Builder
	fmt.Fprintf(&b, "%d chars · %d lines · updated %s\n\n", listing.Chars, listing.Lines, listing.Updated)
	b.WriteString(strings.Join(lines[start:end], "\n"))
	if end < len(lines) {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("… %d more lines", len(lines)-end)))
	}
	b.WriteString("\n")
	m.writeStatus(&b)

	hotKeys := "↑/↓: scroll  c: copy  x: export  esc: close"
	if m.mode == modeManager {
		hotKeys = "↑/↓: scroll  c: copy  x: export  e: edit  d: delete  esc: close"
	}

	return renderPage(listing.Icon+" "+note.Name, b.String(), hotKeys)
}
