// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/browse"
)

func (m *appModel) homeView() string {
	var b strings.Builder

	folders := m.nav().Folders()
	if len(folders) == 0 {
		b.WriteString("No folders yet\n")
	}
	for i, f := range folders {
		cursor := "  "
		line := fmt.Sprintf("📁 %s (%d)", fitText(f.Name, 40), f.NoteCount)
		if i == m.folderIdx {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	m.writeStatus(&b)
	return renderPage(m.title("FOLDERS"), b.String(), m.homeHotKeys())
}

func (m *appModel) folderView() string {
	folder, ok := m.nav().ActiveFolder()
	if !ok {
		return m.homeView()
	}

	var b strings.Builder

	listings := browse.ListNotes(folder)
	if len(listings) == 0 {
		b.WriteString("This folder is empty\n")
	}
	for i, n := range listings {
		cursor := "  "
		line := fmt.Sprintf("%s %-32s %6d chars  %s", n.Icon, fitText(n.Name, 32), n.Chars, n.Updated)
		if i == m.noteIdx {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	m.writeStatus(&b)
	return renderPage(m.title(strings.ToUpper(folder.Name)), b.String(), m.folderHotKeys())
}

func (m *appModel) title(section string) string {
	who := "public"
	if m.mode == modeManager {
		who = "admin: " + m.session.Username
	}
	title := fmt.Sprintf("NOTES · %s · %s", section, who)
	if m.publishing {
		title += "  " + m.spinner.View() + " publishing"
	}
	return title
}

func (m *appModel) writeStatus(b *strings.Builder) {
	if m.status == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
}

func (m *appModel) homeHotKeys() string {
	if m.mode == modeManager {
		return "enter: open  n: new folder  d: delete  p: publish  l: log out  v: about  q: quit"
	}
	return "enter: open  l: admin login  v: about  q: quit"
}

func (m *appModel) folderHotKeys() string {
	if m.mode == modeManager {
		return "enter: view  n: new note  e: edit  d: delete  p: publish  esc: back"
	}
	return "enter: view  esc: back  l: admin login"
}
