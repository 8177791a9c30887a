// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/internal/editor"
	"github.com/MKhiriev/go-notes-keeper/internal/render"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type editorFocus int

const (
	focusBlocks editorFocus = iota
	focusName
	focusText
	focusPalette
)

// editorAction is what the editor overlay asks its owner to do.
type editorAction int

const (
	editorNone editorAction = iota
	editorSave
	editorCancel
)

// editorModel is the note editor overlay over an [editor.Draft].
type editorModel struct {
	draft      *editor.Draft
	nameInput  textinput.Model
	textArea   textarea.Model
	focus      editorFocus
	palette    []editor.PaletteEntry
	paletteIdx int
	preview    bool
	width      int
	errMsg     string
}

func newEditorModel(draft *editor.Draft, width int) editorModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "file name, e.g. notes.md"
	nameInput.CharLimit = 120
	nameInput.Width = 40
	nameInput.SetValue(draft.Name())

	textArea := textarea.New()
	textArea.ShowLineNumbers = false
	textArea.SetWidth(max(20, width-8))
	textArea.SetHeight(8)

	m := editorModel{
		draft:     draft,
		nameInput: nameInput,
		textArea:  textArea,
		focus:     focusBlocks,
		palette:   editor.Palette(),
		width:     width,
	}
	if strings.TrimSpace(draft.Name()) == "" {
		m.focus = focusName
		m.nameInput.Focus()
	}
	return m
}

// Update handles a message for the overlay. ctrl+s is consumed here from
// any focus and reported as editorSave once pending text is applied.
func (m editorModel) Update(msg tea.Msg) (editorModel, editorAction, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.save) {
		if !m.commitText() {
			return m, editorNone, nil
		}
		m.draft.SetName(m.nameInput.Value())
		return m, editorSave, nil
	}

	switch m.focus {
	case focusName:
		return m.updateName(msg)
	case focusText:
		return m.updateText(msg)
	case focusPalette:
		return m.updatePalette(msg)
	}
	return m.updateBlocks(msg)
}

func (m editorModel) updateBlocks(msg tea.Msg) (editorModel, editorAction, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, editorNone, nil
	}

	m.errMsg = ""
	cursor := m.draft.Cursor()

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, editorCancel, nil
	case key.Matches(keyMsg, keys.moveUp):
		m.draft.MoveUp(cursor)
	case key.Matches(keyMsg, keys.moveDown):
		m.draft.MoveDown(cursor)
	case key.Matches(keyMsg, keys.up):
		m.draft.SetCursor(cursor - 1)
	case key.Matches(keyMsg, keys.down):
		m.draft.SetCursor(cursor + 1)
	case key.Matches(keyMsg, keys.enter):
		return m, editorNone, m.startText()
	case key.Matches(keyMsg, keys.palette):
		m.focus = focusPalette
		m.paletteIdx = 0
	case key.Matches(keyMsg, keys.delete):
		m.draft.Remove(cursor)
	case key.Matches(keyMsg, keys.level):
		m.draft.CycleHeaderLevel(cursor)
	case key.Matches(keyMsg, keys.listStyle):
		m.draft.ToggleListStyle(cursor)
	case key.Matches(keyMsg, keys.preview):
		m.preview = !m.preview
	case key.Matches(keyMsg, keys.tab):
		m.focus = focusName
		return m, editorNone, m.nameInput.Focus()
	}

	return m, editorNone, nil
}

func (m editorModel) updateName(msg tea.Msg) (editorModel, editorAction, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.esc):
			m.draft.SetName(m.nameInput.Value())
			m.nameInput.Blur()
			m.focus = focusBlocks
			return m, editorNone, nil
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, editorNone, cmd
}

func (m editorModel) updateText(msg tea.Msg) (editorModel, editorAction, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		m.commitText()
		return m, editorNone, nil
	}

	var cmd tea.Cmd
	m.textArea, cmd = m.textArea.Update(msg)
	return m, editorNone, cmd
}

func (m editorModel) updatePalette(msg tea.Msg) (editorModel, editorAction, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, editorNone, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.focus = focusBlocks
	case key.Matches(keyMsg, keys.up):
		if m.paletteIdx > 0 {
			m.paletteIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.paletteIdx < len(m.palette)-1 {
			m.paletteIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		entry, ok := at(m.palette, m.paletteIdx)
		if !ok {
			return m, editorNone, nil
		}
		m.focus = focusBlocks
		if _, err := m.draft.InsertAfterCursor(entry.Type); err != nil {
			m.errMsg = err.Error()
			return m, editorNone, nil
		}
		return m, editorNone, m.startText()
	}

	return m, editorNone, nil
}

// startText opens the selected block's text for editing. Delimiters carry
// no text and stay closed.
func (m *editorModel) startText() tea.Cmd {
	b, ok := m.draft.Block(m.draft.Cursor())
	if !ok || b.Type == models.BlockDelimiter {
		return nil
	}

	m.textArea.SetValue(m.draft.Text(m.draft.Cursor()))
	m.focus = focusText
	return m.textArea.Focus()
}

// commitText applies the text being edited to the selected block. It
// reports false and keeps the text open when the text does not fit the
// block.
func (m *editorModel) commitText() bool {
	if m.focus != focusText {
		return true
	}
	if err := m.draft.SetText(m.draft.Cursor(), m.textArea.Value()); err != nil {
		m.errMsg = err.Error()
		return false
	}
	m.errMsg = ""
	m.textArea.Blur()
	m.focus = focusBlocks
	return true
}

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString("Name: ")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")

	cursor := m.draft.Cursor()
	for i, block := range m.draft.Blocks() {
		marker := "  "
		line := fmt.Sprintf("[%-9s] %s", block.Type, fitText(firstLine(m.draft.Text(i)), max(10, m.width-24)))
		if i == cursor {
			marker = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(marker)
		b.WriteString(line)
		b.WriteString("\n")
	}

	switch m.focus {
	case focusText:
		b.WriteString("\n")
		b.WriteString(m.textArea.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(textHint(m.draft)))
		b.WriteString("\n")
	case focusPalette:
		b.WriteString("\nAdd block\n")
		for i, entry := range m.palette {
			marker := "  "
			if i == m.paletteIdx {
				marker = "> "
			}
			b.WriteString(marker)
			b.WriteString(entry.Label)
			b.WriteString("\n")
		}
	}

	if m.preview {
		doc := m.draft.Preview()
		b.WriteString("\nPreview\n")
		b.WriteString(render.Terminal(render.Document(&doc), max(20, m.width-8)))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	title := "NEW NOTE"
	if name := strings.TrimSpace(m.draft.Name()); name != "" {
		title = "EDITING " + name
	}
	return renderPage(title, b.String(), m.hotKeys())
}

func (m editorModel) hotKeys() string {
	switch m.focus {
	case focusName:
		return "enter: done  ctrl+s: save"
	case focusText:
		return "esc: done  ctrl+s: save"
	case focusPalette:
		return "enter: add  esc: back"
	}
	return "enter: edit  a: add  d: remove  K/J: move  h: level  o: list style  p: preview  tab: name  ctrl+s: save  esc: cancel"
}

// textHint explains the plain-text form of the selected block.
func textHint(d *editor.Draft) string {
	b, _ := d.Block(d.Cursor())
	switch b.Type {
	case models.BlockList:
		return "one item per line, indent two spaces to nest"
	case models.BlockQuote:
		return "quote text, then a \"--\" line and the caption; write \\-- for a literal --"
	case models.BlockTable:
		return "one row per line, cells separated by |; the column count is fixed"
	case models.BlockImage:
		return "image URL on the first line, caption below"
	case models.BlockParagraph, models.BlockHeader, models.BlockCode:
		return ""
	}
	return "block data as JSON"
}
