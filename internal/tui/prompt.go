// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/textinput"

// promptModel asks for a single line of text, e.g. a new folder name.
type promptModel struct {
	title string
	input textinput.Model
}

func newPromptModel(title, placeholder string) promptModel {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 120
	input.Width = 40
	input.Focus()

	return promptModel{title: title, input: input}
}

func (m promptModel) View() string {
	content := m.title + "\n\n" + m.input.View() + "\n\nenter ok    esc cancel"
	return overlayBoxStyle.Render(content)
}
