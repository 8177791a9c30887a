// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// loginModel is the admin login prompt: a username and a masked password
// input.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newLoginModel() loginModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "username"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{loginInput, passwordInput}}
}

func (m loginModel) credentials() models.Credentials {
	return models.Credentials{
		Login:    strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
}

func (m loginModel) focusNext() loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m loginModel) focusPrev() loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m loginModel) View() string {
	var b strings.Builder

	b.WriteString("Username\n")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n\nPassword\n")
	b.WriteString(m.inputs[1].View())

	if m.submitting {
		b.WriteString("\n\nLogging in...")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage("ADMIN LOGIN", b.String(), "tab: next field  enter: log in  esc: back")
}
