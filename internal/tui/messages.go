// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-notes-keeper/models"

type loginDoneMsg struct {
	session models.Session
	err     error

	// connectErr is the result of logging in on the publishing server.
	connectErr error
}

type logoutDoneMsg struct {
	err error
}

type publishDoneMsg struct {
	folders int
	err     error
}

type exportDoneMsg struct {
	path string
	err  error
}

type errMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
