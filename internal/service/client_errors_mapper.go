// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided, app.MsgEmptyName:
			return ErrInvalidDataProvided
		case app.MsgDuplicateID:
			return ErrDuplicateFolderID
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		if msg == app.MsgLoginNotConfigured {
			return ErrLoginNotConfigured
		}

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgFolderNotFound:
			return ErrFolderNotFound
		case app.MsgNoteNotFound:
			return ErrNoteNotFound
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
