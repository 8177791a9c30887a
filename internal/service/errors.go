// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrLoginNotConfigured  = errors.New("admin password is not configured")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrFolderNotFound = errors.New("folder not found")
	ErrNoteNotFound   = errors.New("note not found")

	ErrDuplicateFolderID = validators.ErrDuplicateFolderID
	ErrDuplicateNoteID   = validators.ErrDuplicateNoteID

	ErrPublishingNotConfigured = errors.New("publishing is not configured")
	ErrNotConnectedToServer    = errors.New("not logged in on the server")
	ErrLoginOnServer           = errors.New("login on server failed")
	ErrPublishOnServer         = errors.New("publish on server failed")
)
