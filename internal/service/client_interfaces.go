// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionService tracks whether the local user is in admin mode.
type SessionService interface {
	// Restore reads the persisted session. A missing or malformed record
	// yields a logged-out session.
	Restore(ctx context.Context) models.Session

	// Login checks credentials against the configured admin, persists the
	// session and returns it.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Logout clears the session and its persisted record.
	Logout(ctx context.Context) error

	Current() models.Session
}

// PublishService uploads the local collection to a notes server.
type PublishService interface {
	// Enabled reports whether a server address is configured.
	Enabled() bool

	// Connect logs in on the server with the admin credentials.
	Connect(ctx context.Context, credentials models.Credentials) error

	// Publish replaces the server collection with folders.
	Publish(ctx context.Context, folders []models.Folder) error
}
