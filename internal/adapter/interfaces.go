// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to a notes server.
//
// [ServerAdapter] decouples the service layer from the HTTP API. Error values
// defined in errors.go are mapped from HTTP status codes by mapHTTPError so
// callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the admin API of a notes server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Login authenticates the admin and stores the returned bearer token.
	Login(ctx context.Context, credentials models.Credentials) error

	// Publish replaces the whole server collection with folders.
	Publish(ctx context.Context, folders []models.Folder) error

	// Version returns the server version report.
	Version(ctx context.Context) (models.VersionInfo, error)
}
