// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueRepository is a durable string-keyed blob store.
type KeyValueRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// SnapshotStorage persists the notes collection and the admin session.
type SnapshotStorage interface {
	LoadFolders(ctx context.Context) ([]models.Folder, error)
	SaveFolders(ctx context.Context, folders []models.Folder) error
	LoadSession(ctx context.Context) (models.Session, error)
	SaveSession(ctx context.Context, session models.Session) error
	ClearSession(ctx context.Context) error
}

// NoteExporter writes a note to a Markdown file and returns its path.
type NoteExporter interface {
	Export(ctx context.Context, folderName string, note models.Note) (string, error)
}
