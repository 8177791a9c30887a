// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ChangeHook receives the full collection after every successful mutation.
type ChangeHook func(ctx context.Context, folders []models.Folder)

// IDGenerator produces identifiers for new folders and notes.
type IDGenerator interface {
	Generate() string
}

// ContentService owns the in-memory notes collection.
//
// Every mutation builds a new collection and swaps it in whole. Readers get
// deep copies, so nothing they hold changes underneath them. Mutations that
// cannot apply (blank name, unknown id) leave the collection untouched and
// report false.
type ContentService interface {
	// Restore loads the persisted collection, falling back to the bundled
	// sample set when nothing usable is stored. It never fails.
	Restore(ctx context.Context) []models.Folder

	Folders() []models.Folder
	Summaries() []models.FolderSummary
	Folder(folderID string) (models.Folder, bool)
	Note(folderID, noteID string) (models.Note, bool)

	CreateFolder(ctx context.Context, name string) (models.Folder, bool)
	DeleteFolder(ctx context.Context, folderID string) bool
	CreateNote(ctx context.Context, folderID, name string, content models.Document) (models.Note, bool)
	EditNote(ctx context.Context, folderID, noteID, name string, content models.Document) (models.Note, bool)
	DeleteNote(ctx context.Context, folderID, noteID string) bool

	// Replace swaps in a whole collection (publish). Duplicate or blank ids
	// are rejected with ErrInvalidDataProvided.
	Replace(ctx context.Context, folders []models.Folder) error

	// OnChange registers the hook run after every successful mutation.
	OnChange(hook func(ctx context.Context, folders []models.Folder))
}

// AuthService verifies admin credentials and issues admin tokens.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Admin, error)
	CreateToken(ctx context.Context, admin models.Admin) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports the running server version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}
