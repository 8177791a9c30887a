// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Fixed keys of the persisted records.
const (
	FoldersKey = "notes-folders"
	SessionKey = "notes-login"
)

// sessionRecord is the persisted form of an admin session.
type sessionRecord struct {
	Username string `json:"username"`
}

// snapshotStorage encodes the notes collection and the session record as
// JSON values of a [KeyValueRepository].
type snapshotStorage struct {
	repo   KeyValueRepository
	logger *logger.Logger
}

// NewSnapshotStorage constructs a [SnapshotStorage] over repo.
func NewSnapshotStorage(repo KeyValueRepository, logger *logger.Logger) SnapshotStorage {
	return &snapshotStorage{repo: repo, logger: logger}
}

// LoadFolders reads the notes collection. A missing record yields
// [ErrKeyNotFound]; an undecodable one [ErrMalformedSnapshot].
func (s *snapshotStorage) LoadFolders(ctx context.Context) ([]models.Folder, error) {
	raw, err := s.repo.Get(ctx, FoldersKey)
	if err != nil {
		return nil, err
	}

	var folders []models.Folder
	if err = json.Unmarshal(raw, &folders); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedSnapshot, FoldersKey, err)
	}
	if folders == nil {
		return nil, fmt.Errorf("%w: %s: not an array", ErrMalformedSnapshot, FoldersKey)
	}

	return folders, nil
}

// SaveFolders replaces the stored notes collection.
func (s *snapshotStorage) SaveFolders(ctx context.Context, folders []models.Folder) error {
	if folders == nil {
		folders = []models.Folder{}
	}

	raw, err := json.Marshal(folders)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSnapshot, err)
	}

	logger.FromContext(ctx).Debug().Int("folders", len(folders)).Int("size", len(raw)).Msg("saving folders snapshot")
	return s.repo.Set(ctx, FoldersKey, raw)
}

// LoadSession reads the session record. A stored username means a logged-in
// session.
func (s *snapshotStorage) LoadSession(ctx context.Context) (models.Session, error) {
	raw, err := s.repo.Get(ctx, SessionKey)
	if err != nil {
		return models.Session{}, err
	}

	var rec sessionRecord
	if err = json.Unmarshal(raw, &rec); err != nil {
		return models.Session{}, fmt.Errorf("%w: %s: %w", ErrMalformedSnapshot, SessionKey, err)
	}
	if rec.Username == "" {
		return models.Session{}, fmt.Errorf("%w: %s: empty username", ErrMalformedSnapshot, SessionKey)
	}

	return models.Session{IsLoggedIn: true, Username: rec.Username}, nil
}

// SaveSession writes the session record.
func (s *snapshotStorage) SaveSession(ctx context.Context, session models.Session) error {
	raw, err := json.Marshal(sessionRecord{Username: session.Username})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSnapshot, err)
	}
	return s.repo.Set(ctx, SessionKey, raw)
}

// ClearSession removes the session record.
func (s *snapshotStorage) ClearSession(ctx context.Context) error {
	return s.repo.Delete(ctx, SessionKey)
}
