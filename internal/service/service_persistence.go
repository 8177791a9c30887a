// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NewSnapshotPersister returns a ChangeHook that writes every new collection
// to storage. While enabled reports false the write is skipped; a nil enabled
// always writes. Write failures are logged and never reach the caller.
func NewSnapshotPersister(storage store.SnapshotStorage, enabled func() bool) ChangeHook {
	return func(ctx context.Context, folders []models.Folder) {
		log := logger.FromContext(ctx)

		if enabled != nil && !enabled() {
			log.Debug().Msg("not logged in, folders are not saved")
			return
		}

		if err := storage.SaveFolders(ctx, folders); err != nil {
			log.Err(err).Int("folders", len(folders)).Msg("folders could not be saved")
		}
	}
}
