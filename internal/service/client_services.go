// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type ClientServices struct {
	ContentService ContentService
	SessionService SessionService
	PublishService PublishService
}

// NewClientServices wires the client services. Folders are written to
// storage only while an admin session is active; serverAdapter may be nil
// when publishing is not configured.
func NewClientServices(snapshots store.SnapshotStorage, serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	admin := models.Admin{Login: cfg.App.AdminLogin, PasswordHash: cfg.App.AdminPasswordHash}
	sessionSvc := NewSessionService(snapshots, admin, logger)

	contentSvc := NewContentService(snapshots, utils.NewTimestampIDGenerator(), logger)
	contentSvc.OnChange(NewSnapshotPersister(snapshots, func() bool {
		return sessionSvc.Current().IsLoggedIn
	}))

	return &ClientServices{
		ContentService: contentSvc,
		SessionService: sessionSvc,
		PublishService: NewClientPublishService(serverAdapter, logger),
	}
}
