// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type Services struct {
	ContentService ContentService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the server services. The notes collection is restored
// from storage before the persistence hook is attached, so restoring never
// writes back.
func NewServices(ctx context.Context, storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	content := NewContentService(storages.Snapshots, utils.NewTimestampIDGenerator(), logger)
	restored := content.Restore(logger.WithContext(ctx))
	content.OnChange(NewSnapshotPersister(storages.Snapshots, nil))
	logger.Info().Int("folders", len(restored)).Msg("notes collection loaded")

	return &Services{
		ContentService: content,
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
	}, nil
}
