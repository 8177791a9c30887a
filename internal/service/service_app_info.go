// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type appInfoService struct {
	info models.VersionInfo

	logger *logger.Logger
}

// NewAppInfoService builds the version report from the configured version,
// falling back to the version baked in at build time. It fails when neither
// is set.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	info := build.VersionInfo(cfg.Version)
	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetVersionInfo(ctx context.Context) models.VersionInfo {
	return s.info
}
