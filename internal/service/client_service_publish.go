// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// clientPublishService uploads the local collection through a ServerAdapter.
// A nil adapter means no server address is configured.
type clientPublishService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientPublishService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) PublishService {
	return &clientPublishService{serverAdapter: serverAdapter, logger: logger}
}

func (s *clientPublishService) Enabled() bool {
	return s.serverAdapter != nil
}

// Connect implements PublishService.
func (s *clientPublishService) Connect(ctx context.Context, credentials models.Credentials) error {
	if !s.Enabled() {
		return ErrPublishingNotConfigured
	}

	if err := s.serverAdapter.Login(ctx, credentials); err != nil {
		mapped := mapAdapterError(err)
		logger.FromContext(ctx).Err(err).Msg("server login failed")
		return fmt.Errorf("%w: %w", ErrLoginOnServer, mapped)
	}
	return nil
}

// Publish implements PublishService. Connect must have succeeded first.
func (s *clientPublishService) Publish(ctx context.Context, folders []models.Folder) error {
	if !s.Enabled() {
		return ErrPublishingNotConfigured
	}
	if s.serverAdapter.Token() == "" {
		return ErrNotConnectedToServer
	}

	if err := s.serverAdapter.Publish(ctx, folders); err != nil {
		mapped := mapAdapterError(err)
		logger.FromContext(ctx).Err(err).Int("folders", len(folders)).Msg("publish failed")
		return fmt.Errorf("%w: %w", ErrPublishOnServer, mapped)
	}

	logger.FromContext(ctx).Info().Int("folders", len(folders)).Msg("collection published")
	return nil
}
