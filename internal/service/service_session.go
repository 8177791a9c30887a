// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// sessionService keeps the local admin session and its persisted record.
//
// With a configured password hash only the configured admin may log in.
// Without one, any non-empty username is accepted and the password is
// ignored.
type sessionService struct {
	mu      sync.RWMutex
	session models.Session

	admin   models.Admin
	storage store.SnapshotStorage

	logger *logger.Logger
}

func NewSessionService(storage store.SnapshotStorage, admin models.Admin, logger *logger.Logger) SessionService {
	return &sessionService{
		admin:   admin,
		storage: storage,
		logger:  logger,
	}
}

// Restore implements SessionService.
func (s *sessionService) Restore(ctx context.Context) models.Session {
	log := logger.FromContext(ctx)

	restored, err := s.storage.LoadSession(ctx)
	switch {
	case err == nil:
		restored.IsLoggedIn = true
		log.Debug().Str("username", restored.Username).Msg("session restored")
	case errors.Is(err, store.ErrKeyNotFound):
		restored = models.Session{}
	default:
		log.Warn().Err(err).Msg("saved session is unusable, starting logged out")
		restored = models.Session{}
	}

	s.mu.Lock()
	s.session = restored
	s.mu.Unlock()

	return restored
}

// Login implements SessionService. A failed write of the session record is
// logged; the user stays logged in for the running process.
func (s *sessionService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(credentials.Login)
	if username == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	if s.admin.HasPassword() {
		if err := verifyCredentials(s.admin, credentials); err != nil {
			log.Err(err).Str("username", username).Msg("login refused")
			return models.Session{}, err
		}
	}

	session := models.Session{IsLoggedIn: true, Username: username}
	if err := s.storage.SaveSession(ctx, session); err != nil {
		log.Err(err).Msg("session could not be saved")
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	log.Info().Str("username", username).Msg("logged in")
	return session, nil
}

// Logout implements SessionService. The in-memory session is cleared even if
// removing the persisted record fails.
func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()

	if err := s.storage.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *sessionService) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}
