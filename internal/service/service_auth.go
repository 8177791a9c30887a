// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It checks credentials against the single configured admin and handles
// the JWT token lifecycle.
type authService struct {
	// admin is the configured admin account. Logins are refused while it has
	// no password hash.
	admin models.Admin

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService from the admin and token
// settings of cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		admin:         models.Admin{Login: cfg.AdminLogin, PasswordHash: cfg.AdminPasswordHash},
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login authenticates the admin.
//
// Returns the admin record or:
//   - ErrLoginNotConfigured if no admin password hash is configured.
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - ErrWrongPassword if the login or the password does not match.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Admin, error) {
	log := logger.FromContext(ctx)

	if !a.admin.HasPassword() {
		log.Warn().Msg("admin login attempted but no password hash is configured")
		return models.Admin{}, ErrLoginNotConfigured
	}

	if err := verifyCredentials(a.admin, credentials); err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("admin login refused")
		return models.Admin{}, err
	}

	return a.admin, nil
}

// CreateToken issues a signed JWT whose subject is the admin login.
func (a *authService) CreateToken(ctx context.Context, admin models.Admin) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, admin.Login, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string.
//
// Expired tokens yield ErrTokenIsExpired. Every other failure, including a
// token issued for a login other than the configured admin, yields
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if token.Login != a.admin.Login {
		logger.FromContext(ctx).Warn().Str("login", token.Login).Msg("token issued for unknown login")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// verifyCredentials checks credentials against admin, which must carry a
// password hash. The password is compared even when the login differs.
func verifyCredentials(admin models.Admin, credentials models.Credentials) error {
	login := strings.TrimSpace(credentials.Login)
	if login == "" || credentials.Password == "" {
		return ErrInvalidDataProvided
	}

	err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(credentials.Password))
	if err != nil || login != admin.Login {
		return ErrWrongPassword
	}
	return nil
}
