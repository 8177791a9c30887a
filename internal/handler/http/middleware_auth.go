// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based admin authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the admin
// login in the request context under [utils.AdminLoginCtxKey] before
// delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is
// missing or malformed, or when the token is expired or invalid. The body
// names the reason so the client can tell an expired session apart.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, err)
			return
		}

		ctx = context.WithValue(ctx, utils.AdminLoginCtxKey, token.Login)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
