// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// login checks the admin credentials and answers with the bearer token in
// the "Authorization" header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	admin, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("admin login failed")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, admin)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	log.Info().Str("login", admin.Login).Msg("admin logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
