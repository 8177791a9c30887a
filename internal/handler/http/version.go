// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetVersionInfo(r.Context())

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write version")
	}
}
