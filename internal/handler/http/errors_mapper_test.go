// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"invalid json", fmt.Errorf("%w: eof", ErrInvalidJSON), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"duplicate folder wins over invalid data", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrDuplicateFolderID), http.StatusBadRequest, app.MsgDuplicateID},
		{"duplicate note", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrDuplicateNoteID), http.StatusBadRequest, app.MsgDuplicateID},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{"login not configured", service.ErrLoginNotConfigured, http.StatusForbidden, app.MsgLoginNotConfigured},
		{"expired token", service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
		{"invalid token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
		{"empty header", ErrEmptyAuthorizationHeader, http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error()},
		{"bad header", utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, utils.ErrInvalidAuthorizationHeader.Error()},
		{"folder not found", service.ErrFolderNotFound, http.StatusNotFound, app.MsgFolderNotFound},
		{"note not found", service.ErrNoteNotFound, http.StatusNotFound, app.MsgNoteNotFound},
		{"store failure", fmt.Errorf("save: %w", store.ErrExecutingStatement), http.StatusInternalServerError, app.MsgInternalServerError},
		{"unknown", errors.New("something else"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, resp.status)
			assert.Equal(t, tt.wantMessage, resp.message)
		})
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	writeError(rr, service.ErrNoteNotFound)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, app.MsgNoteNotFound+"\n", rr.Body.String())
}
