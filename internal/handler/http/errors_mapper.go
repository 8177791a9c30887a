// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// errorResponse is the status and plain-text body sent for an error.
type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order, so wrapped errors that match more than
// one sentinel resolve to the most specific entry.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrDuplicateFolderID, errorResponse{http.StatusBadRequest, app.MsgDuplicateID}},
	{service.ErrDuplicateNoteID, errorResponse{http.StatusBadRequest, app.MsgDuplicateID}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{service.ErrLoginNotConfigured, errorResponse{http.StatusForbidden, app.MsgLoginNotConfigured}},
	{service.ErrTokenIsExpired, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpired}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{ErrEmptyAuthorizationHeader, errorResponse{http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error()}},
	{utils.ErrInvalidAuthorizationHeader, errorResponse{http.StatusUnauthorized, utils.ErrInvalidAuthorizationHeader.Error()}},
	{service.ErrFolderNotFound, errorResponse{http.StatusNotFound, app.MsgFolderNotFound}},
	{service.ErrNoteNotFound, errorResponse{http.StatusNotFound, app.MsgNoteNotFound}},

	{store.ErrBuildingSQLQuery, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrExecutingQuery, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrExecutingStatement, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrScanningRow, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError answers the request with the plain-text message and status
// mapped from err.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	http.Error(w, resp.message, resp.status)
}
