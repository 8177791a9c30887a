// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// notes server handlers and the client that talks to them.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place lets the client map a response body back to a service error.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match the configured admin.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginNotConfigured is returned when the server has no admin
	// password hash and therefore refuses every login.
	MsgLoginNotConfigured = "admin login is not configured"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgFolderNotFound = "folder not found"
	MsgNoteNotFound   = "note not found"

	// MsgEmptyName is returned when a folder or note name is blank.
	MsgEmptyName = "name must not be empty"

	// MsgDuplicateID is returned when a published collection repeats a
	// folder id or a note id inside one folder.
	MsgDuplicateID = "duplicate id in collection"
)
