// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

var (
	// ErrUserQuit is returned by [TUI.Run] when the user quits with ctrl+c.
	ErrUserQuit = errors.New("user quit")

	errNoServices = errors.New("client services are not provided")
)

// describeError turns a service error into a message for the error overlay.
func describeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWrongPassword):
		return "Wrong username or password"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Username is required"
	case errors.Is(err, service.ErrPublishingNotConfigured):
		return "Publishing is not configured"
	case errors.Is(err, service.ErrNotConnectedToServer),
		errors.Is(err, service.ErrTokenIsExpired),
		errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Server session has expired, log in again to publish"
	case errors.Is(err, service.ErrLoginNotConfigured):
		return "The server has no admin login configured"
	case errors.Is(err, service.ErrDuplicateFolderID):
		return "The server rejected duplicate ids"
	}
	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
