// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"wrong password", fmt.Errorf("%w: %w", service.ErrLoginOnServer, service.ErrWrongPassword), "Wrong username or password"},
		{"not configured", service.ErrPublishingNotConfigured, "Publishing is not configured"},
		{"expired", service.ErrTokenIsExpired, "Server session has expired, log in again to publish"},
		{"server without login", service.ErrLoginNotConfigured, "The server has no admin login configured"},
		{"network", errors.New("Post: dial tcp 127.0.0.1:8080: connection refused"), "No network or the server is unavailable"},
		{"other", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeError(tt.err))
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "заме...", fitText("заметки по python", 7))
	assert.Equal(t, "any", fitText("any", 0))
}

func TestClampIndexAndAt(t *testing.T) {
	assert.Equal(t, 0, clampIndex(-1, 3))
	assert.Equal(t, 2, clampIndex(5, 3))
	assert.Equal(t, 0, clampIndex(0, 0))

	v, ok := at([]string{"a", "b"}, 1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = at([]string{"a"}, 1)
	assert.False(t, ok)
}

func TestRenderPage(t *testing.T) {
	page := renderPage("TITLE", "line one\nline two", "q: quit")

	assert.Contains(t, page, "TITLE")
	assert.Contains(t, page, "  line one\n  line two\n")
	assert.Contains(t, page, "q: quit")
	assert.Contains(t, page, "ctrl+c: quit")
	assert.Contains(t, renderPage("EMPTY", " ", ""), "  -\n")
}
