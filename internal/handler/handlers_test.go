// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

// TestNewHandlers_HTTPAddress verifies that a configured HTTP address yields
// an initialised HTTP handler.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.NotNil(t, h.HTTP.Init())
}

// TestNewHandlers_NoAddress verifies that without an HTTP address
// NewHandlers returns errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_IndependentInstances verifies that two calls produce
// independent handlers.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h1, err1 := NewHandlers(&service.Services{}, cfg, logger.Nop())
	h2, err2 := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
