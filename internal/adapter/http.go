// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	loginPath   = "/api/admin/login"
	publishPath = "/api/admin/folders"
	versionPath = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/admin/login and stores the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post(loginPath)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("login", credentials.Login).Msg("logged in on server")
	return nil
}

// Publish implements [ServerAdapter]. It PUTs the collection to
// PUT /api/admin/folders. Requires a bearer token.
func (h *httpServerAdapter) Publish(ctx context.Context, folders []models.Folder) error {
	if folders == nil {
		folders = []models.Folder{}
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(folders).
		Put(publishPath)
	if err != nil {
		return fmt.Errorf("publish request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionInfo, error) {
	var info models.VersionInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get(versionPath)
	if err != nil {
		return models.VersionInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
