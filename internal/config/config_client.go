// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the admin credentials checked locally by the client.
type ClientApp struct {
	// AdminLogin is the only login accepted by the manager.
	AdminLogin string
	// AdminPasswordHash is the bcrypt hash of the admin password. Empty
	// means any non-empty username is accepted.
	AdminPasswordHash string
}

// ClientAdapter holds network settings used when publishing to the server.
type ClientAdapter struct {
	// HTTPAddress is the notes server address. Empty disables publishing.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file holding the client's key/value store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientExport holds Markdown export settings.
type ClientExport struct {
	// Dir is the directory exported notes are written to.
	Dir string
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Export  ClientExport
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			AdminLogin:        cfg.App.AdminLogin,
			AdminPasswordHash: cfg.App.AdminPasswordHash,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Export: ClientExport{Dir: cfg.Export.Dir},
	}
}

// PublishingEnabled reports whether a notes server address is configured.
func (cfg *ClientConfig) PublishingEnabled() bool {
	return cfg.Adapter.HTTPAddress != ""
}
