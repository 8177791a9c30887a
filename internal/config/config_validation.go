// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validate checks invariants that hold for every binary.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AdminPasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(cfg.App.AdminPasswordHash)); err != nil {
			return fmt.Errorf("%w: admin password hash: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

// ValidateServer checks the settings the notes server cannot start without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.AdminLogin == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Export.Dir == "" {
		return ErrInvalidExportConfigs
	}

	return nil
}
