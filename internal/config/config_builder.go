// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// DefaultDotEnvPath is the .env file loaded before environment parsing.
const DefaultDotEnvPath = ".env"

// Defaults applied to fields left empty by every other source.
const (
	DefaultServerAddress   = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultAdapterTimeout  = 10 * time.Second
	DefaultTokenIssuer     = "go-notes-keeper"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultAdminLogin      = "admin"
	DefaultDSN             = "notes-keeper.db"
	DefaultExportDirectory = "."
)

type configBuilder struct {
	configs []*StructuredConfig
	args    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		args:    os.Args[1:],
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

// withDotEnv loads variables from a .env file into the process environment.
// Variables already set are not overridden; a missing file is not an error.
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", path, err))
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			AdminLogin:    DefaultAdminLogin,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{RequestTimeout: DefaultAdapterTimeout},
		Export:  Export{Dir: DefaultExportDirectory},
	})

	return b
}
