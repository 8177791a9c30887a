// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// notes server and the terminal client. It is populated by merging values
// from a .env file, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds admin credentials, token parameters and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the key/value database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings of the notes server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the notes server as seen by the client
	// when publishing.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Export holds Markdown export settings of the client.
	Export Export `envPrefix:"EXPORT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds admin credentials and token settings.
type App struct {
	// AdminLogin is the only login allowed to manage notes.
	// Env: APP_ADMIN_LOGIN
	AdminLogin string `env:"ADMIN_LOGIN"`

	// AdminPasswordHash is the bcrypt hash of the admin password.
	// Env: APP_ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// TokenSignKey is the secret key used to sign and verify admin JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an admin JWT remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the storage backend settings.
type Storage struct {
	// DB holds the key/value database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the key/value database.
type DB struct {
	// DSN selects the backend: "postgres://..." or "postgresql://..." opens
	// PostgreSQL through pgx, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the "host:port" the server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the notes server endpoint used by the client.
type Adapter struct {
	// HTTPAddress is the base address of the notes server
	// (e.g. "localhost:8080"). Empty disables publishing.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Export holds Markdown export settings.
type Export struct {
	// Dir is the directory exported notes are written to.
	// Env: EXPORT_DIR
	Dir string `env:"DIR"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. Earlier sources win for non-zero fields:
//  1. Environment variables (after loading .env)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DefaultDotEnvPath).
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
