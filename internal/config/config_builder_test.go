// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier config
// is not overwritten by a later one, while empty fields are filled.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0", TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// TestBuild_RejectsMalformedPasswordHash verifies validation of the bcrypt hash.
func TestBuild_RejectsMalformedPasswordHash(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{AdminPasswordHash: "plaintext"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_MissingFileIsIgnored verifies that a missing .env is not an error.
func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder()
	b.withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

// TestWithDotEnv_LoadsVariables verifies that variables from the .env file
// are visible to the env source.
func TestWithDotEnv_LoadsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EXPORT_DIR=/tmp/notes-export\n"), 0o600))
	t.Setenv("EXPORT_DIR", "")
	require.NoError(t, os.Unsetenv("EXPORT_DIR"))

	b := newTestBuilder()
	b.withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/tmp/notes-export", b.configs[0].Export.Dir)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_ADMIN_LOGIN", "root")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "root", b.configs[0].App.AdminLogin)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_AppendsParsedFlags verifies flags are read from b.args.
func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newTestBuilder("-export-dir", "/srv/export")
	assert.Same(t, b, b.withFlags())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/srv/export", b.configs[0].Export.Dir)
}

// TestWithFlags_SetsErrorOnUnknownFlag verifies that parse errors surface.
func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newTestBuilder("-no-such-flag")
	b.withFlags()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Adapter.HTTPAddress = "localhost:8080"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "localhost:8080", b.configs[1].Adapter.HTTPAddress)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_FillsOnlyEmptyFields verifies defaults never override
// values from other sources.
func TestWithDefaults_FillsOnlyEmptyFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9000"}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultAdminLogin, cfg.App.AdminLogin)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultExportDirectory, cfg.Export.Dir)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
}
