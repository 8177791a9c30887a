// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/render"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// screen is the interactive front end driven by [App].
type screen interface {
	Run(ctx context.Context) error
}

// App is the notes client process: local storage, services and the
// terminal UI.
type App struct {
	services *service.ClientServices
	ui       screen
	closer   io.Closer
	logger   *logger.Logger
}

// NewApp opens the local SQLite store named by cfg and wires the client
// services, the Markdown exporter and the terminal UI. The server adapter is
// created only when publishing is configured.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, config.DB{DSN: cfg.Storage.DB.DSN}, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	var serverAdapter adapter.ServerAdapter
	if cfg.PublishingEnabled() {
		serverAdapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
		if err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("create server adapter: %w", err)
		}
	}

	services := service.NewClientServices(storages.Snapshots, serverAdapter, *cfg, logger)
	exporter := store.NewMarkdownExporter(cfg.Export.Dir, render.DocumentMarkdown, logger)

	ui, err := tui.New(services, exporter, buildInfo, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating ui: %w", err)
	}

	return newApp(services, ui, storages, logger), nil
}

func newApp(services *service.ClientServices, ui screen, closer io.Closer, logger *logger.Logger) *App {
	return &App{services: services, ui: ui, closer: closer, logger: logger}
}

// Run restores the notes collection and the admin session, then shows the
// UI until the user quits. Quitting with ctrl+c is not reported as an error.
// Local storage is closed on return.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	defer a.close()

	folders := a.services.ContentService.Restore(ctx)
	session := a.services.SessionService.Restore(ctx)
	a.logger.Info().
		Int("folders", len(folders)).
		Bool("logged_in", session.IsLoggedIn).
		Msg("client state restored")

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("client interrupted by user")
			return nil
		}
		return fmt.Errorf("ui error: %w", err)
	}

	return nil
}

func (a *App) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.logger.Err(err).Msg("error closing local storage")
	}
}
