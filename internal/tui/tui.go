// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// TUI is the terminal notes application.
type TUI struct {
	services  *service.ClientServices
	exporter  store.NoteExporter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns the terminal UI over services. exporter may be nil, in which
// case Markdown export reports an error.
func New(services *service.ClientServices, exporter store.NoteExporter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	return &TUI{
		services:  services,
		exporter:  exporter,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the notes browser until the user quits. The session must be
// restored beforehand: a logged-in session opens the manager, otherwise the
// public viewer is shown.
func (t *TUI) Run(ctx context.Context) error {
	if t.logger != nil {
		ctx = t.logger.WithContext(ctx)
	}
	model := newAppModel(ctx, t.services, t.exporter, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(*appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
