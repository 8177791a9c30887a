// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type fakeScreen struct {
	err   error
	calls int
}

func (f *fakeScreen) Run(context.Context) error {
	f.calls++
	return f.err
}

type fakeCloser struct {
	err    error
	closed bool
}

func (f *fakeCloser) Close() error {
	f.closed = true
	return f.err
}

func newTestServices(t *testing.T) *service.ClientServices {
	t.Helper()
	ctrl := gomock.NewController(t)

	content := mock.NewMockContentService(ctrl)
	content.EXPECT().Restore(gomock.Any()).Return([]models.Folder{{ID: "f1", Name: "Python"}})

	sessions := mock.NewMockSessionService(ctrl)
	sessions.EXPECT().Restore(gomock.Any()).Return(models.Session{IsLoggedIn: true, Username: "admin"})

	return &service.ClientServices{ContentService: content, SessionService: sessions}
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name     string
		uiErr    error
		closeErr error
		wantErr  bool
	}{
		{name: "normal quit"},
		{name: "ctrl+c is not an error", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: errors.New("terminal gone"), wantErr: true},
		{name: "close failure is only logged", closeErr: errors.New("busy")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeScreen{err: tt.uiErr}
			closer := &fakeCloser{err: tt.closeErr}
			app := newApp(newTestServices(t), ui, closer, logger.Nop())

			err := app.Run(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.uiErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, 1, ui.calls)
			assert.True(t, closer.closed)
		})
	}
}

func TestApp_Run_NilCloser(t *testing.T) {
	app := newApp(newTestServices(t), &fakeScreen{}, nil, logger.Nop())
	assert.NoError(t, app.Run(context.Background()))
}

func TestNewApp(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.ClientConfig{
		App:     config.ClientApp{AdminLogin: "admin"},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(dir, "client.db")}},
		Export:  config.ClientExport{Dir: dir},
	}

	app, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.NotNil(t, app.services.ContentService)
	assert.NotNil(t, app.services.SessionService)
	assert.NotNil(t, app.services.PublishService)
	assert.False(t, app.services.PublishService.Enabled())

	app.close()
}

func TestNewApp_WithServerAdapter(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: "http://localhost:8080"},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(dir, "client.db")}},
		Export:  config.ClientExport{Dir: dir},
	}

	app, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)
	assert.True(t, app.services.PublishService.Enabled())

	app.close()
}
