// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// Storages groups the persistence components used by the services.
type Storages struct {
	DB        *DB
	KeyValue  KeyValueRepository
	Snapshots SnapshotStorage
}

// NewStorages connects to the database named by cfg, applies migrations and
// wires the repositories.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("dialect", string(DialectFromDSN(cfg.DSN))).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKeyValueRepository(db, logger)
	return &Storages{
		DB:        db,
		KeyValue:  kv,
		Snapshots: NewSnapshotStorage(kv, logger),
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
