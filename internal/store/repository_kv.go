// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

const (
	kvTable        = "kv_store"
	kvColumnKey    = "key"
	kvColumnValue  = "value"
	kvColumnUpdate = "updated_at"

	kvUpsertSuffix = "ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

// keyValueRepository is the SQL implementation of [KeyValueRepository] over
// the kv_store table. Works on both PostgreSQL and SQLite.
type keyValueRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewKeyValueRepository constructs a [KeyValueRepository] backed by db.
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating key/value repository")
	return &keyValueRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the value stored under key or [ErrKeyNotFound].
func (r *keyValueRepository) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select(kvColumnValue).
		From(kvTable).
		Where(sq.Eq{kvColumnKey: key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "keyValueRepository.Get").
			Str("key", key).
			Msg("failed to read value")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return []byte(value), nil
}

// Set stores value under key, replacing any previous value.
func (r *keyValueRepository) Set(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Insert(kvTable).
		Columns(kvColumnKey, kvColumnValue, kvColumnUpdate).
		Values(key, string(value), r.now()).
		Suffix(kvUpsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "keyValueRepository.Set").
			Str("key", key).
			Int("size", len(value)).
			Msg("failed to upsert value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *keyValueRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Delete(kvTable).
		Where(sq.Eq{kvColumnKey: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "keyValueRepository.Delete").
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
