// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/migrations"
)

// Dialect names the SQL backend behind a [DB]. The values double as goose
// dialect names.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DB wraps *sql.DB with the backend dialect and its error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened connection. Used by tests and by callers
// that manage the connection themselves.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	if log == nil {
		log = logger.Nop()
	}
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: classifierFor(dialect),
		logger:             log,
	}
}

// NewConnect opens the database selected by the DSN: a postgres:// or
// postgresql:// URL opens PostgreSQL, anything else a SQLite file.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if DialectFromDSN(cfg.DSN) == DialectPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// DialectFromDSN reports which backend a DSN selects.
func DialectFromDSN(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

// Dialect returns the backend dialect.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, string(db.dialect)); err != nil {
		return fmt.Errorf("migrate %s: %w", db.dialect, err)
	}
	return nil
}

// builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func classifierFor(dialect Dialect) ErrorClassificator {
	if dialect == DialectPostgres {
		return NewPostgresErrorClassifier()
	}
	return NewSQLiteErrorClassifier()
}
