// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods. Callers match them with
// [errors.Is].
var (
	// ErrKeyNotFound is returned when a key is absent from the key/value store.
	ErrKeyNotFound = errors.New("key not found")

	// ErrMalformedSnapshot is returned when a stored snapshot cannot be decoded.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrEncodingSnapshot is returned when a snapshot cannot be encoded.
	ErrEncodingSnapshot = errors.New("error encoding snapshot")

	// ErrExportFailed is returned when a note cannot be written to disk.
	ErrExportFailed = errors.New("note export failed")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
