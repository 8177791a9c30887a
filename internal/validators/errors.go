// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFolderID     = errors.New("folder id is required")
	ErrEmptyNoteID       = errors.New("note id is required")
	ErrDuplicateFolderID = errors.New("duplicate folder id")
	ErrDuplicateNoteID   = errors.New("duplicate note id")
)
