// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field names accepted by [FolderValidator].
const (
	// FieldFolderIDs checks that every folder has a unique, non-empty id.
	FieldFolderIDs = "folder_ids"
	// FieldNoteIDs checks that every note has an id unique within its folder.
	FieldNoteIDs = "note_ids"
)

// FolderValidator validates whole notes collections and single folders.
type FolderValidator struct{}

// NewFolderValidator returns a [Validator] for []models.Folder and
// models.Folder values.
func NewFolderValidator() Validator {
	return &FolderValidator{}
}

func (v *FolderValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case []models.Folder:
		return v.validateCollection(ctx, value, fields...)
	case models.Folder:
		return v.validateCollection(ctx, []models.Folder{value}, fields...)
	case *models.Folder:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCollection(ctx, []models.Folder{*value}, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FolderValidator) validateCollection(_ context.Context, folders []models.Folder, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFolderIDs, FieldNoteIDs}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldFolderIDs:
			err = checkFolderIDs(folders)
		case FieldNoteIDs:
			err = checkNoteIDs(folders)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func checkFolderIDs(folders []models.Folder) error {
	seen := make(map[string]struct{}, len(folders))
	for _, f := range folders {
		if f.ID == "" {
			return fmt.Errorf("%w: folder %q", ErrEmptyFolderID, f.Name)
		}
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateFolderID, f.ID)
		}
		seen[f.ID] = struct{}{}
	}
	return nil
}

func checkNoteIDs(folders []models.Folder) error {
	for _, f := range folders {
		seen := make(map[string]struct{}, len(f.Files))
		for _, n := range f.Files {
			if n.ID == "" {
				return fmt.Errorf("%w: note %q in folder %s", ErrEmptyNoteID, n.Name, f.ID)
			}
			if _, dup := seen[n.ID]; dup {
				return fmt.Errorf("%w: %s/%s", ErrDuplicateNoteID, f.ID, n.ID)
			}
			seen[n.ID] = struct{}{}
		}
	}
	return nil
}
