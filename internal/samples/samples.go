// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package samples holds the notes collection shown when nothing has been
// stored yet.
package samples

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:embed folders.json
var foldersJSON []byte

// Folders returns a fresh copy of the bundled sample collection. Sample
// bodies are legacy plain strings and come back as single-paragraph
// documents.
func Folders() ([]models.Folder, error) {
	var folders []models.Folder
	if err := json.Unmarshal(foldersJSON, &folders); err != nil {
		return nil, fmt.Errorf("decode sample folders: %w", err)
	}
	return folders, nil
}

// MustFolders is like [Folders] but panics if the embedded data is invalid.
func MustFolders() []models.Folder {
	folders, err := Folders()
	if err != nil {
		panic(err)
	}
	return folders
}
