// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Admin is the single administrator account allowed to mutate notes.
// Credentials come from configuration, never from the notes store.
type Admin struct {
	// Login is the admin login name.
	Login string

	// PasswordHash is the bcrypt hash of the admin password. An empty hash
	// means no password has been configured.
	PasswordHash string
}

// HasPassword reports whether a password hash is configured.
func (a Admin) HasPassword() bool {
	return a.PasswordHash != ""
}
