// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the admin session state. It is persisted separately from the
// notes collection.
type Session struct {
	IsLoggedIn bool   `json:"-"`
	Username   string `json:"username"`
}

// Credentials is the admin login request body.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
