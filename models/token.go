// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an admin JWT with convenience accessors.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for standard claim access. SignedString holds the compact serialized form
// sent in the Authorization header.
type Token struct {
	// Token is the underlying JWT token. Only the compact string form is
	// meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard claim set (sub, exp, iat, iss).
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Login is the admin login extracted from the "sub" claim.
	Login string `json:"-"`
}

// GetLogin extracts the admin login from the token's "sub" claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetLogin() (string, error) {
	login, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting login from token: %w", err)
	}
	if login == "" {
		return "", fmt.Errorf("error extracting login from token: empty subject")
	}

	return login, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
