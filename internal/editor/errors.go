// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package editor

import "errors"

var (
	// ErrUnknownBlockType is returned when a block type outside the palette
	// is requested.
	ErrUnknownBlockType = errors.New("unknown block type")

	// ErrBlockOutOfRange is returned for a block index outside the draft.
	ErrBlockOutOfRange = errors.New("block index out of range")

	// ErrInvalidBlockText is returned when text cannot be turned into block
	// data, e.g. non-JSON text for a block of unknown type.
	ErrInvalidBlockText = errors.New("invalid block text")

	// ErrSerialization is returned when the draft cannot be turned into a
	// document.
	ErrSerialization = errors.New("draft serialization failed")
)
