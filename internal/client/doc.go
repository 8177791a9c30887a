// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive notes client runtime.
//
// It wires the local SQLite store, the client services and the terminal UI
// into a single process lifecycle.
package client
