// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the notes server and the terminal client.
//
// Configuration is assembled from multiple sources; earlier sources win for
// non-zero fields:
//  1. Environment variables (a .env file is loaded first)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
