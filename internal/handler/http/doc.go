// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the notes server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Anonymous readers get the folder collection as JSON and single notes
// as rendered HTML; the admin logs in for a bearer token and mutates or
// republishes the collection. Request tracing, access logging, response
// compression and authentication are handled in this package before
// requests are delegated to the service layer.
package http
