// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// notFoundForWrongMethod is registered as the router's MethodNotAllowed
// handler. A known path requested with an unregistered method answers 404
// instead of chi's 405.
func notFoundForWrongMethod(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
