// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request with a trace id, taken from the X-Trace-ID
// request header or generated. The id is echoed in the response header,
// stored in the context and attached to the request-scoped logger.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var traceID string
		if traceIDFromRequestHeader := r.Header.Get(traceIDHeader); traceIDFromRequestHeader != "" {
			traceID = traceIDFromRequestHeader
		} else {
			traceID = uuid.NewString()
		}

		l := h.logger.WithTraceID(traceID)
		ctx = context.WithValue(ctx, utils.TraceIDCtxKey, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
