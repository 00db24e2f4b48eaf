// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	maxTraceIDLength = 64
)

// withTraceID reuses the caller's X-Trace-ID when it is a UUID, otherwise
// generates one. The id is echoed on the response and a child logger
// carrying trace_id is attached to the request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID, ok := traceIDFromHeader(r.Header.Get(traceIDHeader))
		if !ok {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

// traceIDFromHeader returns the canonical form of a client supplied id.
// Anything longer than maxTraceIDLength or not parseable as a UUID is
// rejected so it never reaches logs or response headers.
func traceIDFromHeader(v string) (string, bool) {
	if v == "" || len(v) > maxTraceIDLength {
		return "", false
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
