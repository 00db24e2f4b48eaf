// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/internal/utils"
)

// withRecover turns a handler panic into a 500 JSON error. The panic value
// and stack are returned to the client outside production only.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			stack := debug.Stack()
			logger.FromRequest(r).Error().
				Str("func", "*Handler.withRecover").
				Interface("panic", rec).
				Bytes("stack", stack).
				Msg("panic recovered")

			body := map[string]any{
				"error":   http.StatusText(http.StatusInternalServerError),
				"message": genericErrorMessage,
			}
			if !h.production {
				body["details"] = fmt.Sprint(rec)
				body["stack"] = string(stack)
			}
			utils.WriteJSON(w, body, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
