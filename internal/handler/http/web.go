// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/dive-log/web"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, web.FS, web.IndexFile)
}
