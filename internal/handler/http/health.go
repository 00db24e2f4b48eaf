// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/dive-log/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.HealthService.Health(r.Context()), http.StatusOK)
}

func (h *Handler) readiness(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.HealthService.Readiness(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, status, http.StatusOK)
}
