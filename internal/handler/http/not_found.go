// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/dive-log/internal/utils"
	"github.com/MKhiriev/dive-log/models"
)

// notFound answers unmatched routes, and registered paths requested with
// an unregistered method, with a hint listing every endpoint.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.NotFoundResponse{
		Error:              http.StatusText(http.StatusNotFound),
		Message:            "Route " + r.Method + " " + r.URL.Path + " not found",
		AvailableEndpoints: availableEndpoints,
	}, http.StatusNotFound)
}
