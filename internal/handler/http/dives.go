// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/internal/service"
	"github.com/MKhiriev/dive-log/internal/utils"
	"github.com/MKhiriev/dive-log/models"
	"github.com/go-chi/chi/v5"
)

// createDive logs a dive for the authenticated user. Owner, id and dive
// number are never read from the body.
func (h *Handler) createDive(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	var req models.CreateDiveRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.createDive").Msg("Invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	resp, err := h.services.DiveService.CreateDive(ctx, userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) listDives(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	resp, err := h.services.DiveService.ListDives(r.Context(), service.ListDivesParams{
		Page:     q.Get("page"),
		Limit:    q.Get("limit"),
		UserID:   q.Get("user_id"),
		Type:     q.Get("type"),
		Location: q.Get("location"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getDive(w http.ResponseWriter, r *http.Request) {
	dive, err := h.services.DiveService.GetDive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DiveResponse{Dive: dive}, http.StatusOK)
}
