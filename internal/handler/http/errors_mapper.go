// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/internal/service"
	"github.com/MKhiriev/dive-log/internal/utils"
	"github.com/MKhiriev/dive-log/models"
)

const genericErrorMessage = "An unexpected error occurred"

// errorReply is the client-facing message and code of a known sentinel.
type errorReply struct {
	message string
	code    string
}

// errorTable is matched top to bottom; the first sentinel found in the
// chain wins. Validation errors carry their own reply.
var errorTable = []struct {
	target error
	status int
	reply  errorReply
}{
	{service.ErrValidation, http.StatusBadRequest, errorReply{}},
	{service.ErrMissingToken, http.StatusUnauthorized, errorReply{"Access token is required", "MISSING_TOKEN"}},
	{service.ErrInvalidToken, http.StatusUnauthorized, errorReply{"Invalid or expired token", "INVALID_TOKEN"}},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, errorReply{"Invalid email or password", "INVALID_CREDENTIALS"}},
	{service.ErrEmailAlreadyExists, http.StatusConflict, errorReply{"User with this email already exists", "EMAIL_ALREADY_EXISTS"}},
	{service.ErrUserNotFound, http.StatusNotFound, errorReply{"User not found", "USER_NOT_FOUND"}},
	{service.ErrProfileNotFound, http.StatusNotFound, errorReply{"User profile not found", "PROFILE_NOT_FOUND"}},
	{service.ErrDiveNotFound, http.StatusNotFound, errorReply{"Dive not found", "DIVE_NOT_FOUND"}},
	{service.ErrProviderNotReady, http.StatusServiceUnavailable, errorReply{"Provider is not reachable", "PROVIDER_NOT_READY"}},

	{ErrMalformedJSON, http.StatusBadRequest, errorReply{"Request body must be valid JSON", "INVALID_JSON"}},
	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge, errorReply{"Request body exceeds 10 MiB", "PAYLOAD_TOO_LARGE"}},
}

func statusFromError(err error) int {
	for _, e := range errorTable {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

func replyFromError(err error) (errorReply, bool) {
	for _, e := range errorTable {
		if errors.Is(err, e.target) {
			return e.reply, e.reply.code != ""
		}
	}
	return errorReply{}, false
}

// writeError renders err as the JSON error envelope. Validation errors carry
// their own message, code and extra fields; unknown errors become a generic
// 500 whose raw detail is included outside production only.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	resp := models.ErrorResponse{Error: http.StatusText(status)}
	var extras map[string]any

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		resp.Message = verr.Message
		resp.Code = verr.Code
		extras = verr.Extras
	} else if reply, ok := replyFromError(err); ok {
		resp.Message = reply.message
		resp.Code = reply.code
	} else {
		resp.Message = genericErrorMessage
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "*Handler.writeError").Int("status", status).Msg("request failed")
		if !h.production {
			resp.Details = err.Error()
		}
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if len(extras) == 0 {
		utils.WriteJSON(w, resp, status)
		return
	}

	body := map[string]any{
		"error":   resp.Error,
		"message": resp.Message,
	}
	if resp.Code != "" {
		body["code"] = resp.Code
	}
	for k, v := range extras {
		body[k] = v
	}
	utils.WriteJSON(w, body, status)
}
