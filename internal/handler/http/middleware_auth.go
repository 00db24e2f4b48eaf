// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/dive-log/internal/service"
	"github.com/MKhiriev/dive-log/internal/utils"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, resolves it via
// [service.AuthService.Authenticate] and, on success, stores the acting
// user's ID under [utils.UserIDCtxKey] and the raw token under
// [utils.AccessTokenCtxKey] before delegating to the next handler.
//
// A missing header is reported as MISSING_TOKEN and a malformed header or
// rejected token as INVALID_TOKEN, both with HTTP 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrMissingToken, ErrEmptyAuthorizationHeader))
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidToken, err))
			return
		}

		ctx := r.Context()
		principal, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, principal.UserID)
		ctx = context.WithValue(ctx, utils.AccessTokenCtxKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth stores a well-formed bearer token in the context without
// verifying it. Requests without one pass through unchanged.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err == nil {
			r = r.WithContext(context.WithValue(r.Context(), utils.AccessTokenCtxKey, tokenString))
		}
		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively. It returns
// [ErrEmptyAuthorizationHeader] for an empty header,
// [ErrInvalidAuthorizationHeader] when the scheme is missing or is not
// "Bearer", and [ErrEmptyToken] when the token part is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
