// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/dive-log/internal/adapter"
	"github.com/MKhiriev/dive-log/internal/service"
	"github.com/MKhiriev/dive-log/internal/utils"
	"github.com/MKhiriev/dive-log/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "no scheme", header: "abc", wantErr: ErrInvalidAuthorizationHeader},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "scheme only", header: "Bearer ", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		authenticate func(context.Context, string) (models.Principal, error)
		wantStatus   int
		wantCode     string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "MISSING_TOKEN",
		},
		{
			name:       "malformed header",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			authenticate: func(context.Context, string) (models.Principal, error) {
				return models.Principal{}, fmt.Errorf("%w: token expired", service.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "provider unavailable",
			header: "Bearer tok",
			authenticate: func(context.Context, string) (models.Principal, error) {
				return models.Principal{}, fmt.Errorf("verify token: %w", adapter.ErrProviderUnavailable)
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "accepted",
			header: "Bearer tok",
			authenticate: func(_ context.Context, token string) (models.Principal, error) {
				return models.Principal{UserID: testUserID, Token: token}, nil
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{AuthService: &mockAuthService{authenticateFn: tt.authenticate}})

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, ok := utils.GetUserIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, testUserID, userID)
				token, ok := utils.GetAccessTokenFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, "tok", token)
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeBody(t, rec)["code"])
			}
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	h := newTestHandler(nil)

	var (
		token string
		found bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, found = utils.GetAccessTokenFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")
	h.optionalAuth(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, found)
	assert.Equal(t, "tok", token)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	h.optionalAuth(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.False(t, found)
}
