// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/dive-log/internal/adapter"
	"github.com/MKhiriev/dive-log/internal/service"
	"github.com/MKhiriev/dive-log/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithAuth(auth service.AuthService) *Handler {
	return newTestHandler(&service.Services{AuthService: auth})
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
			assert.Equal(t, "a@b.co", req.Email)
			assert.Equal(t, "Jacques", req.Name)
			return models.AuthResponse{
				Message: "User registered successfully",
				User:    models.User{ID: testUserID, Email: req.Email, Name: req.Name},
				Auth:    models.Session{AccessToken: "access", RefreshToken: "refresh", ExpiresAt: 42},
			}, nil
		},
	}

	rec := serve(t, newHandlerWithAuth(auth), http.MethodPost, "/api/auth/register",
		`{"email":"a@b.co","password":"secret1","name":"Jacques"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.Equal(t, testUserID, body["user"].(map[string]any)["id"])
	assert.Equal(t, "access", body["auth"].(map[string]any)["access_token"])
	assert.Equal(t, float64(42), body["auth"].(map[string]any)["expires_at"])
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "invalid JSON",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_JSON",
		},
		{
			name:       "validation",
			body:       `{}`,
			err:        &service.ValidationError{Message: "email is required", Code: service.CodeValidation},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
			wantMsg:    "email is required",
		},
		{
			name:       "duplicate email",
			body:       `{}`,
			err:        service.ErrEmailAlreadyExists,
			wantStatus: http.StatusConflict,
			wantCode:   "EMAIL_ALREADY_EXISTS",
			wantMsg:    "User with this email already exists",
		},
		{
			name:       "provider failure",
			body:       `{}`,
			err:        fmt.Errorf("provider sign up failed: %w", adapter.ErrProviderUnavailable),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerFn: func(context.Context, models.RegisterRequest) (models.AuthResponse, error) {
					return models.AuthResponse{}, tt.err
				},
			}

			rec := serve(t, newHandlerWithAuth(auth), http.MethodPost, "/api/auth/register", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, http.StatusText(tt.wantStatus), body["error"])
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["code"])
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body["message"])
			}
		})
	}
}

func TestRegister_ServerErrorDetailsOutsideProductionOnly(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(context.Context, models.RegisterRequest) (models.AuthResponse, error) {
			return models.AuthResponse{}, errors.New("relation \"users\" does not exist")
		},
	}

	dev := newHandlerWithAuth(auth)
	rec := serve(t, dev, http.MethodPost, "/api/auth/register", `{}`, nil)
	assert.Equal(t, `relation "users" does not exist`, decodeBody(t, rec)["details"])

	prod := newHandlerWithAuth(auth)
	prod.production = true
	rec = serve(t, prod, http.MethodPost, "/api/auth/register", `{}`, nil)
	assert.NotContains(t, decodeBody(t, rec), "details")
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.AuthResponse, error) {
			assert.Equal(t, "secret1", req.Password)
			return models.AuthResponse{Message: "Login successful", User: models.User{ID: testUserID}}, nil
		},
	}

	rec := serve(t, newHandlerWithAuth(auth), http.MethodPost, "/api/auth/login",
		`{"email":"a@b.co","password":"secret1"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Login successful", decodeBody(t, rec)["message"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.AuthResponse, error) {
			return models.AuthResponse{}, service.ErrInvalidCredentials
		},
	}

	rec := serve(t, newHandlerWithAuth(auth), http.MethodPost, "/api/auth/login",
		`{"email":"a@b.co","password":"nope"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeBody(t, rec)["code"])
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout(t *testing.T) {
	tests := []struct {
		name      string
		headers   map[string]string
		wantToken string
		wantCall  bool
	}{
		{name: "with token", headers: bearer("tok"), wantToken: "tok", wantCall: true},
		{name: "without token", headers: nil, wantCall: false},
		{name: "malformed header", headers: map[string]string{"Authorization": "tok"}, wantCall: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			auth := &mockAuthService{
				logoutFn: func(_ context.Context, token string) {
					called = true
					assert.Equal(t, tt.wantToken, token)
				},
			}

			rec := serve(t, newHandlerWithAuth(auth), http.MethodPost, "/api/auth/logout", "", tt.headers)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "Logout successful", decodeBody(t, rec)["message"])
			assert.Equal(t, tt.wantCall, called)
		})
	}
}

// ─────────────────────────────────────────────
// profile
// ─────────────────────────────────────────────

func TestProfile_Success(t *testing.T) {
	auth := acceptAll()
	auth.profileFn = func(_ context.Context, p models.Principal) (models.User, error) {
		assert.Equal(t, testUserID, p.UserID)
		assert.Equal(t, "tok", p.Token)
		return models.User{ID: p.UserID, Name: "Jacques"}, nil
	}

	rec := serve(t, newHandlerWithAuth(auth), http.MethodGet, "/api/auth/profile", "", bearer("tok"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Jacques", decodeBody(t, rec)["user"].(map[string]any)["name"])
}

func TestProfile_Errors(t *testing.T) {
	notFound := acceptAll()
	notFound.profileFn = func(context.Context, models.Principal) (models.User, error) {
		return models.User{}, service.ErrProfileNotFound
	}

	rec := serve(t, newHandlerWithAuth(notFound), http.MethodGet, "/api/auth/profile", "", bearer("tok"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROFILE_NOT_FOUND", decodeBody(t, rec)["code"])

	rec = serve(t, newHandlerWithAuth(notFound), http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", decodeBody(t, rec)["code"])
}
