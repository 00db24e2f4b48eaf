// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/dive-log/internal/config"
	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/internal/service"
	"github.com/MKhiriev/dive-log/models"
	"github.com/stretchr/testify/require"
)

const (
	testUserID = "6f1c2b9e-4a7d-4c1e-9b3a-2d5e8f7a1c40"
	testDiveID = "0b8e5d2a-7c3f-4e91-a6b4-1f2d3c4e5a60"
)

// ─────────────────────────────────────────────
// Service mocks. Each method field can be overridden per test case.
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn     func(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	logoutFn       func(ctx context.Context, token string)
	authenticateFn func(ctx context.Context, token string) (models.Principal, error)
	profileFn      func(ctx context.Context, p models.Principal) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) {
	if m.logoutFn != nil {
		m.logoutFn(ctx, token)
	}
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (models.Principal, error) {
	return m.authenticateFn(ctx, token)
}

func (m *mockAuthService) Profile(ctx context.Context, p models.Principal) (models.User, error) {
	return m.profileFn(ctx, p)
}

type mockUserService struct {
	listFn   func(ctx context.Context, p service.ListUsersParams) (models.UserListResponse, error)
	searchFn func(ctx context.Context, p service.SearchUsersParams) (models.UserSearchResponse, error)
	getFn    func(ctx context.Context, id string) (models.User, error)
	updateFn func(ctx context.Context, id string, body map[string]json.RawMessage) (models.UserUpdateResponse, error)
}

func (m *mockUserService) ListUsers(ctx context.Context, p service.ListUsersParams) (models.UserListResponse, error) {
	return m.listFn(ctx, p)
}

func (m *mockUserService) SearchUsers(ctx context.Context, p service.SearchUsersParams) (models.UserSearchResponse, error) {
	return m.searchFn(ctx, p)
}

func (m *mockUserService) GetUser(ctx context.Context, id string) (models.User, error) {
	return m.getFn(ctx, id)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id string, body map[string]json.RawMessage) (models.UserUpdateResponse, error) {
	return m.updateFn(ctx, id, body)
}

type mockDiveService struct {
	createFn func(ctx context.Context, userID string, req models.CreateDiveRequest) (models.DiveCreateResponse, error)
	listFn   func(ctx context.Context, p service.ListDivesParams) (models.DiveListResponse, error)
	getFn    func(ctx context.Context, id string) (models.Dive, error)
}

func (m *mockDiveService) CreateDive(ctx context.Context, userID string, req models.CreateDiveRequest) (models.DiveCreateResponse, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockDiveService) ListDives(ctx context.Context, p service.ListDivesParams) (models.DiveListResponse, error) {
	return m.listFn(ctx, p)
}

func (m *mockDiveService) GetDive(ctx context.Context, id string) (models.Dive, error) {
	return m.getFn(ctx, id)
}

type mockHealthService struct {
	readinessFn func(ctx context.Context) (models.ReadinessStatus, error)
}

func (m *mockHealthService) Health(context.Context) models.HealthStatus {
	return models.HealthStatus{Status: "OK", Uptime: 1.5, Timestamp: "2026-01-01T00:00:00Z"}
}

func (m *mockHealthService) Readiness(ctx context.Context) (models.ReadinessStatus, error) {
	if m.readinessFn == nil {
		return models.ReadinessStatus{Status: "ready"}, nil
	}
	return m.readinessFn(ctx)
}

type mockAppInfoService struct {
	info models.AppInfo
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string { return m.info.Version }

func (m *mockAppInfoService) GetAppInfo(context.Context) models.AppInfo { return m.info }

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over svcs with a development config. A
// nil svcs gets empty services.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs == nil {
		svcs = &service.Services{}
	}
	cfg := &config.StructuredConfig{App: config.App{Environment: "development"}}
	return NewHandler(svcs, cfg, logger.Nop())
}

// acceptAll authenticates every token as testUserID.
func acceptAll() *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(_ context.Context, token string) (models.Principal, error) {
			return models.Principal{UserID: testUserID, Token: token}, nil
		},
	}
}

// serve sends one request through the full router.
func serve(t *testing.T, h *Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a JSON response into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
