// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the dive-log API: request
// validation, the profile field allow-list, pagination and sort mapping,
// dive numbering and counter maintenance, and the composition of provider
// auth calls with profile reads and writes.
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/dive-log/internal/adapter"
	"github.com/MKhiriev/dive-log/models"
)

// AuthService covers registration, login, logout and token resolution.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Logout is best-effort: provider failures are logged, never returned.
	Logout(ctx context.Context, accessToken string)

	// Authenticate resolves a bearer token to the acting user.
	Authenticate(ctx context.Context, accessToken string) (models.Principal, error)

	// Profile loads the profile of an authenticated user.
	Profile(ctx context.Context, principal models.Principal) (models.User, error)
}

// UserService covers the public users endpoints.
type UserService interface {
	ListUsers(ctx context.Context, params ListUsersParams) (models.UserListResponse, error)
	SearchUsers(ctx context.Context, params SearchUsersParams) (models.UserSearchResponse, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	UpdateUser(ctx context.Context, id string, body map[string]json.RawMessage) (models.UserUpdateResponse, error)
}

// DiveService covers dive logging and browsing.
type DiveService interface {
	CreateDive(ctx context.Context, userID string, req models.CreateDiveRequest) (models.DiveCreateResponse, error)
	ListDives(ctx context.Context, params ListDivesParams) (models.DiveListResponse, error)
	GetDive(ctx context.Context, id string) (models.Dive, error)
}

// HealthService reports liveness and readiness.
type HealthService interface {
	Health(ctx context.Context) models.HealthStatus
	Readiness(ctx context.Context) (models.ReadinessStatus, error)
}

// AppInfoService reports application identity and build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// Provider is the subset of the provider client the services use.
type Provider interface {
	adapter.AuthProvider
	adapter.TokenVerifier
	adapter.HealthChecker
}

// Cache is the optional read-cache used for detail lookups.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// ListUsersParams are the raw query parameters of the users list.
type ListUsersParams struct {
	Page  string
	Limit string
	Sort  string
}

// SearchUsersParams are the raw query parameters of the users search.
type SearchUsersParams struct {
	Query      string
	Location   string
	Experience string
}

// ListDivesParams are the raw query parameters of the dives list.
type ListDivesParams struct {
	Page     string
	Limit    string
	UserID   string
	Type     string
	Location string
}

type nopCache struct{}

func (nopCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (nopCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (nopCache) Delete(context.Context, ...string) error { return nil }
func (nopCache) DeleteByPattern(context.Context, string) error { return nil }

func cacheOrNop(c Cache) Cache {
	if c == nil {
		return nopCache{}
	}
	return c
}
