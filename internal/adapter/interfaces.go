// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the managed backend (Supabase):
// GoTrue for authentication and PostgREST for table access.
//
// [Client] holds two credential tiers. The public tier (anon key) is used
// for end-user auth flows; the elevated tier (service-role key) is used for
// table reads and writes that bypass row-level security.
//
// Provider failures are mapped to the sentinel errors in errors.go by
// mapHTTPError so that callers can use [errors.Is] regardless of which
// provider API produced the failure.
package adapter

import (
	"context"

	"github.com/MKhiriev/dive-log/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthProvider is the end-user authentication surface of the provider.
type AuthProvider interface {
	// SignUp creates an auth identity. The returned session may carry empty
	// tokens when the provider requires e-mail confirmation.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResult, error)

	// SignIn exchanges an e-mail and password for a session.
	SignIn(ctx context.Context, email, password string) (models.AuthResult, error)

	// SignOut revokes the session behind accessToken.
	SignOut(ctx context.Context, accessToken string) error

	// GetUser resolves accessToken to its auth identity.
	GetUser(ctx context.Context, accessToken string) (models.AuthUser, error)
}

// TokenVerifier resolves a bearer token to the acting user.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, accessToken string) (models.Principal, error)
}

// HealthChecker reports provider reachability.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Info(ctx context.Context) (models.ProviderInfo, error)
}
