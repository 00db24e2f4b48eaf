// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors returned by [Client]. Provider responses are classified by
// mapHTTPError; callers match them with [errors.Is].
var (
	// ErrNoRows is returned when a single-object request matched no rows
	// (PostgREST PGRST116 / HTTP 406).
	ErrNoRows = errors.New("no rows returned")
	// ErrRangeNotSatisfiable is returned when a paged read starts past the
	// last matching row (PostgREST PGRST103 / HTTP 416).
	ErrRangeNotSatisfiable = errors.New("requested range not satisfiable")
	// ErrConflict is returned for unique-constraint violations
	// (HTTP 409 / Postgres 23505).
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized is returned when the provider rejects a token, or when
	// a token fails local verification.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrBadRequest is returned when the provider rejects the payload.
	ErrBadRequest = errors.New("bad request")
	// ErrUserAlreadyRegistered is returned by SignUp for a taken e-mail.
	ErrUserAlreadyRegistered = errors.New("user already registered")
	// ErrInvalidCredentials is returned by SignIn for a wrong e-mail or
	// password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrProviderUnavailable is returned for transport failures and 5xx
	// responses.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrEmptyToken is returned when an empty access token is passed.
	ErrEmptyToken = errors.New("empty access token")
)
