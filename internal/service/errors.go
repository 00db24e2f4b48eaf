// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrMissingToken = errors.New("access token is required")
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("user profile not found")
	ErrDiveNotFound    = errors.New("dive not found")

	ErrProviderNotReady = errors.New("provider is not ready")

	ErrValidation = errors.New("validation failed")
)

// Client-facing codes carried by ValidationError.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidID       = "INVALID_ID"
	CodeInvalidDiveType = "INVALID_DIVE_TYPE"
	CodeNoValidFields   = "NO_VALID_FIELDS"
	CodeQueryTooShort   = "QUERY_TOO_SHORT"
)

// ValidationError is a locally detected input problem. Extras are merged
// into the error response body (allowed_fields, allowed_types).
type ValidationError struct {
	Message string
	Code    string
	Extras  map[string]any

	// Err is the underlying validator error, if any.
	Err error
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, so errors.Is(err, ErrValidation)
// holds for every ValidationError.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Err}
}

func newValidationError(code, message string, cause error) *ValidationError {
	return &ValidationError{Message: message, Code: code, Err: cause}
}

func invalidIDError(name string) *ValidationError {
	return newValidationError(CodeInvalidID, "Invalid "+name+" format", nil)
}

func invalidDiveTypeError(cause error) *ValidationError {
	return &ValidationError{
		Message: "Invalid dive type",
		Code:    CodeInvalidDiveType,
		Extras:  map[string]any{"allowed_types": allowedDiveTypes()},
		Err:     cause,
	}
}
