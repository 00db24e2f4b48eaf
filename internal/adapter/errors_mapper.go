// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// PostgREST and Postgres error codes the adapter recognises.
const (
	codeNoRows              = "PGRST116"
	codeRangeNotSatisfiable = "PGRST103"
	codeUniqueViolation     = "23505"
)

// GoTrue error codes the adapter recognises.
const (
	gotrueUserExists         = "user_already_exists"
	gotrueEmailExists        = "email_exists"
	gotrueInvalidCredentials = "invalid_credentials"
	gotrueInvalidGrant       = "invalid_grant"
	gotrueAlreadyRegistered  = "already registered"
)

// providerError covers both error shapes: PostgREST sends a string "code"
// and "message"; GoTrue sends a numeric "code" with "error_code" and "msg",
// or the OAuth pair "error" and "error_description".
type providerError struct {
	Code             json.RawMessage `json:"code"`
	ErrorCode        string          `json:"error_code"`
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
	Msg              string          `json:"msg"`
	Message          string          `json:"message"`
}

func (e providerError) code() string {
	var s string
	if err := json.Unmarshal(e.Code, &s); err == nil {
		return s
	}
	return ""
}

func (e providerError) text() string {
	for _, s := range []string{e.Message, e.Msg, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	var pe providerError
	_ = json.Unmarshal(resp.Body(), &pe)

	msg := pe.text()
	if msg == "" {
		msg = body
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	code := pe.code()
	switch {
	case code == codeNoRows || status == http.StatusNotAcceptable:
		return fmt.Errorf("%w: %s", ErrNoRows, msg)
	case code == codeRangeNotSatisfiable || status == http.StatusRequestedRangeNotSatisfiable:
		return fmt.Errorf("%w: %s", ErrRangeNotSatisfiable, msg)
	case code == codeUniqueViolation || status == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case pe.ErrorCode == gotrueUserExists || pe.ErrorCode == gotrueEmailExists ||
		strings.Contains(strings.ToLower(msg), gotrueAlreadyRegistered):
		return fmt.Errorf("%w: %s", ErrUserAlreadyRegistered, msg)
	case pe.ErrorCode == gotrueInvalidCredentials || pe.Error == gotrueInvalidGrant:
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, msg)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrProviderUnavailable, status, msg)
	default:
		return fmt.Errorf("http %d: %s", status, msg)
	}
}

// transportError wraps a failed round-trip.
func transportError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrProviderUnavailable, err)
}
