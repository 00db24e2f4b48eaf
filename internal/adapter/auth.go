// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/dive-log/models"
)

// sessionResponse is the GoTrue token/sign-up payload. Sign-up without
// auto-confirm returns the bare user object instead, which lands in the
// embedded AuthUser fields.
type sessionResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	ExpiresAt    int64            `json:"expires_at"`
	ExpiresIn    int64            `json:"expires_in"`
	User         *models.AuthUser `json:"user"`

	models.AuthUser
}

func (s sessionResponse) result() (models.AuthResult, error) {
	user := s.AuthUser
	if s.User != nil {
		user = *s.User
	}
	if user.ID == "" {
		return models.AuthResult{}, fmt.Errorf("%w: provider returned no user", ErrBadRequest)
	}

	return models.AuthResult{
		User: user,
		Session: models.Session{
			AccessToken:  s.AccessToken,
			RefreshToken: s.RefreshToken,
			ExpiresAt:    s.ExpiresAt,
		},
	}, nil
}

type credentials struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

// SignUp implements [AuthProvider]. It POSTs to /auth/v1/signup with the
// public key; metadata is stored as the identity's user_metadata.
func (c *Client) SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResult, error) {
	var out sessionResponse
	resp, err := c.public.R().
		SetContext(ctx).
		SetAuthToken(c.anonKey).
		SetHeader(headerContentType, mimeJSON).
		SetBody(credentials{Email: req.Email, Password: req.Password, Data: req.Metadata}).
		Post(authPath + "/signup")
	if err != nil {
		return models.AuthResult{}, transportError("sign up", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.AuthResult{}, fmt.Errorf("decode sign up response: %w", err)
	}

	return out.result()
}

// SignIn implements [AuthProvider] using the password grant.
func (c *Client) SignIn(ctx context.Context, email, password string) (models.AuthResult, error) {
	var out sessionResponse
	resp, err := c.public.R().
		SetContext(ctx).
		SetAuthToken(c.anonKey).
		SetHeader(headerContentType, mimeJSON).
		SetQueryParam("grant_type", "password").
		SetBody(credentials{Email: email, Password: password}).
		Post(authPath + "/token")
	if err != nil {
		return models.AuthResult{}, transportError("sign in", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.AuthResult{}, fmt.Errorf("decode sign in response: %w", err)
	}

	return out.result()
}

// SignOut implements [AuthProvider]. An empty token is a no-op.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil
	}

	resp, err := c.public.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Post(authPath + "/logout")
	if err != nil {
		return transportError("sign out", err)
	}

	return mapHTTPError(resp)
}

// GetUser implements [AuthProvider].
func (c *Client) GetUser(ctx context.Context, accessToken string) (models.AuthUser, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return models.AuthUser{}, ErrEmptyToken
	}

	var user models.AuthUser
	resp, err := c.public.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Get(authPath + "/user")
	if err != nil {
		return models.AuthUser{}, transportError("get user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthUser{}, err
	}
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.AuthUser{}, fmt.Errorf("decode user response: %w", err)
	}
	if user.ID == "" {
		return models.AuthUser{}, fmt.Errorf("%w: provider returned no user", ErrUnauthorized)
	}

	return user, nil
}
