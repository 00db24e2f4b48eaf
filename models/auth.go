// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthUser is the identity record returned by the auth provider.
type AuthUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

// MetadataString returns a string entry from UserMetadata, or "" when the
// key is absent or not a string.
func (u AuthUser) MetadataString(key string) string {
	if u.UserMetadata == nil {
		return ""
	}
	s, _ := u.UserMetadata[key].(string)
	return s
}

// Session is the token bundle issued by the auth provider. Tokens may be
// empty when the provider requires e-mail confirmation before sign-in.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// AuthResult combines the identity and session of a sign-up or sign-in.
type AuthResult struct {
	User    AuthUser
	Session Session
}

// SignUpRequest is forwarded to the provider's sign-up endpoint.
type SignUpRequest struct {
	Email    string
	Password string
	Metadata map[string]any
}

// Principal is the acting user resolved from a bearer token.
type Principal struct {
	UserID string
	Email  string
	Token  string
}
