// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestVerifyToken_Local(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1", testJWTSecret)
	now := time.Now()

	tests := []struct {
		name    string
		token   string
		wantID  string
		wantErr error
	}{
		{
			name: "valid",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), jwt.MapClaims{
				"sub": testUserID, "email": "diver@example.com", "exp": now.Add(time.Hour).Unix(),
			}),
			wantID: testUserID,
		},
		{
			name: "expired",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), jwt.MapClaims{
				"sub": testUserID, "exp": now.Add(-time.Hour).Unix(),
			}),
			wantErr: ErrUnauthorized,
		},
		{
			name: "missing exp",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), jwt.MapClaims{
				"sub": testUserID,
			}),
			wantErr: ErrUnauthorized,
		},
		{
			name: "wrong secret",
			token: signToken(t, jwt.SigningMethodHS256, []byte("other-secret"), jwt.MapClaims{
				"sub": testUserID, "exp": now.Add(time.Hour).Unix(),
			}),
			wantErr: ErrUnauthorized,
		},
		{
			name: "wrong algorithm",
			token: signToken(t, jwt.SigningMethodHS512, []byte(testJWTSecret), jwt.MapClaims{
				"sub": testUserID, "exp": now.Add(time.Hour).Unix(),
			}),
			wantErr: ErrUnauthorized,
		},
		{
			name: "no subject",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), jwt.MapClaims{
				"exp": now.Add(time.Hour).Unix(),
			}),
			wantErr: ErrUnauthorized,
		},
		{name: "garbage", token: "not.a.jwt", wantErr: ErrUnauthorized},
		{name: "empty", token: " ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := c.VerifyToken(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, p.UserID)
			assert.Equal(t, "diver@example.com", p.Email)
			assert.Equal(t, tt.token, p.Token)
		})
	}
}

func TestVerifyToken_ViaProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"` + testUserID + `","email":"diver@example.com"}`))
	}))
	defer srv.Close()

	p, err := newTestClient(t, srv.URL, "").VerifyToken(context.Background(), "opaque")

	require.NoError(t, err)
	assert.Equal(t, testUserID, p.UserID)
	assert.Equal(t, "opaque", p.Token)
}
