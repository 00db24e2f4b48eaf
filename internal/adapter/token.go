// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/dive-log/models"
	"github.com/golang-jwt/jwt/v5"
)

// VerifyToken implements [TokenVerifier]. With a JWT secret configured the
// token is checked locally (HS256 signature, expiry, subject); otherwise
// the provider's user endpoint decides.
func (c *Client) VerifyToken(ctx context.Context, accessToken string) (models.Principal, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return models.Principal{}, ErrEmptyToken
	}

	if len(c.jwtSecret) > 0 {
		return c.verifyLocally(accessToken)
	}

	user, err := c.GetUser(ctx, accessToken)
	if err != nil {
		return models.Principal{}, err
	}

	return models.Principal{UserID: user.ID, Email: user.Email, Token: accessToken}, nil
}

func (c *Client) verifyLocally(accessToken string) (models.Principal, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(accessToken, claims,
		func(*jwt.Token) (any, error) { return c.jwtSecret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return models.Principal{}, fmt.Errorf("%w: token has no subject", ErrUnauthorized)
	}
	email, _ := claims["email"].(string)

	return models.Principal{UserID: sub, Email: email, Token: accessToken}, nil
}
