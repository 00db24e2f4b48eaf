// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/dive-log/internal/adapter"
	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/internal/store"
	"github.com/MKhiriev/dive-log/internal/validators"
	"github.com/MKhiriev/dive-log/models"
)

// authService is the concrete implementation of AuthService.
// Identity and sessions belong to the provider; the profile row in the
// users table is created alongside the identity at registration.
type authService struct {
	// provider issues and verifies sessions.
	provider Provider

	// users is the profile store.
	users store.UserRepository

	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the provider and
// the users repository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(provider Provider, users store.UserRepository, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		provider:  provider,
		users:     users,
		validator: validator,
		logger:    logger,
	}
}

// Register creates the provider identity and the profile row.
//
// The e-mail is checked against the users table first so that a taken
// address never reaches the provider. A provider "already registered"
// answer and a duplicate profile insert both yield ErrEmailAlreadyExists.
//
// The returned session may be empty when the provider requires e-mail
// confirmation.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, requestValidationError(err)
	}

	_, err := a.users.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return models.AuthResponse{}, ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*authService.Register").Msg("error checking email")
		return models.AuthResponse{}, fmt.Errorf("error checking email: %w", err)
	}

	experience := strings.TrimSpace(req.DivingExperience)
	if experience == "" {
		experience = models.DefaultDivingExperience
	}
	metadata := map[string]any{
		"name":              req.Name,
		"diving_experience": experience,
	}
	var location *string
	if loc := strings.TrimSpace(req.Location); loc != "" {
		location = &loc
		metadata["location"] = loc
	}

	result, err := a.provider.SignUp(ctx, models.SignUpRequest{
		Email:    req.Email,
		Password: req.Password,
		Metadata: metadata,
	})
	if err != nil {
		if errors.Is(err, adapter.ErrUserAlreadyRegistered) || errors.Is(err, adapter.ErrConflict) {
			return models.AuthResponse{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*authService.Register").Msg("provider sign up failed")
		return models.AuthResponse{}, fmt.Errorf("provider sign up failed: %w", err)
	}

	profile, err := a.users.CreateUser(ctx, models.User{
		ID:               result.User.ID,
		Email:            req.Email,
		Name:             req.Name,
		DivingExperience: experience,
		Location:         location,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.AuthResponse{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*authService.Register").Str("user_id", result.User.ID).Msg("profile creation failed")
		return models.AuthResponse{}, fmt.Errorf("profile creation failed: %w", err)
	}

	log.Info().Str("user_id", profile.ID).Msg("user registered")
	return models.AuthResponse{
		Message: "User registered successfully",
		User:    profile,
		Auth:    result.Session,
	}, nil
}

// Login signs in with the provider and loads the profile. A missing
// profile row falls back to the identity's e-mail and sign-up metadata.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, requestValidationError(err)
	}

	result, err := a.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, adapter.ErrInvalidCredentials) ||
			errors.Is(err, adapter.ErrUnauthorized) ||
			errors.Is(err, adapter.ErrBadRequest) {
			return models.AuthResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("provider sign in failed")
		return models.AuthResponse{}, fmt.Errorf("provider sign in failed: %w", err)
	}

	profile, err := a.users.FindUserByID(ctx, result.User.ID)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		profile = profileFromIdentity(result.User)
	case err != nil:
		log.Err(err).Str("func", "*authService.Login").Msg("profile lookup failed")
		return models.AuthResponse{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return models.AuthResponse{
		Message: "Login successful",
		User:    profile,
		Auth:    result.Session,
	}, nil
}

// Logout revokes the session at the provider when a token is present.
func (a *authService) Logout(ctx context.Context, accessToken string) {
	if err := a.provider.SignOut(ctx, accessToken); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*authService.Logout").Msg("provider sign out failed")
	}
}

// Authenticate resolves accessToken to the acting user.
//
// Returns ErrMissingToken for an empty token and ErrInvalidToken when the
// token is rejected. Provider outages are returned wrapped.
func (a *authService) Authenticate(ctx context.Context, accessToken string) (models.Principal, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return models.Principal{}, ErrMissingToken
	}

	principal, err := a.provider.VerifyToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, adapter.ErrProviderUnavailable) {
			return models.Principal{}, fmt.Errorf("token verification failed: %w", err)
		}
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.Authenticate").Msg("token rejected")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return principal, nil
}

// Profile loads the profile row of principal.
func (a *authService) Profile(ctx context.Context, principal models.Principal) (models.User, error) {
	profile, err := a.users.FindUserByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrProfileNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Profile").Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	return profile, nil
}

func profileFromIdentity(u models.AuthUser) models.User {
	profile := models.User{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.MetadataString("name"),
		DivingExperience: u.MetadataString("diving_experience"),
	}
	if profile.DivingExperience == "" {
		profile.DivingExperience = models.DefaultDivingExperience
	}
	if loc := u.MetadataString("location"); loc != "" {
		profile.Location = &loc
	}
	return profile
}
