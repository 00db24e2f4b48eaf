// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/dive-log/internal/cache"
	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/internal/store"
	"github.com/MKhiriev/dive-log/internal/validators"
	"github.com/MKhiriev/dive-log/models"
)

const (
	searchLimit       = 20
	minSearchQueryLen = 2
)

type userService struct {
	users store.UserRepository
	dives store.DiveRepository
	cache Cache

	// now stamps updated_at on profile edits.
	now func() time.Time

	logger *logger.Logger
}

// NewUserService constructs a UserService over the users and dives
// repositories. c may be nil.
func NewUserService(users store.UserRepository, dives store.DiveRepository, c Cache, logger *logger.Logger) UserService {
	return &userService{
		users:  users,
		dives:  dives,
		cache:  cacheOrNop(c),
		now:    time.Now,
		logger: logger,
	}
}

func (s *userService) ListUsers(ctx context.Context, params ListUsersParams) (models.UserListResponse, error) {
	page := NewPageRequest(params.Page, params.Limit)
	sort := UserSortFromQuery(params.Sort)

	users, total, err := s.users.ListUsers(ctx, models.UserListQuery{
		Offset: page.Start(),
		Limit:  page.Limit,
		Sort:   sort,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("error listing users")
		return models.UserListResponse{}, fmt.Errorf("error listing users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}

	return models.UserListResponse{
		Data:       users,
		Pagination: NewPagination(page, total),
		Sort:       sort.Key,
	}, nil
}

// SearchUsers matches q against name, bio and location, most active
// divers first. q must be at least two characters after trimming.
func (s *userService) SearchUsers(ctx context.Context, params SearchUsersParams) (models.UserSearchResponse, error) {
	q := strings.TrimSpace(params.Query)
	if utf8.RuneCountInString(q) < minSearchQueryLen {
		return models.UserSearchResponse{}, newValidationError(CodeQueryTooShort, "Search query must be at least 2 characters", nil)
	}

	users, err := s.users.SearchUsers(ctx, models.UserSearchQuery{
		Term:       q,
		Location:   strings.TrimSpace(params.Location),
		Experience: strings.TrimSpace(params.Experience),
		Limit:      searchLimit,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.SearchUsers").Msg("error searching users")
		return models.UserSearchResponse{}, fmt.Errorf("error searching users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}

	return models.UserSearchResponse{
		Results:    users,
		TotalFound: len(users),
		Query:      q,
	}, nil
}

// GetUser returns a profile with its per-type dive statistics.
func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	if !validators.IsUUID(id) {
		return models.User{}, invalidIDError("user ID")
	}

	key := cache.UserKey(id)
	var user models.User
	if hit, err := s.cache.GetJSON(ctx, key, &user); err != nil {
		log.Warn().Err(err).Str("func", "*userService.GetUser").Msg("cache read failed")
	} else if hit {
		return user, nil
	}

	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userService.GetUser").Str("user_id", id).Msg("error fetching user")
		return models.User{}, fmt.Errorf("error fetching user: %w", err)
	}

	counts, err := s.dives.CountDivesByType(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*userService.GetUser").Str("user_id", id).Msg("error counting dives")
		return models.User{}, fmt.Errorf("error counting dives: %w", err)
	}
	user.DiveStats = diveStats(counts)

	if err = s.cache.SetJSON(ctx, key, user, 0); err != nil {
		log.Warn().Err(err).Str("func", "*userService.GetUser").Msg("cache write failed")
	}
	return user, nil
}

// UpdateUser applies the allow-listed keys of body to the profile id.
// Unknown keys are dropped silently.
func (s *userService) UpdateUser(ctx context.Context, id string, body map[string]json.RawMessage) (models.UserUpdateResponse, error) {
	log := logger.FromContext(ctx)

	if !validators.IsUUID(id) {
		return models.UserUpdateResponse{}, invalidIDError("user ID")
	}

	fields, updated, err := FilterUserUpdate(body, s.now())
	if err != nil {
		return models.UserUpdateResponse{}, err
	}
	if err = validators.ValidateUserUpdate(body); err != nil {
		return models.UserUpdateResponse{}, newValidationError(CodeValidation, err.Error(), err)
	}

	user, err := s.users.UpdateUser(ctx, id, fields)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			return models.UserUpdateResponse{}, ErrUserNotFound
		case errors.Is(err, store.ErrInvalidInput):
			return models.UserUpdateResponse{}, newValidationError(CodeValidation, "Invalid profile data", err)
		}
		log.Err(err).Str("func", "*userService.UpdateUser").Str("user_id", id).Msg("error updating user")
		return models.UserUpdateResponse{}, fmt.Errorf("error updating user: %w", err)
	}

	if err = s.cache.Delete(ctx, cache.UserKey(id)); err != nil {
		log.Warn().Err(err).Str("func", "*userService.UpdateUser").Msg("cache invalidation failed")
	}
	if err = s.cache.DeleteByPattern(ctx, cache.DivesPattern); err != nil {
		log.Warn().Err(err).Str("func", "*userService.UpdateUser").Msg("cache invalidation failed")
	}

	return models.UserUpdateResponse{
		Message:       "Profile updated successfully",
		User:          user,
		UpdatedFields: updated,
	}, nil
}

func diveStats(counts map[models.DiveType]int) *models.DiveStats {
	stats := &models.DiveStats{
		Freediving: counts[models.Freediving],
		Scuba:      counts[models.Scuba],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats
}
