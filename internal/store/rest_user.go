// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/dive-log/internal/adapter"
	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/models"
)

const usersTable = "users"

// restUserRepository implements [UserRepository] over the provider's
// PostgREST API.
type restUserRepository struct {
	client *adapter.Client
	logger *logger.Logger
}

// newUserRow is the insert body for a fresh profile. Columns with database
// defaults are left out.
type newUserRow struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	Name             string  `json:"name"`
	DivingExperience string  `json:"diving_experience"`
	Location         *string `json:"location,omitempty"`
	TotalDives       int     `json:"total_dives"`
}

// NewRESTUserRepository constructs a [UserRepository] on top of client.
func NewRESTUserRepository(client *adapter.Client, log *logger.Logger) UserRepository {
	log.Debug().Msg("creating rest user repository")
	return &restUserRepository{client: client, logger: log}
}

func (r *restUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	row := newUserRow{
		ID:               user.ID,
		Email:            user.Email,
		Name:             user.Name,
		DivingExperience: user.DivingExperience,
		Location:         user.Location,
	}
	if row.DivingExperience == "" {
		row.DivingExperience = models.DefaultDivingExperience
	}

	var created models.User
	err := r.client.From(usersTable).Single().Insert(ctx, row, &created)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, restError(err, ErrUserNotFound, ErrEmailAlreadyExists)
	}

	return created, nil
}

func (r *restUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "*restUserRepository.FindUserByID", "id", id)
}

func (r *restUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*restUserRepository.FindUserByEmail", "email", email)
}

// LockUserByID reads the row. The REST API offers no row locks.
func (r *restUserRepository) LockUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "*restUserRepository.LockUserByID", "id", id)
}

func (r *restUserRepository) findOne(ctx context.Context, fn, column, value string) (models.User, error) {
	var user models.User
	_, err := r.client.From(usersTable).Select("*").Eq(column, value).Single().Get(ctx, &user)
	if err != nil {
		err = restError(err, ErrUserNotFound, ErrConflict)
		if !errors.Is(err, ErrUserNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error selecting user")
		}
		return models.User{}, err
	}
	return user, nil
}

func (r *restUserRepository) ListUsers(ctx context.Context, q models.UserListQuery) ([]models.User, int, error) {
	users := []models.User{}
	total, err := r.client.From(usersTable).
		Select("*").
		Order(q.Sort.Column, q.Sort.Descending).
		Range(q.Offset, q.Offset+q.Limit-1).
		Count().
		Get(ctx, &users)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restUserRepository.ListUsers").Msg("error listing users")
		return nil, 0, restError(err, ErrUserNotFound, ErrConflict)
	}
	return users, total, nil
}

func (r *restUserRepository) SearchUsers(ctx context.Context, q models.UserSearchQuery) ([]models.User, error) {
	pattern := "*" + q.Term + "*"
	query := r.client.From(usersTable).
		Select("*").
		Or(
			adapter.Cond("name", "ilike", pattern),
			adapter.Cond("bio", "ilike", pattern),
			adapter.Cond("location", "ilike", pattern),
		)
	if q.Location != "" {
		query = query.ILike("location", "*"+q.Location+"*")
	}
	if q.Experience != "" {
		query = query.Eq("diving_experience", q.Experience)
	}

	users := []models.User{}
	_, err := query.Order("total_dives", true).Limit(q.Limit).Get(ctx, &users)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restUserRepository.SearchUsers").Msg("error searching users")
		return nil, restError(err, ErrUserNotFound, ErrConflict)
	}
	return users, nil
}

func (r *restUserRepository) UpdateUser(ctx context.Context, id string, fields map[string]any) (models.User, error) {
	var updated models.User
	err := r.client.From(usersTable).Eq("id", id).Single().Update(ctx, fields, &updated)
	if err != nil {
		err = restError(err, ErrUserNotFound, ErrConflict)
		if !errors.Is(err, ErrUserNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*restUserRepository.UpdateUser").Msg("error updating user")
		}
		return models.User{}, err
	}
	return updated, nil
}

func (r *restUserRepository) UpdateUserCounters(ctx context.Context, id string, counters models.UserCounters) error {
	body := map[string]any{
		"total_dives":  counters.TotalDives,
		"deepest_dive": counters.DeepestDive,
	}

	var row struct {
		ID string `json:"id"`
	}
	err := r.client.From(usersTable).Select("id").Eq("id", id).Single().Update(ctx, body, &row)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restUserRepository.UpdateUserCounters").Msg("error updating counters")
		return restError(err, ErrUserNotFound, ErrConflict)
	}
	return nil
}
