// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/models"
	"github.com/jmoiron/sqlx"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It runs against either the pool or an open transaction.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     sqlx.ExtContext
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the profile and returns the stored row, including the
// database defaults for timestamps and counters.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	experience := user.DivingExperience
	if experience == "" {
		experience = models.DefaultDivingExperience
	}

	query, args, err := psql.Insert("users").
		SetMap(map[string]any{
			"id":                user.ID,
			"email":             user.Email,
			"name":              user.Name,
			"diving_experience": experience,
			"location":          user.Location,
		}).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	if err = sqlx.GetContext(ctx, r.db, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, classifyPostgresError(err, ErrUserNotFound, ErrEmailAlreadyExists)
	}

	return created, nil
}

// FindUserByID returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", selectUsers().Where(sq.Eq{"id": id}))
}

// FindUserByEmail returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", selectUsers().Where(sq.Eq{"email": email}))
}

// LockUserByID selects the row FOR UPDATE. Outside a transaction the lock
// is released as soon as the statement completes.
func (r *userRepository) LockUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.LockUserByID", selectUsers().Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
}

func (r *userRepository) findOne(ctx context.Context, fn string, b sq.SelectBuilder) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	if err = sqlx.GetContext(ctx, r.db, &user, query, args...); err != nil {
		err = classifyPostgresError(err, ErrUserNotFound, ErrConflict)
		if !errors.Is(err, ErrUserNotFound) {
			log.Err(err).Str("func", fn).Msg("error selecting user")
		}
		return models.User{}, err
	}

	return user, nil
}

// ListUsers returns one ordered page and the total number of profiles.
func (r *userRepository) ListUsers(ctx context.Context, q models.UserListQuery) ([]models.User, int, error) {
	log := logger.FromContext(ctx)

	if _, ok := sortableUserColumns[q.Sort.Column]; !ok {
		return nil, 0, fmt.Errorf("%w: unsupported sort column %q", ErrInvalidInput, q.Sort.Column)
	}
	direction := "ASC"
	if q.Sort.Descending {
		direction = "DESC"
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = sqlx.GetContext(ctx, r.db, &total, countQuery, countArgs...); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error counting users")
		return nil, 0, classifyPostgresError(err, ErrUserNotFound, ErrConflict)
	}

	query, args, err := selectUsers().
		OrderBy(q.Sort.Column + " " + direction).
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	users := make([]models.User, 0, q.Limit)
	if err = sqlx.SelectContext(ctx, r.db, &users, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error selecting users")
		return nil, 0, classifyPostgresError(err, ErrUserNotFound, ErrConflict)
	}

	return users, total, nil
}

// SearchUsers matches Term case-insensitively against name, bio and
// location, narrows by the optional filters and orders by total_dives.
func (r *userRepository) SearchUsers(ctx context.Context, q models.UserSearchQuery) ([]models.User, error) {
	log := logger.FromContext(ctx)

	pattern := containsPattern(q.Term)
	b := selectUsers().Where(sq.Or{
		sq.ILike{"name": pattern},
		sq.ILike{"bio": pattern},
		sq.ILike{"location": pattern},
	})
	if q.Location != "" {
		b = b.Where(sq.ILike{"location": containsPattern(q.Location)})
	}
	if q.Experience != "" {
		b = b.Where(sq.Eq{"diving_experience": q.Experience})
	}
	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit))
	}

	query, args, err := b.OrderBy("total_dives DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	users := []models.User{}
	if err = sqlx.SelectContext(ctx, r.db, &users, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.SearchUsers").Msg("error searching users")
		return nil, classifyPostgresError(err, ErrUserNotFound, ErrConflict)
	}

	return users, nil
}

// UpdateUser writes the allow-listed fields and returns the updated row.
// Values may be json.RawMessage (as decoded from a request body) or plain
// Go values.
func (r *userRepository) UpdateUser(ctx context.Context, id string, fields map[string]any) (models.User, error) {
	log := logger.FromContext(ctx)

	values := make(map[string]any, len(fields))
	for column, v := range fields {
		if _, ok := updatableUserColumns[column]; !ok {
			return models.User{}, fmt.Errorf("%w: column %q is not updatable", ErrInvalidInput, column)
		}
		encoded, err := encodeUserColumn(column, v)
		if err != nil {
			return models.User{}, err
		}
		values[column] = encoded
	}

	query, args, err := psql.Update("users").
		SetMap(values).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	if err = sqlx.GetContext(ctx, r.db, &updated, query, args...); err != nil {
		err = classifyPostgresError(err, ErrUserNotFound, ErrConflict)
		if !errors.Is(err, ErrUserNotFound) {
			log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		}
		return models.User{}, err
	}

	return updated, nil
}

// UpdateUserCounters writes the aggregate columns and bumps updated_at.
func (r *userRepository) UpdateUserCounters(ctx context.Context, id string, counters models.UserCounters) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("users").
		Set("total_dives", counters.TotalDives).
		Set("deepest_dive", counters.DeepestDive).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserCounters").Msg("error updating counters")
		return classifyPostgresError(err, ErrUserNotFound, ErrConflict)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}

	return nil
}

// encodeUserColumn converts a raw JSON value into the driver value for
// column. Other value types pass through unchanged.
func encodeUserColumn(column string, v any) (any, error) {
	raw, ok := v.(json.RawMessage)
	if !ok {
		return v, nil
	}

	if _, isJSONB := jsonbUserColumns[column]; isJSONB {
		if len(raw) == 0 || string(raw) == "null" {
			return nil, nil
		}
		return string(raw), nil
	}

	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %w: column %s: %w", ErrInvalidInput, ErrEncodingValue, column, err)
	}
	return s, nil
}
