// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists diver profiles and dive logs.
//
// Two backends implement the same repository contracts:
//   - rest: the provider's PostgREST API through [adapter.Client]. Writes
//     are individual HTTP calls and cannot share a transaction.
//   - postgres: a direct connection (pgx + sqlx + squirrel). Multi-step
//     writes run inside one database transaction.
//
// Callers use [Transactor.WithinTransaction] for any sequence of writes that
// should be atomic where the backend allows it.
package store

import (
	"context"

	"github.com/MKhiriev/dive-log/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads and writes rows of the users table.
type UserRepository interface {
	// CreateUser inserts a profile row. A duplicate id or e-mail yields
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns [ErrUserNotFound] when no row matches.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// FindUserByEmail returns [ErrUserNotFound] when no row matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// ListUsers returns one page of profiles and the total row count.
	ListUsers(ctx context.Context, query models.UserListQuery) ([]models.User, int, error)

	// SearchUsers matches the term against name, bio and location.
	SearchUsers(ctx context.Context, query models.UserSearchQuery) ([]models.User, error)

	// UpdateUser applies an allow-listed partial update and returns the
	// stored row.
	UpdateUser(ctx context.Context, id string, fields map[string]any) (models.User, error)

	// LockUserByID reads a profile for a subsequent counter update. Inside a
	// database transaction the row stays locked until commit.
	LockUserByID(ctx context.Context, id string) (models.User, error)

	// UpdateUserCounters writes total_dives and deepest_dive.
	UpdateUserCounters(ctx context.Context, id string, counters models.UserCounters) error
}

// DiveRepository reads and writes rows of the dives table.
type DiveRepository interface {
	// CreateDive inserts a dive and returns the stored row.
	CreateDive(ctx context.Context, dive models.Dive) (models.Dive, error)

	// FindDiveByID returns the dive joined with its submitter summary, or
	// [ErrDiveNotFound].
	FindDiveByID(ctx context.Context, id string) (models.Dive, error)

	// ListDives returns one page of dives (newest dive date first) joined
	// with submitter summaries, and the total matching count.
	ListDives(ctx context.Context, query models.DiveListQuery) ([]models.Dive, int, error)

	// CountUserDives returns the number of dives owned by userID.
	CountUserDives(ctx context.Context, userID string) (int, error)

	// CountDivesByType returns per-type dive counts for userID.
	CountDivesByType(ctx context.Context, userID string) (map[models.DiveType]int, error)
}

// Repositories groups the repositories bound to one connection or
// transaction.
type Repositories struct {
	Users UserRepository
	Dives DiveRepository
}

// Transactor runs fn with repositories bound to a single unit of work. The
// postgres backend commits when fn returns nil and rolls back otherwise;
// the rest backend runs fn against the plain repositories.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
