// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code carried by err, or "" when err is
// not a Postgres error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// classifyPostgresError maps a driver error onto the store sentinels.
// notFound is returned for sql.ErrNoRows and conflict for unique
// violations; both are chosen by the calling repository.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - Class 08, 57P03: connection exceptions → [ErrStoreUnavailable]
//   - 23505 unique_violation → conflict
//   - 23503 foreign_key_violation → [ErrUserNotFound]
//   - Class 22 and the remaining class 23 codes → [ErrInvalidInput]
//   - anything else → [ErrExecutingQuery]
func classifyPostgresError(err error, notFound, conflict error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	switch code := postgresError(err); code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.CannotConnectNow:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)

	// Class 23 — integrity constraint violations
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", conflict, err)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	case pgerrcode.NotNullViolation,
		pgerrcode.CheckViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.IntegrityConstraintViolation:
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)

	default:
		// Class 22 — data exceptions
		if pgerrcode.IsDataException(code) {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
