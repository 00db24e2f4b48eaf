// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no users row matches.
	ErrUserNotFound = errors.New("user was not found")

	// ErrDiveNotFound is returned when no dives row matches.
	ErrDiveNotFound = errors.New("dive was not found")

	// ErrEmailAlreadyExists is returned when inserting a profile whose id or
	// e-mail is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrConflict is returned for any other unique-constraint violation.
	ErrConflict = errors.New("conflicting row already exists")

	// ErrInvalidInput is returned when the store rejects a value (bad
	// syntax for a column type, check or not-null violation).
	ErrInvalidInput = errors.New("invalid input for store")

	// ErrStoreUnavailable is returned for connection-level failures.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUnknownBackend is returned by NewStorages for an unsupported
	// backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for an unclassified reason.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrEncodingValue is returned when an update value cannot be converted
	// to its column type.
	ErrEncodingValue = errors.New("failed to encode column value")
)
