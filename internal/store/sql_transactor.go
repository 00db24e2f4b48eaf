// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dive-log/internal/logger"
)

// postgresTransactor runs units of work inside a database transaction.
type postgresTransactor struct {
	db     *DB
	logger *logger.Logger
}

// NewPostgresTransactor returns a [Transactor] bound to db.
func NewPostgresTransactor(db *DB, log *logger.Logger) Transactor {
	return &postgresTransactor{db: db, logger: log}
}

// WithinTransaction begins a transaction, hands fn repositories bound to
// it, and commits when fn returns nil. Any error from fn rolls back.
func (t *postgresTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	log := logger.FromContext(ctx)

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*postgresTransactor.WithinTransaction").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, classifyPostgresError(err, ErrUserNotFound, ErrConflict))
	}

	repos := Repositories{
		Users: &userRepository{db: tx, logger: t.logger},
		Dives: &diveRepository{db: tx, logger: t.logger},
	}

	if err = fn(ctx, repos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Err(rbErr).Str("func", "*postgresTransactor.WithinTransaction").Msg("error rolling back transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*postgresTransactor.WithinTransaction").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
