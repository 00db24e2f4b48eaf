// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dive-log/internal/adapter"
	"github.com/MKhiriev/dive-log/internal/config"
	"github.com/MKhiriev/dive-log/internal/logger"
)

// Storages bundles the repositories and transactor of the selected backend.
type Storages struct {
	Repositories
	Transactor Transactor

	// Backend is the name of the active backend.
	Backend string

	db *DB
}

// NewStorages builds the backend named by cfg.Backend. The rest backend
// reuses provider; the postgres backend opens its own connection and, when
// cfg.AutoMigrate is set, applies the embedded migrations.
func NewStorages(ctx context.Context, cfg config.Storage, provider *adapter.Client, log *logger.Logger) (*Storages, error) {
	switch cfg.Backend {
	case config.BackendREST, "":
		repos := Repositories{
			Users: NewRESTUserRepository(provider, log),
			Dives: NewRESTDiveRepository(provider, log),
		}
		log.Info().Str("backend", config.BackendREST).Msg("storage initialized")
		return &Storages{
			Repositories: repos,
			Transactor:   NewRESTTransactor(repos),
			Backend:      config.BackendREST,
		}, nil

	case config.BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DSN, log)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			if err = db.Migrate(); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		log.Info().Str("backend", config.BackendPostgres).Msg("storage initialized")
		return &Storages{
			Repositories: Repositories{
				Users: NewUserRepository(db, log),
				Dives: NewDiveRepository(db, log),
			},
			Transactor: NewPostgresTransactor(db, log),
			Backend:    config.BackendPostgres,
			db:         db,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
