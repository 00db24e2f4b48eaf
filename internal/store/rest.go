// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/dive-log/internal/adapter"
)

// restError maps provider adapter errors onto the store sentinels.
func restError(err error, notFound, conflict error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrNoRows):
		return notFound
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", conflict, err)
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, adapter.ErrProviderUnavailable):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return err
	}
}

// restTransactor runs units of work directly against the REST
// repositories. Each write is its own request, so a failure part way
// through leaves the earlier writes in place.
type restTransactor struct {
	repos Repositories
}

// NewRESTTransactor returns a [Transactor] that calls fn with repos.
func NewRESTTransactor(repos Repositories) Transactor {
	return &restTransactor{repos: repos}
}

// WithinTransaction calls fn once with the plain repositories.
func (t *restTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return fn(ctx, t.repos)
}
