// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/dive-log/internal/cache"
	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/internal/store"
	"github.com/MKhiriev/dive-log/internal/validators"
	"github.com/MKhiriev/dive-log/models"
)

type diveService struct {
	dives      store.DiveRepository
	transactor store.Transactor
	cache      Cache
	validator  validators.Validator

	logger *logger.Logger
}

// NewDiveService constructs a DiveService. dives serves the read paths;
// every write goes through transactor.
func NewDiveService(dives store.DiveRepository, transactor store.Transactor, c Cache, validator validators.Validator, logger *logger.Logger) DiveService {
	return &diveService{
		dives:      dives,
		transactor: transactor,
		cache:      cacheOrNop(c),
		validator:  validator,
		logger:     logger,
	}
}

// CreateDive logs a dive for userID.
//
// The dive number and the owner's counters are derived from the owner's
// current state inside one unit of work: read the owner, count existing
// dives, insert the dive, then write total_dives and deepest_dive.
func (s *diveService) CreateDive(ctx context.Context, userID string, req models.CreateDiveRequest) (models.DiveCreateResponse, error) {
	log := logger.FromContext(ctx)

	req.DiveType = strings.TrimSpace(req.DiveType)
	req.LocationName = strings.TrimSpace(req.LocationName)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.DiveCreateResponse{}, requestValidationError(err)
	}

	var (
		created models.Dive
		stats   models.DiveCreateStats
	)
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, repos store.Repositories) error {
		owner, err := repos.Users.LockUserByID(ctx, userID)
		if err != nil {
			return err
		}

		count, err := repos.Dives.CountUserDives(ctx, userID)
		if err != nil {
			return err
		}

		var counters models.UserCounters
		counters, stats = NextDiveCounters(count, owner.DeepestDive, *req.MaxDepth)

		dive := req.ToDive(userID)
		dive.DiveNumber = stats.DiveNumber
		if created, err = repos.Dives.CreateDive(ctx, dive); err != nil {
			return err
		}

		return repos.Users.UpdateUserCounters(ctx, userID, counters)
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.DiveCreateResponse{}, ErrProfileNotFound
		}
		if errors.Is(err, store.ErrInvalidInput) {
			return models.DiveCreateResponse{}, newValidationError(CodeValidation, "Invalid dive data", err)
		}
		log.Err(err).Str("func", "*diveService.CreateDive").Str("user_id", userID).Msg("error creating dive")
		return models.DiveCreateResponse{}, fmt.Errorf("error creating dive: %w", err)
	}

	if err = s.cache.Delete(ctx, cache.UserKey(userID)); err != nil {
		log.Warn().Err(err).Str("func", "*diveService.CreateDive").Msg("cache invalidation failed")
	}

	log.Info().Str("user_id", userID).Str("dive_id", created.ID).Int("dive_number", stats.DiveNumber).Msg("dive logged")
	return models.DiveCreateResponse{
		Message: "Dive logged successfully",
		Dive:    created,
		Stats:   stats,
	}, nil
}

// ListDives returns one page of dives, newest dive date first, with the
// applied filters echoed back.
func (s *diveService) ListDives(ctx context.Context, params ListDivesParams) (models.DiveListResponse, error) {
	page := NewPageRequest(params.Page, params.Limit)
	query := models.DiveListQuery{Offset: page.Start(), Limit: page.Limit}

	var filters models.DiveListFilters
	if id := strings.TrimSpace(params.UserID); id != "" {
		if !validators.IsUUID(id) {
			return models.DiveListResponse{}, invalidIDError("user ID")
		}
		query.UserID = id
		filters.UserID = &id
	}
	if t := strings.TrimSpace(params.Type); t != "" {
		if !models.DiveType(t).IsValid() {
			return models.DiveListResponse{}, invalidDiveTypeError(nil)
		}
		query.Type = models.DiveType(t)
		filters.Type = &t
	}
	if loc := strings.TrimSpace(params.Location); loc != "" {
		query.Location = loc
		filters.Location = &loc
	}

	dives, total, err := s.dives.ListDives(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diveService.ListDives").Msg("error listing dives")
		return models.DiveListResponse{}, fmt.Errorf("error listing dives: %w", err)
	}
	if dives == nil {
		dives = []models.Dive{}
	}

	return models.DiveListResponse{
		Data:       dives,
		Pagination: NewPagination(page, total),
		Filters:    filters,
	}, nil
}

// GetDive returns one dive joined with its submitter summary.
func (s *diveService) GetDive(ctx context.Context, id string) (models.Dive, error) {
	log := logger.FromContext(ctx)

	if !validators.IsUUID(id) {
		return models.Dive{}, invalidIDError("dive ID")
	}

	key := cache.DiveKey(id)
	var dive models.Dive
	if hit, err := s.cache.GetJSON(ctx, key, &dive); err != nil {
		log.Warn().Err(err).Str("func", "*diveService.GetDive").Msg("cache read failed")
	} else if hit {
		return dive, nil
	}

	dive, err := s.dives.FindDiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrDiveNotFound) {
			return models.Dive{}, ErrDiveNotFound
		}
		log.Err(err).Str("func", "*diveService.GetDive").Str("dive_id", id).Msg("error fetching dive")
		return models.Dive{}, fmt.Errorf("error fetching dive: %w", err)
	}

	if err = s.cache.SetJSON(ctx, key, dive, 0); err != nil {
		log.Warn().Err(err).Str("func", "*diveService.GetDive").Msg("cache write failed")
	}
	return dive, nil
}
