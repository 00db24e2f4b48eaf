// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/models"
	"github.com/jmoiron/sqlx"
)

// diveRepository is the PostgreSQL-backed implementation of [DiveRepository].
type diveRepository struct {
	logger *logger.Logger
	db     sqlx.ExtContext
}

// diveWithSubmitter is the scan target for dives joined with users.
type diveWithSubmitter struct {
	models.Dive
	models.DiveSubmitter
}

func (r diveWithSubmitter) toModel() models.Dive {
	dive := r.Dive
	submitter := r.DiveSubmitter
	dive.Submitter = &submitter
	return dive
}

// NewDiveRepository constructs a [DiveRepository] backed by db.
func NewDiveRepository(db *DB, logger *logger.Logger) DiveRepository {
	logger.Debug().Msg("creating dive repository")
	return &diveRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDive inserts the dive and returns the stored row without the
// submitter summary.
func (r *diveRepository) CreateDive(ctx context.Context, dive models.Dive) (models.Dive, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("dives").
		SetMap(map[string]any{
			"user_id":            dive.UserID,
			"dive_type":          string(dive.Type),
			"dive_number":        dive.DiveNumber,
			"location_name":      dive.LocationName,
			"location_country":   dive.LocationCountry,
			"latitude":           dive.Latitude,
			"longitude":          dive.Longitude,
			"dive_date":          dive.DiveDate,
			"max_depth":          dive.MaxDepth,
			"average_depth":      dive.AverageDepth,
			"duration_minutes":   dive.DurationMinutes,
			"water_temperature":  dive.WaterTemperature,
			"visibility":         dive.Visibility,
			"weather_conditions": dive.WeatherConditions,
			"current_strength":   dive.CurrentStrength,
			"equipment":          dive.Equipment,
			"marine_life":        dive.MarineLife,
			"notes":              dive.Notes,
			"photos_count":       dive.PhotosCount,
			"videos_count":       dive.VideosCount,
		}).
		Suffix(returning(diveColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*diveRepository.CreateDive").Msg("error building query")
		return models.Dive{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Dive
	if err = sqlx.GetContext(ctx, r.db, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*diveRepository.CreateDive").Msg("error inserting dive")
		return models.Dive{}, classifyPostgresError(err, ErrDiveNotFound, ErrConflict)
	}

	return created, nil
}

// FindDiveByID returns the dive with name, experience and location of its
// submitter.
func (r *diveRepository) FindDiveByID(ctx context.Context, id string) (models.Dive, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectDives(true).Where(sq.Eq{"d.id": id}).ToSql()
	if err != nil {
		return models.Dive{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row diveWithSubmitter
	if err = sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		err = classifyPostgresError(err, ErrDiveNotFound, ErrConflict)
		if !errors.Is(err, ErrDiveNotFound) {
			log.Err(err).Str("func", "*diveRepository.FindDiveByID").Msg("error selecting dive")
		}
		return models.Dive{}, err
	}

	return row.toModel(), nil
}

// ListDives returns one page ordered by dive date (newest first) and the
// total number of dives matching the filters.
func (r *diveRepository) ListDives(ctx context.Context, q models.DiveListQuery) ([]models.Dive, int, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := applyDiveFilters(psql.Select("COUNT(*)").From("dives d"), q).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = sqlx.GetContext(ctx, r.db, &total, countQuery, countArgs...); err != nil {
		log.Err(err).Str("func", "*diveRepository.ListDives").Msg("error counting dives")
		return nil, 0, classifyPostgresError(err, ErrDiveNotFound, ErrConflict)
	}

	query, args, err := applyDiveFilters(selectDives(false), q).
		OrderBy("d.dive_date DESC", "d.created_at DESC").
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows []diveWithSubmitter
	if err = sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		log.Err(err).Str("func", "*diveRepository.ListDives").Msg("error selecting dives")
		return nil, 0, classifyPostgresError(err, ErrDiveNotFound, ErrConflict)
	}

	dives := make([]models.Dive, 0, len(rows))
	for _, row := range rows {
		dives = append(dives, row.toModel())
	}

	return dives, total, nil
}

// CountUserDives returns how many dives userID has logged.
func (r *diveRepository) CountUserDives(ctx context.Context, userID string) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From("dives").Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diveRepository.CountUserDives").Msg("error counting dives")
		return 0, classifyPostgresError(err, ErrDiveNotFound, ErrConflict)
	}

	return count, nil
}

// CountDivesByType groups userID's dives by discipline.
func (r *diveRepository) CountDivesByType(ctx context.Context, userID string) (map[models.DiveType]int, error) {
	query, args, err := psql.Select("dive_type", "COUNT(*) AS total").
		From("dives").
		Where(sq.Eq{"user_id": userID}).
		GroupBy("dive_type").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows []struct {
		Type  models.DiveType `db:"dive_type"`
		Total int             `db:"total"`
	}
	if err = sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diveRepository.CountDivesByType").Msg("error counting dives")
		return nil, classifyPostgresError(err, ErrDiveNotFound, ErrConflict)
	}

	counts := make(map[models.DiveType]int, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Total
	}
	return counts, nil
}
