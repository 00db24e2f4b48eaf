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

const (
	divesTable = "dives"

	diveDetailColumns = "*,user:users(name,diving_experience,location)"
	diveListColumns   = "*,user:users(name,diving_experience)"
)

// restDiveRepository implements [DiveRepository] over the provider's
// PostgREST API.
type restDiveRepository struct {
	client *adapter.Client
	logger *logger.Logger
}

// newDiveRow is the insert body for a dive. The id and timestamps are
// assigned by the database.
type newDiveRow struct {
	UserID            string          `json:"user_id"`
	Type              models.DiveType `json:"dive_type"`
	DiveNumber        int             `json:"dive_number"`
	LocationName      string          `json:"location_name"`
	LocationCountry   *string         `json:"location_country,omitempty"`
	Latitude          *float64        `json:"latitude,omitempty"`
	Longitude         *float64        `json:"longitude,omitempty"`
	DiveDate          string          `json:"dive_date"`
	MaxDepth          float64         `json:"max_depth"`
	AverageDepth      *float64        `json:"average_depth,omitempty"`
	DurationMinutes   *float64        `json:"duration_minutes,omitempty"`
	WaterTemperature  *float64        `json:"water_temperature,omitempty"`
	Visibility        *float64        `json:"visibility,omitempty"`
	WeatherConditions *string         `json:"weather_conditions,omitempty"`
	CurrentStrength   *string         `json:"current_strength,omitempty"`
	Equipment         models.JSONB    `json:"equipment,omitempty"`
	MarineLife        models.JSONB    `json:"marine_life,omitempty"`
	Notes             *string         `json:"notes,omitempty"`
	PhotosCount       int             `json:"photos_count"`
	VideosCount       int             `json:"videos_count"`
}

func newDiveRowFrom(d models.Dive) newDiveRow {
	return newDiveRow{
		UserID:            d.UserID,
		Type:              d.Type,
		DiveNumber:        d.DiveNumber,
		LocationName:      d.LocationName,
		LocationCountry:   d.LocationCountry,
		Latitude:          d.Latitude,
		Longitude:         d.Longitude,
		DiveDate:          d.DiveDate,
		MaxDepth:          d.MaxDepth,
		AverageDepth:      d.AverageDepth,
		DurationMinutes:   d.DurationMinutes,
		WaterTemperature:  d.WaterTemperature,
		Visibility:        d.Visibility,
		WeatherConditions: d.WeatherConditions,
		CurrentStrength:   d.CurrentStrength,
		Equipment:         d.Equipment,
		MarineLife:        d.MarineLife,
		Notes:             d.Notes,
		PhotosCount:       d.PhotosCount,
		VideosCount:       d.VideosCount,
	}
}

// NewRESTDiveRepository constructs a [DiveRepository] on top of client.
func NewRESTDiveRepository(client *adapter.Client, log *logger.Logger) DiveRepository {
	log.Debug().Msg("creating rest dive repository")
	return &restDiveRepository{client: client, logger: log}
}

func (r *restDiveRepository) CreateDive(ctx context.Context, dive models.Dive) (models.Dive, error) {
	var created models.Dive
	err := r.client.From(divesTable).Single().Insert(ctx, newDiveRowFrom(dive), &created)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restDiveRepository.CreateDive").Msg("error inserting dive")
		return models.Dive{}, restError(err, ErrDiveNotFound, ErrConflict)
	}
	return created, nil
}

func (r *restDiveRepository) FindDiveByID(ctx context.Context, id string) (models.Dive, error) {
	var dive models.Dive
	_, err := r.client.From(divesTable).Select(diveDetailColumns).Eq("id", id).Single().Get(ctx, &dive)
	if err != nil {
		err = restError(err, ErrDiveNotFound, ErrConflict)
		if !errors.Is(err, ErrDiveNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*restDiveRepository.FindDiveByID").Msg("error selecting dive")
		}
		return models.Dive{}, err
	}
	return dive, nil
}

func (r *restDiveRepository) ListDives(ctx context.Context, q models.DiveListQuery) ([]models.Dive, int, error) {
	query := r.client.From(divesTable).Select(diveListColumns)
	if q.UserID != "" {
		query = query.Eq("user_id", q.UserID)
	}
	if q.Type != "" {
		query = query.Eq("dive_type", string(q.Type))
	}
	if q.Location != "" {
		query = query.ILike("location_name", "*"+q.Location+"*")
	}

	dives := []models.Dive{}
	total, err := query.
		Order("dive_date", true).
		Order("created_at", true).
		Range(q.Offset, q.Offset+q.Limit-1).
		Count().
		Get(ctx, &dives)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restDiveRepository.ListDives").Msg("error listing dives")
		return nil, 0, restError(err, ErrDiveNotFound, ErrConflict)
	}
	return dives, total, nil
}

func (r *restDiveRepository) CountUserDives(ctx context.Context, userID string) (int, error) {
	count, err := r.client.From(divesTable).Eq("user_id", userID).Head(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restDiveRepository.CountUserDives").Msg("error counting dives")
		return 0, restError(err, ErrDiveNotFound, ErrConflict)
	}
	return count, nil
}

// CountDivesByType issues one count-only read per dive type, so the result
// is exact regardless of the provider's row cap.
func (r *restDiveRepository) CountDivesByType(ctx context.Context, userID string) (map[models.DiveType]int, error) {
	counts := make(map[models.DiveType]int, len(models.AllowedDiveTypes))
	for _, t := range models.AllowedDiveTypes {
		n, err := r.client.From(divesTable).
			Eq("user_id", userID).
			Eq("dive_type", string(t)).
			Head(ctx)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*restDiveRepository.CountDivesByType").
				Str("dive_type", string(t)).Msg("error counting dives")
			return nil, restError(err, ErrDiveNotFound, ErrConflict)
		}
		counts[t] = n
	}
	return counts, nil
}
