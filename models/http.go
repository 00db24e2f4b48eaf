// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
	Name             string `json:"name" validate:"required"`
	DivingExperience string `json:"diving_experience,omitempty"`
	Location         string `json:"location,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateDiveRequest is the body of POST /api/dives/create. Ownership and
// numbering are never taken from the client.
type CreateDiveRequest struct {
	DiveType          string   `json:"dive_type" validate:"required,oneof=freediving scuba"`
	LocationName      string   `json:"location_name" validate:"required"`
	DiveDate          string   `json:"dive_date" validate:"required,datetime=2006-01-02"`
	MaxDepth          *float64 `json:"max_depth" validate:"required,gte=0"`
	LocationCountry   *string  `json:"location_country,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude         *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	AverageDepth      *float64 `json:"average_depth,omitempty" validate:"omitempty,gte=0"`
	DurationMinutes   *float64 `json:"duration_minutes,omitempty" validate:"omitempty,gte=0"`
	WaterTemperature  *float64 `json:"water_temperature,omitempty"`
	Visibility        *float64 `json:"visibility,omitempty" validate:"omitempty,gte=0"`
	WeatherConditions *string  `json:"weather_conditions,omitempty"`
	CurrentStrength   *string  `json:"current_strength,omitempty"`
	Equipment         JSONB    `json:"equipment,omitempty"`
	MarineLife        JSONB    `json:"marine_life,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
	PhotosCount       int      `json:"photos_count,omitempty" validate:"gte=0"`
	VideosCount       int      `json:"videos_count,omitempty" validate:"gte=0"`
}

// ToDive converts the request into an unsaved Dive owned by userID.
func (r CreateDiveRequest) ToDive(userID string) Dive {
	d := Dive{
		UserID:            userID,
		Type:              DiveType(r.DiveType),
		LocationName:      r.LocationName,
		LocationCountry:   r.LocationCountry,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		DiveDate:          r.DiveDate,
		AverageDepth:      r.AverageDepth,
		DurationMinutes:   r.DurationMinutes,
		WaterTemperature:  r.WaterTemperature,
		Visibility:        r.Visibility,
		WeatherConditions: r.WeatherConditions,
		CurrentStrength:   r.CurrentStrength,
		Equipment:         r.Equipment,
		MarineLife:        r.MarineLife,
		Notes:             r.Notes,
		PhotosCount:       r.PhotosCount,
		VideosCount:       r.VideosCount,
	}
	if r.MaxDepth != nil {
		d.MaxDepth = *r.MaxDepth
	}
	return d
}
