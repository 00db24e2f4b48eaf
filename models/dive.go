// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DiveType is the closed set of supported dive disciplines.
type DiveType string

const (
	Freediving DiveType = "freediving"
	Scuba      DiveType = "scuba"
)

// AllowedDiveTypes lists every accepted DiveType in display order.
var AllowedDiveTypes = []DiveType{Freediving, Scuba}

// IsValid reports whether t belongs to AllowedDiveTypes.
func (t DiveType) IsValid() bool {
	for _, allowed := range AllowedDiveTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// Dive is a single logged dive.
type Dive struct {
	ID     string   `json:"id" db:"id"`
	UserID string   `json:"user_id" db:"user_id"`
	Type   DiveType `json:"dive_type" db:"dive_type"`

	// DiveNumber is the per-user sequence assigned at creation time.
	DiveNumber int `json:"dive_number" db:"dive_number"`

	LocationName    string   `json:"location_name" db:"location_name"`
	LocationCountry *string  `json:"location_country" db:"location_country"`
	Latitude        *float64 `json:"latitude" db:"latitude"`
	Longitude       *float64 `json:"longitude" db:"longitude"`

	// DiveDate is a calendar date in YYYY-MM-DD form.
	DiveDate string `json:"dive_date" db:"dive_date"`

	MaxDepth          float64  `json:"max_depth" db:"max_depth"`
	AverageDepth      *float64 `json:"average_depth" db:"average_depth"`
	DurationMinutes   *float64 `json:"duration_minutes" db:"duration_minutes"`
	WaterTemperature  *float64 `json:"water_temperature" db:"water_temperature"`
	Visibility        *float64 `json:"visibility" db:"visibility"`
	WeatherConditions *string  `json:"weather_conditions" db:"weather_conditions"`
	CurrentStrength   *string  `json:"current_strength" db:"current_strength"`

	Equipment  JSONB   `json:"equipment,omitempty" db:"equipment"`
	MarineLife JSONB   `json:"marine_life,omitempty" db:"marine_life"`
	Notes      *string `json:"notes" db:"notes"`

	PhotosCount int `json:"photos_count" db:"photos_count"`
	VideosCount int `json:"videos_count" db:"videos_count"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Submitter is the joined owner summary; absent on create responses.
	Submitter *DiveSubmitter `json:"user,omitempty" db:"-"`
}

// TableName returns the name of the database table
// associated with the Dive model.
func (d Dive) TableName() string {
	return "dives"
}

// DiveSubmitter is the subset of the owning user embedded into dive reads.
type DiveSubmitter struct {
	Name             string  `json:"name" db:"submitter_name"`
	DivingExperience string  `json:"diving_experience" db:"submitter_diving_experience"`
	Location         *string `json:"location,omitempty" db:"submitter_location"`
}

// DiveListQuery describes one page of the dives list with optional filters.
type DiveListQuery struct {
	Offset   int
	Limit    int
	UserID   string
	Type     DiveType
	Location string
}

// DiveListFilters echoes the applied filters back to the client.
type DiveListFilters struct {
	UserID   *string `json:"user_id"`
	Type     *string `json:"type"`
	Location *string `json:"location"`
}
