// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultDivingExperience is assigned to profiles registered without an
// explicit experience tier.
const DefaultDivingExperience = "beginner"

// User is a diver profile row. Identity (ID, Email) is owned by the auth
// provider; the remaining fields live in the "users" table.
type User struct {
	// ID equals the auth provider's user id and never changes.
	ID    string `json:"id" db:"id"`
	Email string `json:"email" db:"email"`
	Name  string `json:"name" db:"name"`

	// DivingExperience is a provider-defined tier such as "beginner".
	DivingExperience string `json:"diving_experience" db:"diving_experience"`

	Bio            *string `json:"bio" db:"bio"`
	Location       *string `json:"location" db:"location"`
	Certifications JSONB   `json:"certifications,omitempty" db:"certifications"`
	SocialLinks    JSONB   `json:"social_links,omitempty" db:"social_links"`
	Preferences    JSONB   `json:"preferences,omitempty" db:"preferences"`

	// TotalDives and DeepestDive are recomputed by dive creation only.
	TotalDives  int      `json:"total_dives" db:"total_dives"`
	DeepestDive *float64 `json:"deepest_dive" db:"deepest_dive"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// DiveStats is filled on the detail endpoint only.
	DiveStats *DiveStats `json:"dive_stats,omitempty" db:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// DiveStats is the per-type breakdown of a user's logged dives.
type DiveStats struct {
	Total      int `json:"total"`
	Freediving int `json:"freediving"`
	Scuba      int `json:"scuba"`
}

// UserCounters carries the aggregate columns written after a dive insert.
type UserCounters struct {
	TotalDives  int
	DeepestDive *float64
}

// UserSort selects a closed ordering for the users list.
type UserSort struct {
	// Key is the public name echoed back in list responses.
	Key        string
	Column     string
	Descending bool
}

// UserListQuery describes one page of the users list.
type UserListQuery struct {
	Offset int
	Limit  int
	Sort   UserSort
}

// UserSearchQuery describes a users search request.
type UserSearchQuery struct {
	Term       string
	Location   string
	Experience string
	Limit      int
}
