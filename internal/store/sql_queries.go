// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/dive-log/models"
)

// psql builds statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id", "email", "name", "diving_experience", "bio", "location",
	"certifications", "social_links", "preferences",
	"total_dives", "deepest_dive", "created_at", "updated_at",
}

var diveColumns = []string{
	"id", "user_id", "dive_type", "dive_number",
	"location_name", "location_country", "latitude", "longitude",
	"dive_date::text AS dive_date",
	"max_depth", "average_depth", "duration_minutes", "water_temperature", "visibility",
	"weather_conditions", "current_strength", "equipment", "marine_life", "notes",
	"photos_count", "videos_count", "created_at", "updated_at",
}

var submitterColumns = []string{
	"u.name AS submitter_name",
	"u.diving_experience AS submitter_diving_experience",
	"u.location AS submitter_location",
}

// sortableUserColumns is the closed set of users list orderings.
var sortableUserColumns = map[string]struct{}{
	"created_at":        {},
	"name":              {},
	"total_dives":       {},
	"deepest_dive":      {},
	"diving_experience": {},
}

// updatableUserColumns is the closed set of columns UpdateUser writes.
var updatableUserColumns = map[string]struct{}{
	"name":              {},
	"diving_experience": {},
	"bio":               {},
	"location":          {},
	"certifications":    {},
	"social_links":      {},
	"preferences":       {},
	"updated_at":        {},
}

var jsonbUserColumns = map[string]struct{}{
	"certifications": {},
	"social_links":   {},
	"preferences":    {},
}

func prefixed(prefix string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = prefix + c
	}
	return out
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// containsPattern builds an ILIKE pattern matching term anywhere. LIKE
// metacharacters in term are matched literally.
func containsPattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

func selectUsers() sq.SelectBuilder {
	return psql.Select(userColumns...).From("users")
}

func selectDives(withLocation bool) sq.SelectBuilder {
	columns := prefixed("d.", diveColumns)
	if withLocation {
		columns = append(columns, submitterColumns...)
	} else {
		columns = append(columns, submitterColumns[:2]...)
	}
	return psql.Select(columns...).
		From("dives d").
		Join("users u ON u.id = d.user_id")
}

func applyDiveFilters(b sq.SelectBuilder, query models.DiveListQuery) sq.SelectBuilder {
	if query.UserID != "" {
		b = b.Where(sq.Eq{"d.user_id": query.UserID})
	}
	if query.Type != "" {
		b = b.Where(sq.Eq{"d.dive_type": string(query.Type)})
	}
	if query.Location != "" {
		b = b.Where(sq.ILike{"d.location_name": containsPattern(query.Location)})
	}
	return b
}
