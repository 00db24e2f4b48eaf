// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/dive-log/models"

var userSorts = map[string]models.UserSort{
	"total_dives": {Key: "total_dives", Column: "total_dives", Descending: true},
	"name":        {Key: "name", Column: "name"},
}

var defaultUserSort = models.UserSort{Key: "created_at", Column: "created_at", Descending: true}

// UserSortFromQuery maps the sort query parameter onto a closed ordering.
// Unknown values select newest first.
func UserSortFromQuery(raw string) models.UserSort {
	if s, ok := userSorts[raw]; ok {
		return s
	}
	return defaultUserSort
}
