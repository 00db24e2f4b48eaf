// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/MKhiriev/dive-log/internal/validators"
)

// AllowedUserFields is the profile update allow-list, in display order.
var AllowedUserFields = []string{
	validators.FieldName,
	validators.FieldBio,
	validators.FieldLocation,
	validators.FieldDivingExperience,
	validators.FieldCertifications,
	validators.FieldSocialLinks,
	validators.FieldPreferences,
}

const fieldUpdatedAt = "updated_at"

// FilterUserUpdate keeps the allow-listed keys of input and stamps
// updated_at with now. It also returns the sorted names of the kept keys.
// When no key survives it returns a NO_VALID_FIELDS ValidationError naming
// the allowed fields.
func FilterUserUpdate(input map[string]json.RawMessage, now time.Time) (map[string]any, []string, error) {
	out := make(map[string]any, len(AllowedUserFields)+1)
	kept := make([]string, 0, len(AllowedUserFields))

	for _, field := range AllowedUserFields {
		if raw, ok := input[field]; ok {
			out[field] = raw
			kept = append(kept, field)
		}
	}

	if len(kept) == 0 {
		allowed := make([]string, len(AllowedUserFields))
		copy(allowed, AllowedUserFields)
		return nil, nil, &ValidationError{
			Message: "No valid fields to update",
			Code:    CodeNoValidFields,
			Extras:  map[string]any{"allowed_fields": allowed},
		}
	}

	sort.Strings(kept)
	out[fieldUpdatedAt] = now.UTC()
	return out, kept, nil
}
