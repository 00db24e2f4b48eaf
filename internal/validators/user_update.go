// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Profile fields accepted by a partial user update.
const (
	FieldName             = "name"
	FieldBio              = "bio"
	FieldLocation         = "location"
	FieldDivingExperience = "diving_experience"
	FieldCertifications   = "certifications"
	FieldSocialLinks      = "social_links"
	FieldPreferences      = "preferences"
)

// ValidateUserUpdate checks the JSON type of every known profile field in
// fields:
//   - name and diving_experience must be non-empty strings
//   - bio and location must be strings or null
//   - certifications, social_links and preferences must be objects, arrays
//     or null
//
// Unknown keys are ignored; dropping them is the caller's concern.
func ValidateUserUpdate(fields map[string]json.RawMessage) error {
	for field, raw := range fields {
		var err error
		switch field {
		case FieldName, FieldDivingExperience:
			err = requireString(raw, false)
		case FieldBio, FieldLocation:
			err = requireString(raw, true)
		case FieldCertifications, FieldSocialLinks, FieldPreferences:
			err = requireDocument(raw)
		default:
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}
	return nil
}

func requireString(raw json.RawMessage, nullable bool) error {
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		if nullable {
			return nil
		}
		return ErrRequired
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return fmt.Errorf("%w: expected a string", ErrInvalidJSONType)
	}
	if !nullable && s == "" {
		return ErrRequired
	}
	return nil
}

func requireDocument(raw json.RawMessage) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return fmt.Errorf("%w: empty value", ErrInvalidJSONType)
	}
	switch trimmed[0] {
	case '{', '[':
		if json.Valid(trimmed) {
			return nil
		}
	case 'n':
		if bytes.Equal(trimmed, []byte("null")) {
			return nil
		}
	}
	return fmt.Errorf("%w: expected an object, an array or null", ErrInvalidJSONType)
}
