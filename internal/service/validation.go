// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/dive-log/internal/validators"
	"github.com/MKhiriev/dive-log/models"
)

const fieldDiveType = "dive_type"

func allowedDiveTypes() []string {
	out := make([]string, 0, len(models.AllowedDiveTypes))
	for _, t := range models.AllowedDiveTypes {
		out = append(out, string(t))
	}
	return out
}

// requestValidationError converts a validator failure into a
// ValidationError with a client-facing message.
func requestValidationError(err error) error {
	var fe *validators.FieldError
	if !errors.As(err, &fe) {
		return newValidationError(CodeValidation, "Invalid request body", err)
	}
	if fe.Field == fieldDiveType && errors.Is(err, validators.ErrNotAllowed) {
		return invalidDiveTypeError(err)
	}
	return newValidationError(CodeValidation, fe.Error(), err)
}
