// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID       = errors.New("invalid id format")
	ErrRequired        = errors.New("field is required")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrTooShort        = errors.New("value is too short")
	ErrNotAllowed      = errors.New("value is not allowed")
	ErrInvalidDate     = errors.New("invalid date")
	ErrOutOfRange      = errors.New("value is out of range")
	ErrInvalidValue    = errors.New("invalid value")
	ErrInvalidJSONType = errors.New("invalid json type")
)
