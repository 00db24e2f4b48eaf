// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes the first rule a request field failed. Field is the
// JSON name of the field.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

// Error renders a client-facing message.
func (e *FieldError) Error() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", e.Field, e.Param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field, strings.Join(strings.Fields(e.Param), ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", e.Field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", e.Field, e.Param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", e.Field, e.Param)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

// Unwrap maps the failed rule onto a package sentinel.
func (e *FieldError) Unwrap() error {
	switch e.Rule {
	case "required":
		return ErrRequired
	case "email":
		return ErrInvalidEmail
	case "min":
		return ErrTooShort
	case "oneof":
		return ErrNotAllowed
	case "datetime":
		return ErrInvalidDate
	case "gte", "lte":
		return ErrOutOfRange
	default:
		return ErrInvalidValue
	}
}

// RequestValidator checks request DTOs against their `validate` struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a RequestValidator that reports JSON field
// names.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Validate checks value, or only the named struct fields when fields is
// non-empty. The first violation is returned as a *FieldError.
func (v *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ErrUnsupportedType
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = v.validate.StructCtx(ctx, value)
	}
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return &FieldError{Field: first.Field(), Rule: first.Tag(), Param: first.Param()}
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}
	return err
}
