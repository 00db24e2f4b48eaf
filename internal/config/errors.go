// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrMissingProviderCredentials indicates that the provider URL or one
	// of its keys is not configured.
	ErrMissingProviderCredentials = errors.New("missing provider credentials")
	// ErrInvalidProviderConfigs indicates invalid provider client settings.
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an unknown backend or a postgres
	// backend without a DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
