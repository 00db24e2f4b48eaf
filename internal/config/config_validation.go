// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. Any missing provider credential aborts the process.
func (cfg *StructuredConfig) validate() error {
	var missing []string
	if cfg.Provider.URL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if cfg.Provider.AnonKey == "" {
		missing = append(missing, "SUPABASE_ANON_KEY")
	}
	if cfg.Provider.ServiceRoleKey == "" {
		missing = append(missing, "SUPABASE_SERVICE_ROLE_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingProviderCredentials, missing)
	}

	if cfg.Provider.Timeout <= 0 {
		return fmt.Errorf("%w: provider timeout must be positive", ErrInvalidProviderConfigs)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	switch cfg.Storage.Backend {
	case BackendREST:
	case BackendPostgres:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: postgres backend requires DATABASE_URL", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	return nil
}
