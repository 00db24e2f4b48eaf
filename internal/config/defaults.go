// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied before any other source.
const (
	DefaultAppName         = "DiveLog API"
	DefaultEnvironment     = "development"
	DefaultPort            = 8000
	DefaultAllowedOrigin   = "http://localhost:3000"
	DefaultTokenExpiry     = "7d"
	DefaultProviderTimeout = 10 * time.Second
	DefaultRequestTimeout  = 30 * time.Second
	DefaultCacheTTL        = 60 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Provider: Provider{
			Timeout: DefaultProviderTimeout,
		},
		App: App{
			Name:        DefaultAppName,
			NodeEnv:     DefaultEnvironment,
			TokenExpiry: DefaultTokenExpiry,
		},
		Server: Server{
			Port:           DefaultPort,
			AllowedOrigins: []string{DefaultAllowedOrigin},
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			Backend: BackendREST,
		},
		Cache: Cache{
			TTL: DefaultCacheTTL,
		},
	}
}
