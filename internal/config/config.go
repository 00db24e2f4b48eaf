// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backend names accepted by Storage.Backend.
const (
	BackendREST     = "rest"
	BackendPostgres = "postgres"
)

const envProduction = "production"

// StructuredConfig is the top-level configuration container for the
// dive-log API. It aggregates all sub-configurations and is populated by
// merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// The value is built once at startup and passed around by pointer; nothing
// mutates it afterwards.
type StructuredConfig struct {
	// Provider holds the backend-as-a-service endpoint and credentials.
	Provider Provider

	// App holds application identity and environment settings.
	App App

	// Server holds the inbound HTTP listener settings.
	Server Server

	// Storage selects the persistence backend for users and dives.
	Storage Storage

	// Cache holds the optional Redis read-cache settings.
	Cache Cache

	// Log holds the logger level and optional file sink.
	Log Log

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Provider holds the managed backend URL and the two credential tiers.
type Provider struct {
	// URL is the project base URL (e.g. "https://xyz.supabase.co").
	// Env: SUPABASE_URL
	URL string `env:"SUPABASE_URL"`

	// AnonKey is the public key used for end-user auth flows.
	// Env: SUPABASE_ANON_KEY
	AnonKey string `env:"SUPABASE_ANON_KEY"`

	// ServiceRoleKey is the elevated key used for table access.
	// Env: SUPABASE_SERVICE_ROLE_KEY
	ServiceRoleKey string `env:"SUPABASE_SERVICE_ROLE_KEY"`

	// JWTSecret enables local verification of access tokens when set.
	// Env: SUPABASE_JWT_SECRET
	JWTSecret string `env:"SUPABASE_JWT_SECRET"`

	// Timeout bounds every outbound provider request.
	// Env: PROVIDER_TIMEOUT
	Timeout time.Duration `env:"PROVIDER_TIMEOUT"`
}

// App holds application-level identity values.
type App struct {
	// Name is reported by the version endpoint.
	// Env: APP_NAME
	Name string `env:"APP_NAME"`

	// Environment is the deployment environment name. APP_ENV takes
	// precedence over NODE_ENV.
	Environment string `env:"APP_ENV"`

	// NodeEnv is the legacy environment variable, used only when
	// Environment is empty.
	NodeEnv string `env:"NODE_ENV"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`

	// FrontendURL is appended to the CORS allow-list when set.
	// Env: FRONTEND_URL
	FrontendURL string `env:"FRONTEND_URL"`

	// TokenExpiry is the provider's configured token lifetime label. It is
	// informational only.
	// Env: JWT_EXPIRES_IN
	TokenExpiry string `env:"JWT_EXPIRES_IN"`
}

// Server holds network settings for the inbound transport layer.
type Server struct {
	// Host is the interface to bind. Empty means all interfaces.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port to listen on.
	// Env: PORT
	Port int `env:"PORT"`

	// AllowedOrigins is the CORS allow-list.
	// Env: ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage selects and configures the users/dives store.
type Storage struct {
	// Backend is either "rest" (provider REST API) or "postgres".
	// Env: STORAGE_BACKEND
	Backend string `env:"STORAGE_BACKEND"`

	// DSN is the PostgreSQL connection string for the postgres backend.
	// Env: DATABASE_URL
	DSN string `env:"DATABASE_URL"`

	// AutoMigrate applies embedded migrations on startup (postgres only).
	// Env: AUTO_MIGRATE
	AutoMigrate bool `env:"AUTO_MIGRATE"`
}

// Cache configures the optional Redis read-cache. An empty Addr disables it.
type Cache struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB"`
	TTL      time.Duration `env:"CACHE_TTL"`
}

// Log configures the process logger.
type Log struct {
	Level string `env:"LOG_LEVEL"`
	File  string `env:"LOG_FILE"`
}

// Env returns the resolved environment name.
func (cfg *StructuredConfig) Env() string {
	if cfg.App.Environment != "" {
		return cfg.App.Environment
	}
	return cfg.App.NodeEnv
}

// IsProduction reports whether the service runs in production mode.
func (cfg *StructuredConfig) IsProduction() bool {
	return strings.EqualFold(cfg.Env(), envProduction)
}

// Address returns the listen address in host:port form.
func (s Server) Address() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// Origins returns the CORS allow-list with the frontend URL appended when
// it is not already present.
func (cfg *StructuredConfig) Origins() []string {
	origins := make([]string, 0, len(cfg.Server.AllowedOrigins)+1)
	for _, o := range cfg.Server.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if f := strings.TrimSpace(cfg.App.FrontendURL); f != "" {
		for _, o := range origins {
			if o == f {
				return origins
			}
		}
		origins = append(origins, f)
	}
	return origins
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (a .env file in the working directory is loaded
//     first, without overriding variables already set)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error loading %s: %w", path, err)
}
