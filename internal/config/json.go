// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config
// file.
type StructuredJSONConfig struct {
	Provider struct {
		URL            string   `json:"url"`
		AnonKey        string   `json:"anon_key"`
		ServiceRoleKey string   `json:"service_role_key"`
		JWTSecret      string   `json:"jwt_secret"`
		Timeout        Duration `json:"timeout"`
	} `json:"provider,omitempty"`

	App struct {
		Name        string `json:"name"`
		Environment string `json:"environment"`
		Version     string `json:"version"`
		FrontendURL string `json:"frontend_url"`
		TokenExpiry string `json:"token_expiry"`
	} `json:"app,omitempty"`

	Server struct {
		Host           string   `json:"host"`
		Port           int      `json:"port"`
		AllowedOrigins []string `json:"allowed_origins"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		Backend     string `json:"backend"`
		DSN         string `json:"dsn"`
		AutoMigrate bool   `json:"auto_migrate"`
	} `json:"storage,omitempty"`

	Cache struct {
		Addr     string   `json:"addr"`
		Password string   `json:"password"`
		DB       int      `json:"db"`
		TTL      Duration `json:"ttl"`
	} `json:"cache,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Provider: Provider{
			URL:            jsonCfg.Provider.URL,
			AnonKey:        jsonCfg.Provider.AnonKey,
			ServiceRoleKey: jsonCfg.Provider.ServiceRoleKey,
			JWTSecret:      jsonCfg.Provider.JWTSecret,
			Timeout:        time.Duration(jsonCfg.Provider.Timeout),
		},
		App: App{
			Name:        jsonCfg.App.Name,
			Environment: jsonCfg.App.Environment,
			Version:     jsonCfg.App.Version,
			FrontendURL: jsonCfg.App.FrontendURL,
			TokenExpiry: jsonCfg.App.TokenExpiry,
		},
		Server: Server{
			Host:           jsonCfg.Server.Host,
			Port:           jsonCfg.Server.Port,
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			Backend:     jsonCfg.Storage.Backend,
			DSN:         jsonCfg.Storage.DSN,
			AutoMigrate: jsonCfg.Storage.AutoMigrate,
		},
		Cache: Cache{
			Addr:     jsonCfg.Cache.Addr,
			Password: jsonCfg.Cache.Password,
			DB:       jsonCfg.Cache.DB,
			TTL:      time.Duration(jsonCfg.Cache.TTL),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
