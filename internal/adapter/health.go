// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/dive-log/models"
)

const pingTable = "users"

// Ping implements [HealthChecker] with a count-only read of the users table.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.From(pingTable).Select("id").Head(ctx)
	if err != nil {
		return fmt.Errorf("ping provider: %w", err)
	}
	return nil
}

// openAPIRoot is the subset of the PostgREST root document the API reads.
type openAPIRoot struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
	Paths map[string]json.RawMessage `json:"paths"`
}

// Info implements [HealthChecker]. It reads the PostgREST root document and
// reports the server version and the exposed tables (RPC paths excluded).
func (c *Client) Info(ctx context.Context) (models.ProviderInfo, error) {
	resp, err := c.elevated.R().
		SetContext(ctx).
		SetHeader(headerAccept, "application/openapi+json").
		Get(restPath + "/")
	if err != nil {
		return models.ProviderInfo{}, transportError("provider info", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProviderInfo{}, err
	}

	var root openAPIRoot
	if err = json.Unmarshal(resp.Body(), &root); err != nil {
		return models.ProviderInfo{}, fmt.Errorf("decode provider info: %w", err)
	}

	info := models.ProviderInfo{
		URL:           c.baseURL,
		ServerVersion: root.Info.Version,
		Tables:        make([]string, 0, len(root.Paths)),
	}
	if info.ServerVersion == "" {
		info.ServerVersion = strings.TrimPrefix(resp.Header().Get("Server"), "postgrest/")
	}
	for p := range root.Paths {
		name := strings.Trim(p, "/")
		if name == "" || strings.HasPrefix(name, "rpc/") {
			continue
		}
		info.Tables = append(info.Tables, name)
	}
	sort.Strings(info.Tables)

	return info, nil
}
