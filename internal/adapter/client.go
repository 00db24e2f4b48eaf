// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/dive-log/internal/config"
	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/internal/utils"
)

const (
	authPath = "/auth/v1"
	restPath = "/rest/v1"

	headerAPIKey        = "apikey"
	headerAuthorization = "Authorization"
	headerPrefer        = "Prefer"
	headerAccept        = "Accept"
	headerContentRange  = "Content-Range"
	headerContentType   = "Content-Type"

	mimeJSON         = "application/json"
	mimeSingleObject = "application/vnd.pgrst.object+json"
)

// Client talks to the provider on behalf of the API.
type Client struct {
	baseURL string
	anonKey string

	public   *utils.HTTPClient
	elevated *utils.HTTPClient

	jwtSecret []byte

	logger *logger.Logger
}

var (
	_ AuthProvider  = (*Client)(nil)
	_ TokenVerifier = (*Client)(nil)
	_ HealthChecker = (*Client)(nil)
)

// NewClient builds a provider client from cfg. Both keys and the URL are
// required; a malformed URL is rejected.
func NewClient(cfg config.Provider, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid provider url: %w", err)
	}
	if cfg.AnonKey == "" || cfg.ServiceRoleKey == "" {
		return nil, fmt.Errorf("provider keys must not be empty")
	}

	public := utils.NewHTTPClient(baseURL, cfg.Timeout)
	public.SetHeader(headerAPIKey, cfg.AnonKey)

	elevated := utils.NewHTTPClient(baseURL, cfg.Timeout)
	elevated.
		SetHeader(headerAPIKey, cfg.ServiceRoleKey).
		SetAuthToken(cfg.ServiceRoleKey)

	c := &Client{
		baseURL:  baseURL,
		anonKey:  cfg.AnonKey,
		public:   public,
		elevated: elevated,
		logger:   log,
	}
	if cfg.JWTSecret != "" {
		c.jwtSecret = []byte(cfg.JWTSecret)
	}

	return c, nil
}

// URL returns the normalised provider base URL.
func (c *Client) URL() string {
	return c.baseURL
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
