// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/MKhiriev/dive-log/internal/mock"
)

const (
	testUserID = "6f1c2b9e-4a7d-4c1e-9b3a-2d5e8f7a1c40"
	testDiveID = "0b8e5d2a-7c3f-4e91-a6b4-1f2d3c4e5a60"
)

// mockProvider satisfies Provider with three gomock mocks.
type mockProvider struct {
	*mock.MockAuthProvider
	*mock.MockTokenVerifier
	*mock.MockHealthChecker
}

// memCache is an in-memory Cache used to observe cache traffic.
type memCache struct {
	items   map[string][]byte
	deleted []string
	err     error
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	b, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if c.err != nil {
		return c.err
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.items[key] = b
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.items, k)
		c.deleted = append(c.deleted, k)
	}
	return c.err
}

func (c *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
		}
	}
	c.deleted = append(c.deleted, pattern)
	return c.err
}

func ptr[T any](v T) *T { return &v }
