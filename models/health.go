// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status    string      `json:"status"`
	Uptime    float64     `json:"uptime"`
	Timestamp string      `json:"timestamp"`
	Memory    MemoryStats `json:"memory"`
}

// MemoryStats is a process memory snapshot in bytes.
type MemoryStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"total_alloc"`
	Sys        uint64 `json:"sys"`
	HeapInUse  uint64 `json:"heap_in_use"`
	NumGC      uint32 `json:"num_gc"`
}

// ProviderInfo is the metadata read from the provider's REST root.
type ProviderInfo struct {
	URL           string   `json:"url"`
	ServerVersion string   `json:"server_version,omitempty"`
	Tables        []string `json:"tables"`
}

// ReadinessStatus is the body of GET /health/ready.
type ReadinessStatus struct {
	Status   string        `json:"status"`
	Provider *ProviderInfo `json:"provider,omitempty"`
	Error    string        `json:"error,omitempty"`
}
