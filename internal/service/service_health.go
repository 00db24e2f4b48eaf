// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/MKhiriev/dive-log/internal/adapter"
	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/models"
)

const (
	statusOK       = "OK"
	statusReady    = "ready"
	statusNotReady = "not ready"
)

type healthService struct {
	provider adapter.HealthChecker
	started  time.Time
	now      func() time.Time

	logger *logger.Logger
}

// NewHealthService constructs a HealthService. Uptime is measured from the
// moment of construction.
func NewHealthService(provider adapter.HealthChecker, logger *logger.Logger) HealthService {
	return &healthService{
		provider: provider,
		started:  time.Now(),
		now:      time.Now,
		logger:   logger,
	}
}

// Health reports process liveness. It never touches the provider.
func (s *healthService) Health(ctx context.Context) models.HealthStatus {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	now := s.now()
	return models.HealthStatus{
		Status:    statusOK,
		Uptime:    now.Sub(s.started).Seconds(),
		Timestamp: now.UTC().Format(time.RFC3339),
		Memory: models.MemoryStats{
			Alloc:      m.Alloc,
			TotalAlloc: m.TotalAlloc,
			Sys:        m.Sys,
			HeapInUse:  m.HeapInuse,
			NumGC:      m.NumGC,
		},
	}
}

// Readiness pings the provider and, when reachable, reads its metadata.
// An unreachable provider returns ErrProviderNotReady together with a
// "not ready" status carrying the cause.
func (s *healthService) Readiness(ctx context.Context) (models.ReadinessStatus, error) {
	log := logger.FromContext(ctx)

	if err := s.provider.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("func", "*healthService.Readiness").Msg("provider ping failed")
		return models.ReadinessStatus{Status: statusNotReady, Error: err.Error()},
			fmt.Errorf("%w: %w", ErrProviderNotReady, err)
	}

	info, err := s.provider.Info(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "*healthService.Readiness").Msg("provider info unavailable")
		return models.ReadinessStatus{Status: statusReady}, nil
	}
	return models.ReadinessStatus{Status: statusReady, Provider: &info}, nil
}
