// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/dive-log/internal/config"
	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/internal/service"
	"github.com/MKhiriev/dive-log/internal/utils"
)

type Handler struct {
	services *service.Services

	// origins is the CORS allow-list.
	origins []string

	// production hides raw error detail and panic stacks from responses.
	production bool

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		origins:    cfg.Origins(),
		production: cfg.IsProduction(),
		traceIDs:   utils.NewUUIDGenerator(),
		logger:     logger,
	}
}
