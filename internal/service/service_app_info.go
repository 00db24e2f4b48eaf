// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/dive-log/internal/config"
	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/models"
)

const defaultAppName = "dive-log"

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService builds the version report from configuration and
// linker-injected build metadata. A configured version wins over the build
// version.
func NewAppInfoService(cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	version := cfg.App.Version
	if version == "" {
		version = build.BuildVersion()
	}
	name := cfg.App.Name
	if name == "" {
		name = defaultAppName
	}

	return &appInfoService{
		info: models.AppInfo{
			Name:        name,
			Environment: cfg.Env(),
			Version:     version,
			BuildDate:   build.BuildDate(),
			BuildCommit: build.BuildCommit(),
			TokenExpiry: cfg.App.TokenExpiry,
		},
		logger: logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
