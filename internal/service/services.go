// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/dive-log/internal/config"
	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/internal/store"
	"github.com/MKhiriev/dive-log/internal/validators"
	"github.com/MKhiriev/dive-log/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	DiveService    DiveService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, provider Provider, c Cache, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:    NewAuthService(provider, storages.Users, validator, logger),
		UserService:    NewUserService(storages.Users, storages.Dives, c, logger),
		DiveService:    NewDiveService(storages.Dives, storages.Transactor, c, validator, logger),
		HealthService:  NewHealthService(provider, logger),
		AppInfoService: NewAppInfoService(cfg, build, logger),
	}
}
