// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/dive-log/internal/config"
	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/models"
	"github.com/stretchr/testify/assert"
)

func TestAppInfoService_ConfiguredVersionWins(t *testing.T) {
	cfg := &config.StructuredConfig{App: config.App{
		Name:        "dive-log-api",
		Environment: "staging",
		NodeEnv:     "production",
		Version:     "2.5.1",
		TokenExpiry: "7d",
	}}
	build := models.NewAppBuildInfo("v9.9.9", "2026-02-03", "abc123")

	svc := NewAppInfoService(cfg, build, logger.Nop())
	info := svc.GetAppInfo(context.Background())

	assert.Equal(t, "2.5.1", svc.GetAppVersion(context.Background()))
	assert.Equal(t, models.AppInfo{
		Name:        "dive-log-api",
		Environment: "staging",
		Version:     "2.5.1",
		BuildDate:   "2026-02-03",
		BuildCommit: "abc123",
		TokenExpiry: "7d",
	}, info)
}

func TestAppInfoService_Fallbacks(t *testing.T) {
	cfg := &config.StructuredConfig{App: config.App{NodeEnv: "development"}}

	svc := NewAppInfoService(cfg, models.NewAppBuildInfo("v1.2.3", "", ""), logger.Nop())
	info := svc.GetAppInfo(context.Background())

	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "dive-log", info.Name)
	assert.Equal(t, "development", info.Environment)
	assert.Equal(t, "N/A", info.BuildDate)
	assert.Equal(t, "N/A", info.BuildCommit)
}

func TestAppInfoService_NoVersionAnywhere(t *testing.T) {
	svc := NewAppInfoService(&config.StructuredConfig{}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}
