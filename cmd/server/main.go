// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/dive-log/internal/adapter"
	"github.com/MKhiriev/dive-log/internal/cache"
	"github.com/MKhiriev/dive-log/internal/config"
	myHTTP "github.com/MKhiriev/dive-log/internal/handler/http"
	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/internal/server"
	"github.com/MKhiriev/dive-log/internal/service"
	"github.com/MKhiriev/dive-log/internal/store"
	"github.com/MKhiriev/dive-log/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("dive-log-server").Fatal().Err(err).Msg("error getting configs")
	}

	level := cfg.Log.Level
	if level == "" && cfg.IsProduction() {
		level = "info"
	}
	log := logger.NewLogger("dive-log-server",
		logger.WithLevel(level),
		logger.WithFile(cfg.Log.File),
	)
	log.Debug().
		Str("environment", cfg.Env()).
		Str("backend", cfg.Storage.Backend).
		Int("port", cfg.Server.Port).
		Msg("received configs")

	if err = run(context.Background(), cfg, build, log); err != nil {
		log.Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger) error {
	provider, err := adapter.NewClient(cfg.Provider, log)
	if err != nil {
		return fmt.Errorf("error creating provider client: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, provider, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	redis := cache.NewRedis(ctx, cfg.Cache, log)
	defer redis.Close()

	services := service.NewServices(storages, provider, redis, cfg, build, log)
	handler := myHTTP.NewHandler(services, cfg, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
