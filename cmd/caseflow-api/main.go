// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/caseflow/caseflow/internal/authz"
	apiconfig "github.com/caseflow/caseflow/internal/caseflow-api/config"
	"github.com/caseflow/caseflow/internal/caseflow-api/handlers"
	"github.com/caseflow/caseflow/internal/caseflow-api/services/handlerservices"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
	"github.com/caseflow/caseflow/internal/logging"
	"github.com/caseflow/caseflow/internal/server"
)

var (
	configPath = pflag.String("config", os.Getenv(apiconfig.EnvConfigPath), "path to the YAML config file")
	_          = pflag.Int("port", 0, "override the configured HTTP port")
	_          = pflag.String("log-level", "", "override the configured log level")
)

func main() {
	pflag.Parse()

	// Bootstrap logger for errors before the configured one exists
	bootstrapLogger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := apiconfig.Load(*configPath, pflag.CommandLine)
	if err != nil {
		bootstrapLogger.Error("Failed to load configuration", "error", err, "config_path", *configPath)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging.ToLoggingConfig())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Connect(ctx, cfg.Database.ToStoreConfig())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	st := store.New(db, cfg.Database.Schema, logger.With("component", "store"))

	if cfg.Database.Bootstrap {
		if err := st.EnsureSchema(ctx); err != nil {
			logger.Error("Failed to create database schema", "error", err)
			os.Exit(1)
		}
		if err := st.SeedStatuses(ctx); err != nil {
			logger.Error("Failed to seed workflow statuses", "error", err)
			os.Exit(1)
		}
	}

	enforcer, err := authz.NewEnforcer(logger.With("component", "authz"))
	if err != nil {
		logger.Error("Failed to initialize authorization", "error", err)
		os.Exit(1)
	}

	authCfg := cfg.Security.ToAuthConfig()
	services := handlerservices.NewServices(st, enforcer, authCfg, logger)
	handler := handlers.New(services, st, authCfg, logger.With("component", "handlers"))

	srv := server.New(cfg.Server.ToServerConfig(), handler.Routes(), logger.With("component", "server"))
	if err := srv.Run(ctx); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped gracefully")
}
