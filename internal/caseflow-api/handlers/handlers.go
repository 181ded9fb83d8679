// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

// Package handlers exposes the workflow engine over HTTP.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authsvc "github.com/caseflow/caseflow/internal/caseflow-api/services/auth"
	"github.com/caseflow/caseflow/internal/caseflow-api/services/handlerservices"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
	"github.com/caseflow/caseflow/internal/server/middleware/auth/jwt"
	"github.com/caseflow/caseflow/internal/server/middleware/logger"
	"github.com/caseflow/caseflow/internal/server/middleware/metrics"
	"github.com/caseflow/caseflow/pkg/middleware"
)

// Handler holds the services and provides HTTP handlers
type Handler struct {
	services *handlerservices.Services
	store    *store.Store
	authCfg  authsvc.Config
	logger   *slog.Logger
}

// New creates a new Handler instance
func New(services *handlerservices.Services, st *store.Store, authCfg authsvc.Config, logger *slog.Logger) *Handler {
	return &Handler{
		services: services,
		store:    st,
		authCfg:  authCfg,
		logger:   logger,
	}
}

// Routes sets up all HTTP routes and returns the configured handler
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	// ===== Initialize Middlewares =====

	// Global middlewares - applies to all routes
	loggerMiddleware := logger.Middleware(h.logger)
	metricsMiddleware := metrics.Middleware()

	// Create route builder with global middleware
	routes := middleware.NewRouteBuilder(mux).With(loggerMiddleware, metricsMiddleware)

	// ===== Public Routes (No Authentication Required) =====

	// Health, readiness and metrics
	routes.HandleFunc("GET /health", h.Health)
	routes.HandleFunc("GET /ready", h.Ready)
	routes.Handle("GET /metrics", promhttp.Handler())

	// Token issuance carries credentials in the form body, no JWT involved
	routes.HandleFunc("POST /auth/token", h.IssueToken)

	// JWT middleware runs in optional mode: it parses a bearer token when one
	// is present and leaves the request anonymous otherwise. Authentication
	// is enforced per route group by the identity middleware, which also
	// resolves the token subject to a stored account.
	jwtAuth := h.initJWTMiddleware()

	// Registration works without a token; a valid token identifies the creator
	routes.With(jwtAuth, h.optionalIdentity).HandleFunc("POST /auth/register", h.Register)

	// ===== Protected API Routes (JWT Authentication Required) =====

	api := routes.With(jwtAuth, h.requireIdentity)

	api.HandleFunc("GET /auth/me", h.Me)

	// Case operations
	api.HandleFunc("POST /cases/{$}", h.CreateCase)
	api.HandleFunc("GET /cases", h.ListCases)
	api.HandleFunc("GET /cases/{caseNo}", h.GetCase)
	api.HandleFunc("GET /cases/{caseNo}/current-step", h.GetCurrentStep)
	api.HandleFunc("GET /cases/{caseNo}/steps", h.ListCaseSteps)
	api.HandleFunc("GET /cases/{caseNo}/process-data", h.ListCaseProcessData)

	// Step operations
	api.HandleFunc("POST /steps/{stepNo}/close", h.CloseStep)
	api.HandleFunc("GET /steps", h.ListSteps)

	// Process operations
	api.HandleFunc("POST /processes/{$}", h.CreateProcess)
	api.HandleFunc("GET /processes", h.ListProcesses)
	api.HandleFunc("POST /processes/{processNo}/data/{$}", h.CreateProcessData)
	api.HandleFunc("GET /process-data", h.ListProcessData)

	// Catalog management
	api.HandleFunc("POST /statuses/{$}", h.CreateStatus)
	api.HandleFunc("GET /statuses", h.ListStatuses)
	api.HandleFunc("POST /process-types/{$}", h.CreateProcessType)
	api.HandleFunc("GET /process-types", h.ListProcessTypes)
	api.HandleFunc("POST /process-definitions/{$}", h.CreateProcessDefinition)
	api.HandleFunc("GET /process-definitions", h.ListProcessDefinitions)
	api.HandleFunc("POST /tasks/{$}", h.CreateTask)
	api.HandleFunc("GET /tasks", h.ListTasks)
	api.HandleFunc("POST /task-rules/{$}", h.CreateTaskRule)
	api.HandleFunc("GET /task-rules", h.ListTaskRules)
	api.HandleFunc("POST /process-data-types/{$}", h.CreateProcessDataType)
	api.HandleFunc("GET /process-data-types", h.ListProcessDataTypes)

	return mux
}

// initJWTMiddleware configures bearer token parsing for the API routes.
func (h *Handler) initJWTMiddleware() func(http.Handler) http.Handler {
	return jwt.Middleware(jwt.Config{
		Optional:           true,
		SigningKey:         h.authCfg.SigningKey,
		SignatureAlgorithm: h.authCfg.Algorithm,
		Logger:             h.logger,
	})
}
